package dto

import (
	"time"

	"github.com/hvaldez/experiencias-backend/internal/domain"
)

type Institution struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Active  bool   `json:"active"`
}

func InstitutionFromModel(m *domain.Institution) *Institution {
	if m == nil {
		return nil
	}
	return &Institution{ID: m.ID, Name: m.Name, Address: m.Address, City: m.City, Active: m.Active}
}

func InstitutionsFromModels(ms []*domain.Institution) []*Institution {
	out := make([]*Institution, 0, len(ms))
	for _, m := range ms {
		out = append(out, InstitutionFromModel(m))
	}
	return out
}

func (d *Institution) ToModel() *domain.Institution {
	return &domain.Institution{ID: d.ID, Name: d.Name, Address: d.Address, City: d.City, Active: d.Active}
}

type Experience struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	InstitutionID   uint       `json:"institution_id"`
	InstitutionName string     `json:"institution_name"`
	UserID          uint       `json:"user_id"`
	UserName        string     `json:"user_name"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Active          bool       `json:"active"`
}

func ExperienceFromModel(m *domain.Experience) *Experience {
	if m == nil {
		return nil
	}
	d := &Experience{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		InstitutionID: m.InstitutionID,
		UserID:        m.UserID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Active:        m.Active,
	}
	if m.Institution != nil {
		d.InstitutionName = m.Institution.Name
	}
	d.UserName = userName(m.User)
	return d
}

func ExperiencesFromModels(ms []*domain.Experience) []*Experience {
	out := make([]*Experience, 0, len(ms))
	for _, m := range ms {
		out = append(out, ExperienceFromModel(m))
	}
	return out
}

func (d *Experience) ToModel() *domain.Experience {
	return &domain.Experience{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		InstitutionID: d.InstitutionID,
		UserID:        d.UserID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Active:        d.Active,
	}
}

type Evaluation struct {
	ID             uint       `json:"id"`
	ExperienceID   uint       `json:"experience_id"`
	ExperienceName string     `json:"experience_name"`
	UserID         uint       `json:"user_id"`
	UserName       string     `json:"user_name"`
	StateID        uint       `json:"state_id"`
	StateName      string     `json:"state_name"`
	FormID         uint       `json:"form_id"`
	FormName       string     `json:"form_name"`
	Score          float64    `json:"score"`
	Comment        string     `json:"comment"`
	EvaluatedAt    *time.Time `json:"evaluated_at,omitempty"`
	Active         bool       `json:"active"`
}

func EvaluationFromModel(m *domain.Evaluation) *Evaluation {
	if m == nil {
		return nil
	}
	d := &Evaluation{
		ID:           m.ID,
		ExperienceID: m.ExperienceID,
		UserID:       m.UserID,
		StateID:      m.StateID,
		FormID:       m.FormID,
		Score:        m.Score,
		Comment:      m.Comment,
		EvaluatedAt:  m.EvaluatedAt,
		Active:       m.Active,
	}
	if m.Experience != nil {
		d.ExperienceName = m.Experience.Name
	}
	d.UserName = userName(m.User)
	if m.State != nil {
		d.StateName = m.State.Name
	}
	if m.Form != nil {
		d.FormName = m.Form.Name
	}
	return d
}

func EvaluationsFromModels(ms []*domain.Evaluation) []*Evaluation {
	out := make([]*Evaluation, 0, len(ms))
	for _, m := range ms {
		out = append(out, EvaluationFromModel(m))
	}
	return out
}

func (d *Evaluation) ToModel() *domain.Evaluation {
	return &domain.Evaluation{
		ID:           d.ID,
		ExperienceID: d.ExperienceID,
		UserID:       d.UserID,
		StateID:      d.StateID,
		FormID:       d.FormID,
		Score:        d.Score,
		Comment:      d.Comment,
		EvaluatedAt:  d.EvaluatedAt,
		Active:       d.Active,
	}
}

type History struct {
	ID           uint      `json:"id"`
	EvaluationID uint      `json:"evaluation_id"`
	StateID      uint      `json:"state_id"`
	StateName    string    `json:"state_name"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name"`
	Note         string    `json:"note"`
	ChangedAt    time.Time `json:"changed_at"`
}

func HistoryFromModel(m *domain.History) *History {
	if m == nil {
		return nil
	}
	d := &History{
		ID:           m.ID,
		EvaluationID: m.EvaluationID,
		StateID:      m.StateID,
		UserID:       m.UserID,
		Note:         m.Note,
		ChangedAt:    m.ChangedAt,
	}
	if m.State != nil {
		d.StateName = m.State.Name
	}
	d.UserName = userName(m.User)
	return d
}

func HistoriesFromModels(ms []*domain.History) []*History {
	out := make([]*History, 0, len(ms))
	for _, m := range ms {
		out = append(out, HistoryFromModel(m))
	}
	return out
}

func (d *History) ToModel() *domain.History {
	return &domain.History{
		ID:           d.ID,
		EvaluationID: d.EvaluationID,
		StateID:      d.StateID,
		UserID:       d.UserID,
		Note:         d.Note,
		ChangedAt:    d.ChangedAt,
	}
}
