package domain

import "time"

type Institution struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null;column:name" json:"name"`
	Address string `gorm:"column:address" json:"address"`
	City    string `gorm:"column:city" json:"city"`
	Active  bool   `gorm:"not null;default:true;column:active" json:"active"`
}

func (Institution) TableName() string  { return "institution" }
func (i Institution) PrimaryKey() uint { return i.ID }

type Experience struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"not null;column:name" json:"name"`
	Description   string     `gorm:"column:description" json:"description"`
	InstitutionID uint       `gorm:"index;column:institution_id" json:"institution_id"`
	UserID        uint       `gorm:"index;column:user_id" json:"user_id"`
	StartDate     *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate       *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Active        bool       `gorm:"not null;default:true;column:active" json:"active"`

	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Experience) TableName() string  { return "experience" }
func (e Experience) PrimaryKey() uint { return e.ID }

type Evaluation struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ExperienceID uint       `gorm:"not null;index;column:experience_id" json:"experience_id"`
	UserID       uint       `gorm:"not null;index;column:user_id" json:"user_id"`
	StateID      uint       `gorm:"not null;index;column:state_id" json:"state_id"`
	FormID       uint       `gorm:"index;column:form_id" json:"form_id"`
	Score        float64    `gorm:"not null;default:0;column:score" json:"score"`
	Comment      string     `gorm:"column:comment" json:"comment"`
	EvaluatedAt  *time.Time `gorm:"column:evaluated_at" json:"evaluated_at,omitempty"`
	Active       bool       `gorm:"not null;default:true;column:active" json:"active"`

	Experience *Experience `gorm:"foreignKey:ExperienceID" json:"experience,omitempty"`
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	State      *State      `gorm:"foreignKey:StateID" json:"state,omitempty"`
	Form       *Form       `gorm:"foreignKey:FormID" json:"form,omitempty"`
}

func (Evaluation) TableName() string  { return "evaluation" }
func (e Evaluation) PrimaryKey() uint { return e.ID }

// History is the append-only trail of evaluation state changes. Rows are
// never soft-deleted; removing an evaluation hard-deletes its trail.
type History struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EvaluationID uint      `gorm:"not null;index;column:evaluation_id" json:"evaluation_id"`
	StateID      uint      `gorm:"not null;column:state_id" json:"state_id"`
	UserID       uint      `gorm:"not null;column:user_id" json:"user_id"`
	Note         string    `gorm:"column:note" json:"note"`
	ChangedAt    time.Time `gorm:"not null;column:changed_at" json:"changed_at"`

	Evaluation *Evaluation `gorm:"foreignKey:EvaluationID" json:"evaluation,omitempty"`
	State      *State      `gorm:"foreignKey:StateID" json:"state,omitempty"`
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (History) TableName() string  { return "history" }
func (h History) PrimaryKey() uint { return h.ID }
