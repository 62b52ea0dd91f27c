// Package dto holds the boundary shapes and the entity↔DTO mapping.
// Mapping is pure and total: list mappers preserve order and
// cardinality, and missing navigations degrade to empty name fields
// instead of failing.
package dto

import (
	"gorm.io/datatypes"

	"github.com/hvaldez/experiencias-backend/internal/domain"
)

type Role struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func RoleFromModel(m *domain.Role) *Role {
	if m == nil {
		return nil
	}
	return &Role{ID: m.ID, Name: m.Name, Description: m.Description, Active: m.Active}
}

func RolesFromModels(ms []*domain.Role) []*Role {
	out := make([]*Role, 0, len(ms))
	for _, m := range ms {
		out = append(out, RoleFromModel(m))
	}
	return out
}

func (d *Role) ToModel() *domain.Role {
	return &domain.Role{ID: d.ID, Name: d.Name, Description: d.Description, Active: d.Active}
}

type Permission struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func PermissionFromModel(m *domain.Permission) *Permission {
	if m == nil {
		return nil
	}
	return &Permission{ID: m.ID, Name: m.Name, Description: m.Description, Active: m.Active}
}

func PermissionsFromModels(ms []*domain.Permission) []*Permission {
	out := make([]*Permission, 0, len(ms))
	for _, m := range ms {
		out = append(out, PermissionFromModel(m))
	}
	return out
}

func (d *Permission) ToModel() *domain.Permission {
	return &domain.Permission{ID: d.ID, Name: d.Name, Description: d.Description, Active: d.Active}
}

type Module struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
	Active      bool   `json:"active"`
}

func ModuleFromModel(m *domain.Module) *Module {
	if m == nil {
		return nil
	}
	return &Module{ID: m.ID, Name: m.Name, Description: m.Description, Route: m.Route, Active: m.Active}
}

func ModulesFromModels(ms []*domain.Module) []*Module {
	out := make([]*Module, 0, len(ms))
	for _, m := range ms {
		out = append(out, ModuleFromModel(m))
	}
	return out
}

func (d *Module) ToModel() *domain.Module {
	return &domain.Module{ID: d.ID, Name: d.Name, Description: d.Description, Route: d.Route, Active: d.Active}
}

type State struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func StateFromModel(m *domain.State) *State {
	if m == nil {
		return nil
	}
	return &State{ID: m.ID, Name: m.Name, Description: m.Description, Active: m.Active}
}

func StatesFromModels(ms []*domain.State) []*State {
	out := make([]*State, 0, len(ms))
	for _, m := range ms {
		out = append(out, StateFromModel(m))
	}
	return out
}

func (d *State) ToModel() *domain.State {
	return &domain.State{ID: d.ID, Name: d.Name, Description: d.Description, Active: d.Active}
}

type Form struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      datatypes.JSON `json:"schema,omitempty"`
	Active      bool           `json:"active"`
}

func FormFromModel(m *domain.Form) *Form {
	if m == nil {
		return nil
	}
	return &Form{ID: m.ID, Name: m.Name, Description: m.Description, Schema: m.Schema, Active: m.Active}
}

func FormsFromModels(ms []*domain.Form) []*Form {
	out := make([]*Form, 0, len(ms))
	for _, m := range ms {
		out = append(out, FormFromModel(m))
	}
	return out
}

func (d *Form) ToModel() *domain.Form {
	return &domain.Form{ID: d.ID, Name: d.Name, Description: d.Description, Schema: d.Schema, Active: d.Active}
}

type Criterion struct {
	ID          uint    `json:"id"`
	FormID      uint    `json:"form_id"`
	FormName    string  `json:"form_name"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Active      bool    `json:"active"`
}

func CriterionFromModel(m *domain.Criterion) *Criterion {
	if m == nil {
		return nil
	}
	d := &Criterion{
		ID:          m.ID,
		FormID:      m.FormID,
		Name:        m.Name,
		Description: m.Description,
		Weight:      m.Weight,
		Active:      m.Active,
	}
	if m.Form != nil {
		d.FormName = m.Form.Name
	}
	return d
}

func CriteriaFromModels(ms []*domain.Criterion) []*Criterion {
	out := make([]*Criterion, 0, len(ms))
	for _, m := range ms {
		out = append(out, CriterionFromModel(m))
	}
	return out
}

func (d *Criterion) ToModel() *domain.Criterion {
	return &domain.Criterion{
		ID:          d.ID,
		FormID:      d.FormID,
		Name:        d.Name,
		Description: d.Description,
		Weight:      d.Weight,
		Active:      d.Active,
	}
}
