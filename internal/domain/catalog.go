package domain

import "gorm.io/datatypes"

// Catalog entities: the small lookup tables the rest of the system
// references. All of them soft-delete via the Active flag.

type Role struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Active      bool   `gorm:"not null;default:true;column:active" json:"active"`
}

func (Role) TableName() string  { return "role" }
func (r Role) PrimaryKey() uint { return r.ID }

type Permission struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Active      bool   `gorm:"not null;default:true;column:active" json:"active"`
}

func (Permission) TableName() string  { return "permission" }
func (p Permission) PrimaryKey() uint { return p.ID }

type Module struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Route       string `gorm:"column:route" json:"route"`
	Active      bool   `gorm:"not null;default:true;column:active" json:"active"`
}

func (Module) TableName() string  { return "module" }
func (m Module) PrimaryKey() uint { return m.ID }

type State struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Active      bool   `gorm:"not null;default:true;column:active" json:"active"`
}

func (State) TableName() string  { return "state" }
func (s State) PrimaryKey() uint { return s.ID }

type Form struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Description string         `gorm:"column:description" json:"description"`
	Schema      datatypes.JSON `gorm:"column:schema" json:"schema"`
	Active      bool           `gorm:"not null;default:true;column:active" json:"active"`
}

func (Form) TableName() string  { return "form" }
func (f Form) PrimaryKey() uint { return f.ID }

type Criterion struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FormID      uint    `gorm:"not null;index;column:form_id" json:"form_id"`
	Name        string  `gorm:"not null;column:name" json:"name"`
	Description string  `gorm:"column:description" json:"description"`
	Weight      float64 `gorm:"not null;default:0;column:weight" json:"weight"`
	Active      bool    `gorm:"not null;default:true;column:active" json:"active"`

	Form *Form `gorm:"foreignKey:FormID" json:"form,omitempty"`
}

func (Criterion) TableName() string  { return "criterion" }
func (c Criterion) PrimaryKey() uint { return c.ID }
