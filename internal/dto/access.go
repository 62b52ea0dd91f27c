package dto

import "github.com/hvaldez/experiencias-backend/internal/domain"

type Person struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
}

func PersonFromModel(m *domain.Person) *Person {
	if m == nil {
		return nil
	}
	return &Person{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DocumentNumber: m.DocumentNumber,
		Phone:          m.Phone,
	}
}

func PersonsFromModels(ms []*domain.Person) []*Person {
	out := make([]*Person, 0, len(ms))
	for _, m := range ms {
		out = append(out, PersonFromModel(m))
	}
	return out
}

func (d *Person) ToModel() *domain.Person {
	return &domain.Person{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		DocumentNumber: d.DocumentNumber,
		Phone:          d.Phone,
	}
}

// User carries a plaintext Password only inbound (register / password
// change); it is hashed before the model ever sees it and the hash never
// leaves the service layer.
type User struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	PersonID   uint   `json:"person_id"`
	PersonName string `json:"person_name"`
	Active     bool   `json:"active"`
}

func UserFromModel(m *domain.User) *User {
	if m == nil {
		return nil
	}
	d := &User{
		ID:       m.ID,
		Email:    m.Email,
		PersonID: m.PersonID,
		Active:   m.Active,
	}
	d.PersonName = personName(m.Person)
	return d
}

func UsersFromModels(ms []*domain.User) []*User {
	out := make([]*User, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserFromModel(m))
	}
	return out
}

// ToModel intentionally leaves PasswordHash empty; hashing is the
// service's job.
func (d *User) ToModel() *domain.User {
	return &domain.User{
		ID:       d.ID,
		Email:    d.Email,
		PersonID: d.PersonID,
		Active:   d.Active,
	}
}

type UserRole struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	RoleID   uint   `json:"role_id"`
	RoleName string `json:"role_name"`
}

func UserRoleFromModel(m *domain.UserRole) *UserRole {
	if m == nil {
		return nil
	}
	d := &UserRole{ID: m.ID, UserID: m.UserID, RoleID: m.RoleID}
	d.UserName = userName(m.User)
	if m.Role != nil {
		d.RoleName = m.Role.Name
	}
	return d
}

func UserRolesFromModels(ms []*domain.UserRole) []*UserRole {
	out := make([]*UserRole, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserRoleFromModel(m))
	}
	return out
}

func (d *UserRole) ToModel() *domain.UserRole {
	return &domain.UserRole{ID: d.ID, UserID: d.UserID, RoleID: d.RoleID}
}

type RolePermission struct {
	ID             uint   `json:"id"`
	RoleID         uint   `json:"role_id"`
	RoleName       string `json:"role_name"`
	PermissionID   uint   `json:"permission_id"`
	PermissionName string `json:"permission_name"`
}

func RolePermissionFromModel(m *domain.RolePermission) *RolePermission {
	if m == nil {
		return nil
	}
	d := &RolePermission{ID: m.ID, RoleID: m.RoleID, PermissionID: m.PermissionID}
	if m.Role != nil {
		d.RoleName = m.Role.Name
	}
	if m.Permission != nil {
		d.PermissionName = m.Permission.Name
	}
	return d
}

func RolePermissionsFromModels(ms []*domain.RolePermission) []*RolePermission {
	out := make([]*RolePermission, 0, len(ms))
	for _, m := range ms {
		out = append(out, RolePermissionFromModel(m))
	}
	return out
}

func (d *RolePermission) ToModel() *domain.RolePermission {
	return &domain.RolePermission{ID: d.ID, RoleID: d.RoleID, PermissionID: d.PermissionID}
}

func personName(p *domain.Person) string {
	if p == nil {
		return ""
	}
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

func userName(u *domain.User) string {
	if u == nil {
		return ""
	}
	if name := personName(u.Person); name != "" {
		return name
	}
	return u.Email
}
