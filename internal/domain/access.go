package domain

import "time"

type Person struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string `gorm:"not null;column:first_name" json:"first_name"`
	LastName       string `gorm:"not null;column:last_name" json:"last_name"`
	DocumentNumber string `gorm:"column:document_number" json:"document_number"`
	Phone          string `gorm:"column:phone" json:"phone"`
}

func (Person) TableName() string  { return "person" }
func (p Person) PrimaryKey() uint { return p.ID }

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string    `gorm:"not null;column:password_hash" json:"-"`
	PersonID     uint      `gorm:"index;column:person_id" json:"person_id"`
	Active       bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (User) TableName() string  { return "user" }
func (u User) PrimaryKey() uint { return u.ID }

type UserRole struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_role_pair;column:user_id" json:"user_id"`
	RoleID uint `gorm:"not null;uniqueIndex:idx_user_role_pair;column:role_id" json:"role_id"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (UserRole) TableName() string   { return "user_role" }
func (ur UserRole) PrimaryKey() uint { return ur.ID }

type RolePermission struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID       uint `gorm:"not null;uniqueIndex:idx_role_permission_pair;column:role_id" json:"role_id"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permission_pair;column:permission_id" json:"permission_id"`

	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Permission *Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}

func (RolePermission) TableName() string   { return "role_permission" }
func (rp RolePermission) PrimaryKey() uint { return rp.ID }

type UserToken struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index;column:user_id" json:"user_id"`
	AccessToken  string    `gorm:"not null;index;column:access_token" json:"-"`
	RefreshToken string    `gorm:"not null;uniqueIndex;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (UserToken) TableName() string   { return "user_token" }
func (ut UserToken) PrimaryKey() uint { return ut.ID }
