package user

import "errors"

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles. Roles are a hint for the
// presentation layer; the core never branches on them.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Table: users
type User struct {
	ID    uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"user_id"`
	Name  string `gorm:"column:name;size:100;not null" json:"name"`
	Email string `gorm:"column:email;size:150;not null" json:"email"`
	Phone string `gorm:"column:phone;size:20" json:"phone,omitempty"`
	Role  Role   `gorm:"column:role;size:16;not null;default:'student'" json:"role"`
}

func (User) TableName() string { return "users" }
