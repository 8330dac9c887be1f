package models

// Role names users can hold (e.g. "user", "admin"). Assignment is
// many-to-many through the user_roles join table.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`

	Users []*User `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE;"`
}

const (
	// RoleUser is attached to every new account when the role row exists.
	RoleUser = "user"
	// RoleAdmin gates the catalog-management and diagnostic routes.
	RoleAdmin = "admin"
)
