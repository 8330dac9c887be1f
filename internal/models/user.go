package models

// User represents an account in the system.
//
// The Password column always holds a bcrypt digest, never plaintext.
// Deleting a user removes their reviews and wishlist entries.
type User struct {
	ID       uint    `gorm:"primaryKey"`
	Username string  `gorm:"size:80;unique;not null"`
	Password string  `gorm:"size:256;not null"`
	Roles    []*Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE;"`

	Reviews  []Review       `gorm:"constraint:OnDelete:CASCADE;"`
	Wishlist []WishListItem `gorm:"constraint:OnDelete:CASCADE;"`
}
