package models

// Game represents a catalog entry.
//
// Discount is a percentage in [0,100]; out-of-range input is clamped to 0
// when a game is created. ImagePath is relative to the configured static
// directory. Deleting a game removes its reviews and wishlist entries.
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:100;unique;not null"`
	Description string  `gorm:"type:text"`
	Price       float64
	Discount    float64
	ImagePath   string `gorm:"size:255"`

	Genres []*Genre `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE;"`
	Tags   []*Tag   `gorm:"many2many:game_tags;constraint:OnDelete:CASCADE;"`

	Reviews  []Review       `gorm:"constraint:OnDelete:CASCADE;"`
	Wishlist []WishListItem `gorm:"constraint:OnDelete:CASCADE;"`
}
