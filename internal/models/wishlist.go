package models

// WishListItem marks a game as wanted by a user. The composite unique
// index makes the add operation idempotent at the storage layer.
type WishListItem struct {
	ID uint `gorm:"primaryKey"`

	UserID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_game"`
	GameID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_game"`

	User User `gorm:"constraint:OnDelete:CASCADE;"`
	Game Game `gorm:"constraint:OnDelete:CASCADE;"`
}

// TableName keeps the historical table name instead of GORM's default
// pluralization of WishListItem.
func (WishListItem) TableName() string {
	return "wish_list_items"
}
