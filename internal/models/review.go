package models

// Review is a user's rating of a game. The composite unique index keeps
// at most one review per (user, game); writes go through an upsert so a
// concurrent duplicate insert degrades to an update.
type Review struct {
	ID      uint   `gorm:"primaryKey"`
	Rating  int    `gorm:"not null"`
	Comment string `gorm:"type:text"`

	UserID uint `gorm:"not null;uniqueIndex:idx_reviews_user_game"`
	GameID uint `gorm:"not null;uniqueIndex:idx_reviews_user_game"`

	User User `gorm:"constraint:OnDelete:CASCADE;"`
	Game Game `gorm:"constraint:OnDelete:CASCADE;"`
}
