package models

// Tag represents a game tag (e.g. "Open World", "Singleplayer").
type Tag struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}
