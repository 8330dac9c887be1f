package models

// Genre represents a game genre (e.g. "RPG", "Strategy").
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}
