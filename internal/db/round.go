package db

import "time"

type Round struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"index;not null;uniqueIndex:idx_rounds_room_number"`
	Number    int       `gorm:"not null;uniqueIndex:idx_rounds_room_number"`
	Letter    string    `gorm:"size:8;not null"`
	Status    string    `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Answers   []Answer
	Events    []Event
}
