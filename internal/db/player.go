package db

import "time"

type Player struct {
	ID         uint      `gorm:"primaryKey"`
	RoomID     uint      `gorm:"index;not null;uniqueIndex:idx_players_room_telegram"`
	TelegramID int64     `gorm:"not null;uniqueIndex:idx_players_room_telegram"`
	Name       string    `gorm:"size:64;not null"`
	TotalScore int       `gorm:"not null;default:0"`
	JoinedAt   time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
	Answers    []Answer
	Events     []Event
}
