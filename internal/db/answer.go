package db

import "time"

type Answer struct {
	ID          uint      `gorm:"primaryKey"`
	RoundID     uint      `gorm:"index;not null;uniqueIndex:idx_answers_round_player_category"`
	PlayerID    uint      `gorm:"index;not null;uniqueIndex:idx_answers_round_player_category"`
	Category    string    `gorm:"size:64;not null;uniqueIndex:idx_answers_round_player_category"`
	Text        string    `gorm:"size:280;not null"`
	Canonical   string    `gorm:"size:280"`
	Status      string    `gorm:"size:32;not null"`
	SubmittedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
