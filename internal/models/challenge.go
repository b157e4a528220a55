package models

import "time"

type Challenge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromID     string    `gorm:"size:64;not null;index" json:"from_id"`
	ToID       string    `gorm:"size:64;not null;index" json:"to_id"`
	Image      string    `gorm:"type:text;not null" json:"image"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Beauty     int       `gorm:"default:0" json:"beauty"`
	Creativity int       `gorm:"default:0" json:"creativity"`
	Creepiness int       `gorm:"default:0" json:"creepiness"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	ChallengeStatusPending  = "pending"
	ChallengeStatusAccepted = "accepted"
	ChallengeStatusDeclined = "declined"
)
