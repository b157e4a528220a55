package ws

import (
	"time"

	"github.com/bikefight/bikefight.github.io/internal/models"
)

// Server→client message shapes. The presence update carries no type field;
// clients treat any message without one as a position report.

type InitMessage struct {
	Type  string               `json:"type"`
	Users []models.Participant `json:"users"`
}

func NewInitMessage(users []models.Participant) InitMessage {
	return InitMessage{Type: "init", Users: users}
}

type PresenceUpdate struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	Updated time.Time `json:"updated"`
}

type ChallengeMessage struct {
	Type   string `json:"type"`
	ID     uint   `json:"id"`
	FromID string `json:"from_id"`
	Image  string `json:"image"`
}

func NewChallengeMessage(ch *models.Challenge) ChallengeMessage {
	return ChallengeMessage{Type: "challenge", ID: ch.ID, FromID: ch.FromID, Image: ch.Image}
}

type ChallengeResultMessage struct {
	Type     string `json:"type"`
	ID       uint   `json:"id"`
	Accepted bool   `json:"accepted"`
	Points   int    `json:"points"`
	FromID   string `json:"from_id"`
}

func NewChallengeResultMessage(ch *models.Challenge, points int) ChallengeResultMessage {
	return ChallengeResultMessage{
		Type:     "challenge_result",
		ID:       ch.ID,
		Accepted: ch.Status == models.ChallengeStatusAccepted,
		Points:   points,
		FromID:   ch.FromID,
	}
}
