package models

import "time"

// Participant ids come from the client and are opaque; there is no account
// behind them. A row is created on the first location update and never deleted.
type Participant struct {
	ID      string    `gorm:"primaryKey;size:64" json:"id"`
	Name    string    `gorm:"size:100" json:"name"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	Updated time.Time `json:"updated"`
	Points  int       `gorm:"not null;default:0" json:"points"`
}
