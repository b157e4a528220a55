package store

import (
	"context"

	"github.com/bikefight/bikefight.github.io/internal/models"
)

// PresenceStore holds every participant's last-known position, display name
// and accumulated points.
type PresenceStore interface {
	// Upsert creates or overwrites a participant's position and name and
	// refreshes its timestamp. Points are left untouched.
	Upsert(ctx context.Context, id, name string, lat, lng float64) (*models.Participant, error)

	// AddPoints atomically increments a participant's points and returns the
	// new total. Concurrent increments for the same id must not lose updates.
	AddPoints(ctx context.Context, id string, delta int) (int, error)

	ListAll(ctx context.Context) ([]models.Participant, error)
}

// ChallengeStore owns challenge records for their whole lifetime. A challenge
// resolves at most once: Respond is an atomic check-and-set on the pending
// status.
type ChallengeStore interface {
	Create(ctx context.Context, fromID, toID, image string) (*models.Challenge, error)

	GetByID(ctx context.Context, id uint) (*models.Challenge, error)

	// Respond moves a pending challenge to accepted or declined and stores
	// the ratings (kept even on decline, for audit). Exactly one of several
	// concurrent calls for the same id succeeds; the rest get
	// ErrAlreadyResolved.
	Respond(ctx context.Context, id uint, accepted bool, beauty, creativity, creepiness int) (*models.Challenge, error)
}
