package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bikefight/bikefight.github.io/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func validatePosition(id string, lat, lng float64) error {
	if id == "" {
		return fmt.Errorf("%w: empty participant id", ErrInvalidInput)
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: non-finite coordinates", ErrInvalidInput)
	}
	return nil
}

type GormPresenceStore struct {
	db *gorm.DB
}

func NewGormPresenceStore(db *gorm.DB) *GormPresenceStore {
	return &GormPresenceStore{db: db}
}

func (s *GormPresenceStore) Upsert(ctx context.Context, id, name string, lat, lng float64) (*models.Participant, error) {
	if err := validatePosition(id, lat, lng); err != nil {
		return nil, err
	}

	p := models.Participant{
		ID:      id,
		Name:    name,
		Lat:     lat,
		Lng:     lng,
		Updated: time.Now().UTC(),
	}
	// Points deliberately excluded from the conflict assignment so a
	// re-reported position never resets a score.
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "lat", "lng", "updated"}),
	}).Create(&p).Error
	if err != nil {
		return nil, fmt.Errorf("%w: upsert participant %s: %v", ErrUnavailable, id, err)
	}

	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("%w: reload participant %s: %v", ErrUnavailable, id, err)
	}
	return &p, nil
}

func (s *GormPresenceStore) AddPoints(ctx context.Context, id string, delta int) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("%w: empty participant id", ErrInvalidInput)
	}

	res := s.db.WithContext(ctx).Model(&models.Participant{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return 0, fmt.Errorf("%w: add points for %s: %v", ErrUnavailable, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: participant %s", ErrNotFound, id)
	}

	var p models.Participant
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return 0, fmt.Errorf("%w: reload participant %s: %v", ErrUnavailable, id, err)
	}
	return p.Points, nil
}

func (s *GormPresenceStore) ListAll(ctx context.Context) ([]models.Participant, error) {
	participants := make([]models.Participant, 0)
	if err := s.db.WithContext(ctx).Find(&participants).Error; err != nil {
		return nil, fmt.Errorf("%w: list participants: %v", ErrUnavailable, err)
	}
	return participants, nil
}

type GormChallengeStore struct {
	db *gorm.DB
}

func NewGormChallengeStore(db *gorm.DB) *GormChallengeStore {
	return &GormChallengeStore{db: db}
}

func (s *GormChallengeStore) Create(ctx context.Context, fromID, toID, image string) (*models.Challenge, error) {
	if fromID == "" || toID == "" || image == "" {
		return nil, fmt.Errorf("%w: from_id, to_id and image are required", ErrInvalidInput)
	}

	ch := models.Challenge{
		FromID: fromID,
		ToID:   toID,
		Image:  image,
		Status: models.ChallengeStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&ch).Error; err != nil {
		return nil, fmt.Errorf("%w: create challenge: %v", ErrUnavailable, err)
	}
	return &ch, nil
}

func (s *GormChallengeStore) GetByID(ctx context.Context, id uint) (*models.Challenge, error) {
	var ch models.Challenge
	err := s.db.WithContext(ctx).First(&ch, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get challenge %d: %v", ErrUnavailable, id, err)
	}
	return &ch, nil
}

func (s *GormChallengeStore) Respond(ctx context.Context, id uint, accepted bool, beauty, creativity, creepiness int) (*models.Challenge, error) {
	status := models.ChallengeStatusDeclined
	if accepted {
		status = models.ChallengeStatusAccepted
	}

	// Conditional update: the status guard makes concurrent responses to the
	// same challenge serialize at the database, so exactly one wins.
	res := s.db.WithContext(ctx).Model(&models.Challenge{}).
		Where("id = ? AND status = ?", id, models.ChallengeStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"beauty":     beauty,
			"creativity": creativity,
			"creepiness": creepiness,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: respond to challenge %d: %v", ErrUnavailable, id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the challenge is gone or it is no longer
		// pending; look it up to tell the caller which.
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: challenge %d", ErrAlreadyResolved, id)
	}

	return s.GetByID(ctx, id)
}
