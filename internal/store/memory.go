package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bikefight/bikefight.github.io/internal/models"
)

// MemoryPresenceStore keeps participants in process memory. It backs local
// development (STORE_DRIVER=memory) and tests; the contract matches the gorm
// implementation.
type MemoryPresenceStore struct {
	mu           sync.Mutex
	participants map[string]*models.Participant
}

func NewMemoryPresenceStore() *MemoryPresenceStore {
	return &MemoryPresenceStore{participants: make(map[string]*models.Participant)}
}

func (s *MemoryPresenceStore) Upsert(ctx context.Context, id, name string, lat, lng float64) (*models.Participant, error) {
	if err := validatePosition(id, lat, lng); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		p = &models.Participant{ID: id}
		s.participants[id] = p
	}
	p.Name = name
	p.Lat = lat
	p.Lng = lng
	p.Updated = time.Now().UTC()

	out := *p
	return &out, nil
}

func (s *MemoryPresenceStore) AddPoints(ctx context.Context, id string, delta int) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("%w: empty participant id", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return 0, fmt.Errorf("%w: participant %s", ErrNotFound, id)
	}
	p.Points += delta
	return p.Points, nil
}

func (s *MemoryPresenceStore) ListAll(ctx context.Context) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, *p)
	}
	return out, nil
}

type MemoryChallengeStore struct {
	mu         sync.Mutex
	nextID     uint
	challenges map[uint]*models.Challenge
}

func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{nextID: 1, challenges: make(map[uint]*models.Challenge)}
}

func (s *MemoryChallengeStore) Create(ctx context.Context, fromID, toID, image string) (*models.Challenge, error) {
	if fromID == "" || toID == "" || image == "" {
		return nil, fmt.Errorf("%w: from_id, to_id and image are required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := &models.Challenge{
		ID:        s.nextID,
		FromID:    fromID,
		ToID:      toID,
		Image:     image,
		Status:    models.ChallengeStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.challenges[ch.ID] = ch

	out := *ch
	return &out, nil
}

func (s *MemoryChallengeStore) GetByID(ctx context.Context, id uint) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges[id]
	if !ok {
		return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, id)
	}
	out := *ch
	return &out, nil
}

func (s *MemoryChallengeStore) Respond(ctx context.Context, id uint, accepted bool, beauty, creativity, creepiness int) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges[id]
	if !ok {
		return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, id)
	}
	if ch.Status != models.ChallengeStatusPending {
		return nil, fmt.Errorf("%w: challenge %d", ErrAlreadyResolved, id)
	}

	if accepted {
		ch.Status = models.ChallengeStatusAccepted
	} else {
		ch.Status = models.ChallengeStatusDeclined
	}
	ch.Beauty = beauty
	ch.Creativity = creativity
	ch.Creepiness = creepiness

	out := *ch
	return &out, nil
}
