package store

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/bikefight/bikefight.github.io/internal/models"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	ctx        context.Context
	presence   *MemoryPresenceStore
	challenges *MemoryChallengeStore
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.presence = NewMemoryPresenceStore()
	s.challenges = NewMemoryChallengeStore()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) TestUpsertThenListAll() {
	_, err := s.presence.Upsert(s.ctx, "rider-1", "Sam", 37.0, -122.0)
	s.Require().NoError(err)

	all, err := s.presence.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("rider-1", all[0].ID)
	s.Equal(37.0, all[0].Lat)
	s.Equal(-122.0, all[0].Lng)
	s.Equal(0, all[0].Points)
	s.False(all[0].Updated.IsZero())
}

func (s *MemoryStoreTestSuite) TestUpsertOverwriteKeepsPoints() {
	_, err := s.presence.Upsert(s.ctx, "rider-1", "Sam", 37.0, -122.0)
	s.Require().NoError(err)
	total, err := s.presence.AddPoints(s.ctx, "rider-1", 12)
	s.Require().NoError(err)
	s.Equal(12, total)

	p, err := s.presence.Upsert(s.ctx, "rider-1", "Sammy", 38.0, -121.5)
	s.Require().NoError(err)
	s.Equal("Sammy", p.Name)
	s.Equal(38.0, p.Lat)
	s.Equal(12, p.Points)
}

func (s *MemoryStoreTestSuite) TestUpsertRejectsBadInput() {
	_, err := s.presence.Upsert(s.ctx, "", "Sam", 37.0, -122.0)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.presence.Upsert(s.ctx, "rider-1", "Sam", math.NaN(), -122.0)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.presence.Upsert(s.ctx, "rider-1", "Sam", 37.0, math.Inf(1))
	s.ErrorIs(err, ErrInvalidInput)

	all, err := s.presence.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *MemoryStoreTestSuite) TestAddPointsUnknownParticipant() {
	_, err := s.presence.AddPoints(s.ctx, "ghost", 5)
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestAddPointsConcurrent() {
	_, err := s.presence.Upsert(s.ctx, "rider-1", "Sam", 37.0, -122.0)
	s.Require().NoError(err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.presence.AddPoints(s.ctx, "rider-1", 3)
			s.NoError(err)
		}()
	}
	wg.Wait()

	total, err := s.presence.AddPoints(s.ctx, "rider-1", 0)
	s.Require().NoError(err)
	s.Equal(workers*3, total)
}

func (s *MemoryStoreTestSuite) TestCreateChallenge() {
	ch, err := s.challenges.Create(s.ctx, "rider-1", "rider-2", "base64blob")
	s.Require().NoError(err)
	s.Equal(uint(1), ch.ID)
	s.Equal(models.ChallengeStatusPending, ch.Status)

	ch2, err := s.challenges.Create(s.ctx, "rider-2", "rider-1", "otherblob")
	s.Require().NoError(err)
	s.Equal(uint(2), ch2.ID)
}

func (s *MemoryStoreTestSuite) TestCreateChallengeRejectsEmptyFields() {
	_, err := s.challenges.Create(s.ctx, "", "rider-2", "blob")
	s.ErrorIs(err, ErrInvalidInput)
	_, err = s.challenges.Create(s.ctx, "rider-1", "", "blob")
	s.ErrorIs(err, ErrInvalidInput)
	_, err = s.challenges.Create(s.ctx, "rider-1", "rider-2", "")
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *MemoryStoreTestSuite) TestGetByIDUnknown() {
	_, err := s.challenges.GetByID(s.ctx, 99)
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestRespondAccept() {
	ch, err := s.challenges.Create(s.ctx, "rider-1", "rider-2", "blob")
	s.Require().NoError(err)

	resolved, err := s.challenges.Respond(s.ctx, ch.ID, true, 5, 4, 2)
	s.Require().NoError(err)
	s.Equal(models.ChallengeStatusAccepted, resolved.Status)
	s.Equal(5, resolved.Beauty)
	s.Equal(4, resolved.Creativity)
	s.Equal(2, resolved.Creepiness)
	s.Equal("rider-1", resolved.FromID)
}

func (s *MemoryStoreTestSuite) TestRespondDeclineKeepsRatings() {
	ch, err := s.challenges.Create(s.ctx, "rider-1", "rider-2", "blob")
	s.Require().NoError(err)

	resolved, err := s.challenges.Respond(s.ctx, ch.ID, false, 1, 2, 5)
	s.Require().NoError(err)
	s.Equal(models.ChallengeStatusDeclined, resolved.Status)

	stored, err := s.challenges.GetByID(s.ctx, ch.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.Beauty)
	s.Equal(2, stored.Creativity)
	s.Equal(5, stored.Creepiness)
}

func (s *MemoryStoreTestSuite) TestRespondUnknownChallenge() {
	_, err := s.challenges.Respond(s.ctx, 42, true, 5, 5, 1)
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestRespondExactlyOnce() {
	ch, err := s.challenges.Create(s.ctx, "rider-1", "rider-2", "blob")
	s.Require().NoError(err)

	const callers = 20
	results := make(chan error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		accepted := i%2 == 0
		go func(accepted bool) {
			defer wg.Done()
			_, err := s.challenges.Respond(s.ctx, ch.ID, accepted, 5, 5, 1)
			results <- err
		}(accepted)
	}
	wg.Wait()
	close(results)

	var succeeded, lost int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, ErrAlreadyResolved)
		lost++
	}
	s.Equal(1, succeeded)
	s.Equal(callers-1, lost)

	stored, err := s.challenges.GetByID(s.ctx, ch.ID)
	s.Require().NoError(err)
	s.NotEqual(models.ChallengeStatusPending, stored.Status)
}

func (s *MemoryStoreTestSuite) TestTerminalChallengeNeverMutates() {
	ch, err := s.challenges.Create(s.ctx, "rider-1", "rider-2", "blob")
	s.Require().NoError(err)

	_, err = s.challenges.Respond(s.ctx, ch.ID, true, 5, 5, 1)
	s.Require().NoError(err)

	_, err = s.challenges.Respond(s.ctx, ch.ID, false, 1, 1, 5)
	s.ErrorIs(err, ErrAlreadyResolved)

	stored, err := s.challenges.GetByID(s.ctx, ch.ID)
	s.Require().NoError(err)
	s.Equal(models.ChallengeStatusAccepted, stored.Status)
	s.Equal(5, stored.Beauty)
}
