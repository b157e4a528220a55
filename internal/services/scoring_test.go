package services

import (
	"testing"

	"github.com/bikefight/bikefight.github.io/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRewardsLowCreepiness(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name                           string
		beauty, creativity, creepiness int
		want                           int
	}{
		{"max award", 5, 5, 1, 15},
		{"min award", 1, 1, 5, 3},
		{"mid range", 3, 4, 2, 11},
		{"creepiness inverted", 1, 1, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Score(tt.beauty, tt.creativity, tt.creepiness)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreRejectsOutOfRangeRatings(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name                           string
		beauty, creativity, creepiness int
	}{
		{"creepiness above scale", 5, 5, 6},
		{"beauty zero", 0, 3, 3},
		{"creativity negative", 3, -1, 3},
		{"beauty above scale", 6, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Score(tt.beauty, tt.creativity, tt.creepiness)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}
