package services

import (
	"fmt"

	"github.com/bikefight/bikefight.github.io/internal/store"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score turns a rating triple into a point award. High beauty and creativity
// pay out directly; creepiness is inverted against the scale ceiling so the
// least creepy photo earns the most. With a 1-5 scale the result is 3-15.
// Out-of-range ratings are rejected rather than clamped so every stored award
// can be recomputed from its ratings.
func (s *ScoringService) Score(beauty, creativity, creepiness int) (int, error) {
	for _, r := range []int{beauty, creativity, creepiness} {
		if r < RatingMin || r > RatingMax {
			return 0, fmt.Errorf("%w: rating %d outside %d-%d", store.ErrInvalidInput, r, RatingMin, RatingMax)
		}
	}
	return beauty + creativity + (RatingMax + 1 - creepiness), nil
}
