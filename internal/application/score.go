package application

import (
	"math"

	"github.com/alimadkour96/4a8lny/internal/model"
)

// RatingScore converts the average reviewer rating (1..5) to a 0..100 score.
// It returns nil when there are no notes.
func RatingScore(notes []model.ReviewNote) *int {
	if len(notes) == 0 {
		return nil
	}
	sum := 0
	for _, n := range notes {
		sum += n.Rating
	}
	avg := float64(sum) / float64(len(notes))
	return clampScore(avg * 20)
}

// EffectiveScore picks the application score: reviewer ratings win over the screening score.
func EffectiveScore(rating, screening *int) *int {
	if rating != nil {
		return rating
	}
	if screening == nil {
		return nil
	}
	v := *screening
	return &v
}

func clampScore(v float64) *int {
	s := int(math.Round(v))
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return &s
}
