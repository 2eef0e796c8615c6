package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func commentsWithRatings(ratings ...float64) []UserComment {
	comments := make([]UserComment, 0, len(ratings))
	for i, r := range ratings {
		comments = append(comments, UserComment{ID: i + 1, ProductID: 1, Rating: r})
	}

	return comments
}

func TestProduct_RateSum(t *testing.T) {
	p := &Product{ID: 1}
	assert.Zero(t, p.RateSum(nil))
	assert.InDelta(t, 8, p.RateSum(commentsWithRatings(0, 3, 0, 5)), 1e-9)
}

func TestProduct_RateAverage(t *testing.T) {
	p := &Product{ID: 1}
	// Zero-rating comments still count into the denominator.
	assert.InDelta(t, 2, p.RateAverage(commentsWithRatings(0, 3, 0, 5)), 1e-9)
	assert.Zero(t, p.RateAverage(nil))
}

func TestProduct_Rate_Normalized(t *testing.T) {
	p := &Product{ID: 1}
	assert.InDelta(t, 0.4, p.Rate(commentsWithRatings(0, 3, 0, 5)), 1e-9)
	assert.InDelta(t, 1, p.Rate(commentsWithRatings(5, 5)), 1e-9)
	assert.Zero(t, p.Rate(nil))
}

func TestProduct_StarsCount(t *testing.T) {
	p := &Product{ID: 1}
	comments := commentsWithRatings(4.2, 4.9, 3, 5, 0)

	assert.Equal(t, 2, p.StarsCount(4, comments), "truncated ratings 4.2 and 4.9 both count as four stars")
	assert.Equal(t, 1, p.StarsCount(5, comments))
	assert.Equal(t, 1, p.StarsCount(0, comments))
	assert.Equal(t, -1, p.StarsCount(6, comments))
	assert.Equal(t, -1, p.StarsCount(6, nil))
}

func TestProduct_TotalNonZeroCommentCount(t *testing.T) {
	p := &Product{ID: 1}
	assert.Equal(t, 2, p.TotalNonZeroCommentCount(commentsWithRatings(0, 3, 0, 5)))
	assert.Zero(t, p.TotalNonZeroCommentCount(nil))
	assert.Zero(t, p.TotalNonZeroCommentCount(commentsWithRatings(0, 0)))
}

func TestProduct_StarsPercent(t *testing.T) {
	p := &Product{ID: 1}
	comments := commentsWithRatings(4.2, 4.9, 3, 0)

	assert.InDelta(t, 2.0/3.0, p.StarsPercent(4, comments), 1e-9)
	assert.InDelta(t, 1.0/3.0, p.StarsPercent(3, comments), 1e-9)

	assert.Zero(t, p.StarsPercent(6, comments), "out-of-range stars yield zero, not an error")
	assert.Zero(t, p.StarsPercent(5, comments), "no matching comments short-circuits to zero")
	// A zero star count must short-circuit before the division even
	// when the denominator itself would be zero.
	assert.Zero(t, p.StarsPercent(2, commentsWithRatings(0, 0)))
	assert.Zero(t, p.StarsPercent(3, nil))
}
