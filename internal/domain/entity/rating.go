package entity

import "math"

// Rating aggregation works over a caller-supplied comment slice. The
// caller is responsible for pre-filtering to this product's comments;
// none of these methods filter by product ID themselves.

// RateSum is the sum of all supplied comment ratings, including
// zero-rating entries.
func (p *Product) RateSum(comments []UserComment) float64 {
	var sum float64
	for i := range comments {
		sum += comments[i].Rating
	}

	return sum
}

// RateAverage is the mean rating over all supplied comments.
// An empty slice yields 0, the defined "no rating yet" value.
func (p *Product) RateAverage(comments []UserComment) float64 {
	if len(comments) == 0 {
		return 0
	}

	return p.RateSum(comments) / float64(len(comments))
}

// Rate is the rating normalized to [0,1] against the five-star maximum.
// An empty slice yields 0.
func (p *Product) Rate(comments []UserComment) float64 {
	if len(comments) == 0 {
		return 0
	}

	return p.RateSum(comments) / (float64(len(comments)) * 5)
}

// StarsCount counts comments whose truncated rating equals stars.
// It returns -1 for stars above five; the sentinel marks invalid input
// without raising a fault.
func (p *Product) StarsCount(stars int, comments []UserComment) int {
	if stars > 5 {
		return -1
	}

	var count int
	for i := range comments {
		if math.Trunc(comments[i].Rating) == float64(stars) {
			count++
		}
	}

	return count
}

// TotalNonZeroCommentCount counts comments that carry a rating.
// Comments left with no rating (rating == 0) are excluded so they do
// not dilute percentage denominators.
func (p *Product) TotalNonZeroCommentCount(comments []UserComment) int {
	var count int
	for i := range comments {
		if comments[i].Rating != 0 {
			count++
		}
	}

	return count
}

// StarsPercent is the share of rated comments whose truncated rating
// equals stars. Stars above five yield 0, and a zero star count
// short-circuits to 0 before the division so an empty denominator can
// never be reached.
func (p *Product) StarsPercent(stars int, comments []UserComment) float64 {
	if stars > 5 {
		return 0
	}

	starsCount := p.StarsCount(stars, comments)
	if starsCount <= 0 {
		return 0
	}

	return float64(starsCount) / float64(p.TotalNonZeroCommentCount(comments))
}
