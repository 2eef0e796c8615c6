package entity

import "github.com/google/uuid"

// UserComment is a user's review of a product. A rating of zero means
// the comment was left without a rating; such comments are excluded
// from percentage denominators, see TotalNonZeroCommentCount.
type UserComment struct {
	ID        int        // Identifier assigned by the store.
	ProductID int        // The product the comment is attached to.
	UserID    *uuid.UUID // Author, nil for anonymous comments.
	Rating    float64    // Star rating, expected in [0,5].
	Text      string     // Free-form comment body, optional.
}
