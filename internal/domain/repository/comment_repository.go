package repository

import (
	"context"

	"webmarket/internal/domain/entity"
)

// CommentRepository resolves user comments. Rating aggregation happens
// in the domain model over slices fetched here.
type CommentRepository interface {
	// CommentsByProduct retrieves all comments for a product.
	CommentsByProduct(ctx context.Context, productID int) ([]entity.UserComment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.UserComment) error
}
