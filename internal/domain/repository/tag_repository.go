package repository

import (
	"context"

	"webmarket/internal/domain/entity"
)

// TagRepository resolves the tags attached to products. It embeds the
// read capability the product model consumes directly.
type TagRepository interface {
	entity.TagReader

	// TagsByProduct retrieves the full tag rows for a product.
	TagsByProduct(ctx context.Context, productID int) ([]entity.Tag, error)

	// Create persists a new tag.
	Create(ctx context.Context, tag *entity.Tag) error
}
