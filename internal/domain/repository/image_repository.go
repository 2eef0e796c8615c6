package repository

import (
	"context"

	"webmarket/internal/domain/entity"
)

// ImageRepository resolves product gallery images. It embeds the read
// capability the product model consumes directly; implementations
// return image sets ordered by their order index.
type ImageRepository interface {
	entity.ImageReader

	// Create persists a new image.
	Create(ctx context.Context, image *entity.Image) error
}
