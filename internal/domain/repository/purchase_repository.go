package repository

import (
	"context"

	"webmarket/internal/domain/entity"
)

// PurchaseRepository records and resolves purchases. It embeds the read
// capability the product model consumes for ownership checks.
type PurchaseRepository interface {
	entity.PurchaseReader

	// Create persists a new purchase row.
	Create(ctx context.Context, purchase *entity.BoughtProduct) error
}
