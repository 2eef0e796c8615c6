package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PurchaseUsecase defines the interface for buying catalog products
type PurchaseUsecase interface {
	// Buy transfers the product to the user's library after checking
	// ownership, prior purchase and balance inside one transaction.
	Buy(ctx context.Context, productID int, userID uuid.UUID) error
}
