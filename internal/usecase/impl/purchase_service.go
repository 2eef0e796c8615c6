package impl

import (
	"context"
	"fmt"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	"webmarket/internal/errors"
	"webmarket/internal/usecase"

	"github.com/google/uuid"
)

type purchaseService struct {
	txManager repository.TransactionManager
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService(txManager repository.TransactionManager) usecase.PurchaseUsecase {
	return &purchaseService{txManager: txManager}
}

// Buy transfers the product to the user's library. Every check and the
// final insert run inside one transaction so two concurrent buys of the
// same product by the same user cannot both pass the duplicate check.
func (s *purchaseService) Buy(ctx context.Context, productID int, userID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users := factory.NewUserRepository()
		products := factory.NewProductRepository()
		purchases := factory.NewPurchaseRepository()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return fmt.Errorf("failed to find user: %w", err)
		}

		product, err := products.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return fmt.Errorf("failed to find product: %w", err)
		}

		if product.IsOwnedBy(user) {
			return domainerrors.ErrOwnProduct
		}

		bought, err := product.IsBought(ctx, purchases, user)
		if err != nil {
			return fmt.Errorf("failed to resolve purchase state: %w", err)
		}
		if bought {
			return domainerrors.ErrAlreadyBought
		}

		if !user.CanAfford(product.FinalPrice()) {
			return domainerrors.ErrInsufficientFunds
		}

		purchase := &entity.BoughtProduct{
			AppUserRefID: &user.ID,
			ProductRefID: product.ID,
		}
		if err := purchases.Create(ctx, purchase); err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return nil
}
