package postgres

import (
	"context"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	"webmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// BoughtProductsByUser retrieves the purchase rows of a user. A nil
// user yields an empty slice, never nil.
func (repo *purchaseRepository) BoughtProductsByUser(ctx context.Context, userID *uuid.UUID) ([]entity.BoughtProduct, error) {
	purchases := make([]entity.BoughtProduct, 0)
	if userID == nil {
		return purchases, nil
	}

	var purchaseModels []model.BoughtProductModel
	if err := repo.db.WithContext(ctx).
		Where(`"AppUserRefID" = ?`, *userID).
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	for i := range purchaseModels {
		purchases = append(purchases, entity.BoughtProduct{
			ID:           purchaseModels[i].ID,
			AppUserRefID: purchaseModels[i].AppUserRefID,
			ProductRefID: purchaseModels[i].ProductRefID,
		})
	}

	return purchases, nil
}

// Create persists a new purchase row.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.BoughtProduct) error {
	purchaseM := &model.BoughtProductModel{
		AppUserRefID: purchase.AppUserRefID,
		ProductRefID: purchase.ProductRefID,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyBought
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record purchase")
	}

	purchase.ID = purchaseM.ID

	return nil
}
