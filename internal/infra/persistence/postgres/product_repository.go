// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	"webmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its identifier.
func (repo *productRepository) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where(`"ID" = ?`, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindAll retrieves every product, newest first.
func (repo *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var productModels []model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order(`"ID" DESC`).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, *toProductDomain(&productModels[i]))
	}

	return products, nil
}

// Create persists a new product with its caller-assigned ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductNameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("missing required product information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where(`"ID" = ?`, product.ID).
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its identifier.
func (repo *productRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).
		Where(`"ID" = ?`, id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain maps the persistence model to the domain entity.
func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                       m.ID,
		Name:                     m.Name,
		Type:                     m.Type,
		Price:                    m.Price,
		Discount:                 m.Discount,
		Description:              m.Description,
		Link:                     m.Link,
		OnlyRegisteredCanComment: m.OnlyRegisteredCanComment,
		OnlyOneCommentPerUser:    m.OnlyOneCommentPerUser,
		FileName:                 m.FileName,
		AddedDate:                m.AddedDate,
		OwnerID:                  m.OwnerID,
	}
}

// fromProductDomain maps the domain entity to the persistence model.
func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                       p.ID,
		Name:                     p.Name,
		Type:                     p.Type,
		Price:                    p.Price,
		Discount:                 p.Discount,
		Description:              p.Description,
		Link:                     p.Link,
		OnlyRegisteredCanComment: p.OnlyRegisteredCanComment,
		OnlyOneCommentPerUser:    p.OnlyOneCommentPerUser,
		FileName:                 p.FileName,
		AddedDate:                p.AddedDate,
		OwnerID:                  p.OwnerID,
	}
}
