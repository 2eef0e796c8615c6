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

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{
		db: db,
	}
}

// ImagesByProduct retrieves a product's images ordered by their order
// index.
func (repo *imageRepository) ImagesByProduct(ctx context.Context, productID int) ([]entity.Image, error) {
	var imageModels []model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where(`"ProductID" = ?`, productID).
		Order(`"OrderIndex"`).
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	images := make([]entity.Image, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, toImageDomain(&imageModels[i]))
	}

	return images, nil
}

// ImageByOrderIndex retrieves a single image by its gallery position.
// A missing row is reported as nil, not an error, so callers can fall
// back to the placeholder.
func (repo *imageRepository) ImageByOrderIndex(ctx context.Context, productID, index int) (*entity.Image, error) {
	var imageM model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where(`"ProductID" = ? AND "OrderIndex" = ?`, productID, index).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find image by order index")
	}

	image := toImageDomain(&imageM)

	return &image, nil
}

// Create persists a new image.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := &model.ImageModel{
		Description: image.Description,
		Link:        image.Link,
		OrderIndex:  image.OrderIndex,
		ProductID:   image.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.ID = imageM.ID

	return nil
}

func toImageDomain(m *model.ImageModel) entity.Image {
	return entity.Image{
		ID:          m.ID,
		Description: m.Description,
		Link:        m.Link,
		OrderIndex:  m.OrderIndex,
		ProductID:   m.ProductID,
	}
}
