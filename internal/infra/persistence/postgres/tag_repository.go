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

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// TagNamesByProduct retrieves just the tag texts for a product.
func (repo *tagRepository) TagNamesByProduct(ctx context.Context, productID int) ([]string, error) {
	names := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where(`"ProductID" = ?`, productID).
		Pluck("Text", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tag names")
	}

	return names, nil
}

// TagsByProduct retrieves the full tag rows for a product.
func (repo *tagRepository) TagsByProduct(ctx context.Context, productID int) ([]entity.Tag, error) {
	var tagModels []model.TagModel

	if err := repo.db.WithContext(ctx).
		Where(`"ProductID" = ?`, productID).
		Order(`"ID"`).
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]entity.Tag, 0, len(tagModels))
	for i := range tagModels {
		tags = append(tags, entity.Tag{
			ID:        tagModels[i].ID,
			Text:      tagModels[i].Text,
			TypeID:    tagModels[i].TypeID,
			ProductID: tagModels[i].ProductID,
		})
	}

	return tags, nil
}

// Create persists a new tag.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := &model.TagModel{
		Text:      tag.Text,
		TypeID:    tag.TypeID,
		ProductID: tag.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = tagM.ID

	return nil
}
