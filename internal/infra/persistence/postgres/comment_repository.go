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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// CommentsByProduct retrieves all comments for a product.
func (repo *commentRepository) CommentsByProduct(ctx context.Context, productID int) ([]entity.UserComment, error) {
	var commentModels []model.UserCommentModel

	if err := repo.db.WithContext(ctx).
		Where(`"ProductID" = ?`, productID).
		Order(`"ID"`).
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]entity.UserComment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, entity.UserComment{
			ID:        commentModels[i].ID,
			ProductID: commentModels[i].ProductID,
			UserID:    commentModels[i].UserID,
			Rating:    commentModels[i].Rating,
			Text:      commentModels[i].Text,
		})
	}

	return comments, nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.UserComment) error {
	commentM := &model.UserCommentModel{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Rating:    comment.Rating,
		Text:      comment.Text,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID

	return nil
}
