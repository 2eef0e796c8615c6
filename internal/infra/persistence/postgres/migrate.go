package postgres

import (
	"context"
	"time"

	"webmarket/internal/errors"
	"webmarket/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates the catalog tables and inserts the historical seed
// rows. Seeding is idempotent: existing rows are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.AppUserModel{},
		&model.ProductModel{},
		&model.ProductTypeModel{},
		&model.TagModel{},
		&model.ImageModel{},
		&model.UserCommentModel{},
		&model.BoughtProductModel{},
	); err != nil {
		return errors.Wrap(err, "auto migration failed")
	}

	if err := seedProducts(ctx, db); err != nil {
		return errors.Wrap(err, "seeding failed")
	}

	return nil
}

// seedProducts inserts the two original demo products with their fixed
// IDs and a zero AddedDate.
func seedProducts(ctx context.Context, db *gorm.DB) error {
	seed := []model.ProductModel{
		{
			ID:        1,
			Name:      "TestProduct",
			Type:      "Software",
			Price:     decimal.New(1000, -2),
			Discount:  30,
			AddedDate: time.Time{},
		},
		{
			ID:        2,
			Name:      "AnotherTestProduct",
			Type:      "Game",
			Price:     decimal.New(1499, -2),
			Discount:  10,
			AddedDate: time.Time{},
		},
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
}
