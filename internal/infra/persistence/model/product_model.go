// Package model holds the GORM persistence models. The catalog keeps
// the historical table and column names, so every field carries an
// explicit PascalCase column tag.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'Products' table. IDs are assigned by the
// application inside a transaction, not by a database sequence.
type ProductModel struct {
	ID                       int             `gorm:"column:ID;primaryKey;autoIncrement:false"`
	Name                     string          `gorm:"column:Name;type:varchar(32);not null;unique"`
	Type                     string          `gorm:"column:Type;type:varchar(32);not null"`
	Price                    decimal.Decimal `gorm:"column:Price;type:decimal(18,2);not null"`
	Discount                 float64         `gorm:"column:Discount;not null"`
	Description              string          `gorm:"column:Description;type:varchar(512)"`
	Link                     string          `gorm:"column:Link;type:varchar(128)"`
	OnlyRegisteredCanComment bool            `gorm:"column:OnlyRegisteredCanComment;not null"`
	OnlyOneCommentPerUser    bool            `gorm:"column:OnlyOneCommentPerUser;not null"`
	FileName                 string          `gorm:"column:FileName;type:varchar(256)"`
	AddedDate                time.Time       `gorm:"column:AddedDate"`
	OwnerID                  *uuid.UUID      `gorm:"column:OwnerID;type:uuid"`

	Tags     []TagModel         `gorm:"foreignKey:ProductID;references:ID"`
	Images   []ImageModel       `gorm:"foreignKey:ProductID;references:ID"`
	Comments []UserCommentModel `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "Products"
}
