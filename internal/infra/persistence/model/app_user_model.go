package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppUserModel mirrors the 'AppUsers' table. The catalog only reads
// from it; account management lives elsewhere.
type AppUserModel struct {
	ID       uuid.UUID       `gorm:"column:Id;type:uuid;primaryKey"`
	UserName string          `gorm:"column:UserName;type:varchar(256)"`
	Balance  decimal.Decimal `gorm:"column:Balance;type:decimal(18,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AppUserModel) TableName() string {
	return "AppUsers"
}
