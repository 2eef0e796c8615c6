package model

import "github.com/google/uuid"

// BoughtProductModel mirrors the 'BoughtProducts' table linking users
// to the products they own a copy of.
type BoughtProductModel struct {
	ID           int        `gorm:"column:ID;primaryKey;autoIncrement"`
	AppUserRefID *uuid.UUID `gorm:"column:AppUserRefID;type:uuid;index"`
	ProductRefID int        `gorm:"column:ProductRefID;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (BoughtProductModel) TableName() string {
	return "BoughtProducts"
}
