package model

import "github.com/google/uuid"

// UserCommentModel mirrors the 'Comments' table. A zero rating means
// the author left text without rating the product.
type UserCommentModel struct {
	ID        int        `gorm:"column:ID;primaryKey;autoIncrement"`
	ProductID int        `gorm:"column:ProductID;not null;index"`
	UserID    *uuid.UUID `gorm:"column:UserID;type:uuid"`
	Rating    float64    `gorm:"column:Rating;not null"`
	Text      string     `gorm:"column:Text;type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (UserCommentModel) TableName() string {
	return "Comments"
}
