package model

// ImageModel mirrors the 'Images' table. OrderIndex fixes the gallery
// position, the lowest index is the cover image.
type ImageModel struct {
	ID          int    `gorm:"column:ID;primaryKey;autoIncrement"`
	Description string `gorm:"column:Description;type:varchar(256)"`
	Link        string `gorm:"column:Link;type:varchar(512)"`
	OrderIndex  int    `gorm:"column:OrderIndex;not null"`
	ProductID   int    `gorm:"column:ProductID;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "Images"
}
