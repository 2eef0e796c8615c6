package model

// TagModel mirrors the 'Tags' table. ProductID is an integer foreign
// key into Products.
type TagModel struct {
	ID        int    `gorm:"column:ID;primaryKey;autoIncrement"`
	Text      string `gorm:"column:Text;type:varchar(64);not null"`
	TypeID    int    `gorm:"column:TypeID"`
	ProductID int    `gorm:"column:ProductID;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "Tags"
}
