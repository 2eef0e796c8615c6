package model

// ProductTypeModel mirrors the 'ProductTypes' table.
type ProductTypeModel struct {
	ID   int    `gorm:"column:ID;primaryKey;autoIncrement"`
	Name string `gorm:"column:Name;type:varchar(32);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTypeModel) TableName() string {
	return "ProductTypes"
}
