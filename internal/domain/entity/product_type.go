package entity

// ProductType is a category a product's Type field and a tag's TypeID
// refer to.
type ProductType struct {
	ID   int
	Name string
}
