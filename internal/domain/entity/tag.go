package entity

// Tag annotates exactly one product with a short text label.
type Tag struct {
	ID        int    // Identifier assigned by the store.
	Text      string // Tag label, at most 32 characters, required.
	TypeID    int    // Reference into the product type categories.
	ProductID int    // The product this tag annotates.
}
