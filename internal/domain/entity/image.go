package entity

// Image is one entry of a product's gallery. A product can carry many
// images; OrderIndex defines their display order and is not guaranteed
// to be unique.
type Image struct {
	ID          int    // Identifier assigned by the store.
	Description string // Optional, at most 512 characters.
	Link        string // Image URL, at most 256 characters, required.
	OrderIndex  int    // Position within the product's gallery.
	ProductID   int    // The product this image belongs to.
}
