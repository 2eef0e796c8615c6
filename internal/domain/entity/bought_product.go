package entity

import "github.com/google/uuid"

// BoughtProduct links a user to a purchased product. The existence of a
// row is the sole evidence of ownership; no quantity, timestamp or
// price paid is recorded.
type BoughtProduct struct {
	ID           int        // Identifier assigned by the store.
	AppUserRefID *uuid.UUID // The buyer.
	ProductRefID int        // The purchased product.
}
