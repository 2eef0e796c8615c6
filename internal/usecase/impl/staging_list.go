package impl

import (
	"sync"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/usecase"
)

// StagingList is the shared, mutex-guarded list of recently added
// products together with the currently chosen product ID. It replaces
// what used to be unsynchronized global state; every handler goroutine
// goes through the same injected instance. Entries are stored as
// lightweight listing projections, not full entities.
type StagingList struct {
	mu       sync.RWMutex
	products []usecase.ProductListing
	chosenID int
}

// NewStagingList creates an empty staging list with no chosen product.
func NewStagingList() *StagingList {
	return &StagingList{}
}

// Add appends a product unless its ID or name is already staged.
func (s *StagingList) Add(product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			return domainerrors.ErrProductIDTaken
		}
		if s.products[i].Name == product.Name {
			return domainerrors.ErrProductNameTaken
		}
	}

	s.products = append(s.products, usecase.NewProductListing(product))

	return nil
}

// ContainsID reports whether a product with the given ID is staged.
func (s *StagingList) ContainsID(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return true
		}
	}

	return false
}

// ContainsName reports whether a product with the given name is staged.
func (s *StagingList) ContainsName(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].Name == name {
			return true
		}
	}

	return false
}

// Choose marks the given product ID as the current catalog selection.
func (s *StagingList) Choose(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chosenID = id
}

// ChosenID returns the currently chosen product ID, or zero when
// nothing is chosen. Product IDs start at one so zero never collides.
func (s *StagingList) ChosenID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chosenID
}

// Items returns a copy of the staged listing rows.
func (s *StagingList) Items() []usecase.ProductListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]usecase.ProductListing, len(s.products))
	copy(items, s.products)

	return items
}
