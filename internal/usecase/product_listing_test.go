package usecase

import (
	"slices"
	"testing"
	"time"

	"webmarket/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProductListing(t *testing.T) {
	added := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	product := entity.Product{
		ID:        4,
		Name:      "TestProduct",
		Type:      "Software",
		Price:     decimal.New(1000, -2),
		Discount:  30,
		AddedDate: added,
	}

	listing := NewProductListing(product)

	assert.Equal(t, 4, listing.ID)
	assert.Equal(t, "TestProduct", listing.Name)
	assert.Equal(t, "Software", listing.Type)
	assert.True(t, listing.Price.Equal(decimal.New(1000, -2)))
	assert.True(t, listing.FinalPrice.Equal(decimal.New(700, -2)))
	assert.Equal(t, added, listing.AddedDate)
}

func TestProductListing_PriceString(t *testing.T) {
	assert.Equal(t, "10€", ProductListing{Price: decimal.New(1000, -2)}.PriceString())
	assert.Equal(t, "free", ProductListing{}.PriceString())
}

func TestProductListing_Comparators(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	listings := []ProductListing{
		{ID: 1, Name: "Cherry", Type: "Game", Price: decimal.New(1499, -2), Discount: 10, FinalPrice: decimal.New(13491, -3), AddedDate: base.AddDate(0, 0, 2)},
		{ID: 2, Name: "Apple", Type: "Software", Price: decimal.New(1000, -2), Discount: 30, FinalPrice: decimal.New(700, -2), AddedDate: base},
		{ID: 3, Name: "Banana", Type: "Book", Price: decimal.New(500, -2), Discount: 0, FinalPrice: decimal.New(500, -2), AddedDate: base.AddDate(0, 0, 1)},
	}

	tests := []struct {
		name    string
		cmp     func(a, b ProductListing) int
		wantIDs []int
	}{
		{name: "by name ascending", cmp: CompareByName, wantIDs: []int{2, 3, 1}},
		{name: "by type ascending", cmp: CompareByType, wantIDs: []int{3, 1, 2}},
		{name: "by price ascending", cmp: CompareByPrice, wantIDs: []int{3, 2, 1}},
		{name: "by discount ascending", cmp: CompareByDiscount, wantIDs: []int{3, 1, 2}},
		{name: "by final price ascending", cmp: CompareByFinalPrice, wantIDs: []int{3, 2, 1}},
		{name: "by newest first", cmp: CompareByNewest, wantIDs: []int{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := slices.Clone(listings)
			slices.SortStableFunc(sorted, tt.cmp)

			gotIDs := make([]int, len(sorted))
			for i, l := range sorted {
				gotIDs[i] = l.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}
