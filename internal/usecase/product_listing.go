package usecase

import (
	"time"

	"webmarket/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductListing is a flattened catalog projection carrying only the
// fields the listing table needs. Unlike the entity comparators, the
// listing sorts ascending so the cheapest and least discounted rows
// come first.
type ProductListing struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Discount   float64         `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
	AddedDate  time.Time       `json:"added_date"`
}

// NewProductListing projects a product into its listing row.
func NewProductListing(p entity.Product) ProductListing {
	return ProductListing{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		Price:      p.Price,
		Discount:   p.Discount,
		FinalPrice: p.FinalPrice(),
		AddedDate:  p.AddedDate,
	}
}

// PriceString renders the listing price, or "free" for zero.
func (l ProductListing) PriceString() string {
	p := entity.Product{Price: l.Price}

	return p.PriceString()
}

// CompareByName orders listings ascending by name.
func CompareByName(a, b ProductListing) int {
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	default:
		return 0
	}
}

// CompareByType orders listings ascending by type name.
func CompareByType(a, b ProductListing) int {
	switch {
	case a.Type < b.Type:
		return -1
	case a.Type > b.Type:
		return 1
	default:
		return 0
	}
}

// CompareByPrice orders listings ascending by price.
func CompareByPrice(a, b ProductListing) int {
	return a.Price.Cmp(b.Price)
}

// CompareByDiscount orders listings ascending by discount.
func CompareByDiscount(a, b ProductListing) int {
	switch {
	case a.Discount < b.Discount:
		return -1
	case a.Discount > b.Discount:
		return 1
	default:
		return 0
	}
}

// CompareByFinalPrice orders listings ascending by discounted price.
func CompareByFinalPrice(a, b ProductListing) int {
	return a.FinalPrice.Cmp(b.FinalPrice)
}

// CompareByNewest orders listings so the most recently added come
// first.
func CompareByNewest(a, b ProductListing) int {
	switch {
	case a.AddedDate.After(b.AddedDate):
		return -1
	case a.AddedDate.Before(b.AddedDate):
		return 1
	default:
		return 0
	}
}
