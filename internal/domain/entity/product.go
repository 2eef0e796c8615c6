// Package entity contains the core business objects of the catalog,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Display sentinels that API clients and templates match verbatim.
const (
	FreeLabel       = "free"
	NoDiscountLabel = "no"
	LinkYesLabel    = "yes"
	NoLinkLabel     = "no link"
)

// Product is the central entity of the catalog. Every derived value
// (cost parts, final price, display strings) is computed on demand from
// the stored fields so it can never drift from them.
type Product struct {
	ID                       int             // Caller-assigned identifier, unique and stable once assigned.
	Name                     string          // Display name, at most 32 characters, required.
	Type                     string          // Category name, at most 32 characters, required.
	Price                    decimal.Decimal // Base price before discount, two fractional digits.
	Discount                 float64         // Discount percentage, expected in [0,100] but not enforced.
	Description              string          // Optional, at most 512 characters.
	Link                     string          // Optional external link, at most 128 characters.
	OnlyRegisteredCanComment bool            // Comment policy flag, advisory metadata for the comment surface.
	OnlyOneCommentPerUser    bool            // Comment policy flag, advisory metadata for the comment surface.
	FileName                 string          // Name of the uploaded file, empty when none.
	AddedDate                time.Time       // Date the product was added to the catalog.
	OwnerID                  *uuid.UUID      // User that listed the product, nil for seeded rows.
}

// CostIntegral is the price truncated toward zero.
func (p *Product) CostIntegral() int {
	return int(p.Price.IntPart())
}

// CostFractional is the part of the price below one currency unit.
func (p *Product) CostFractional() decimal.Decimal {
	return p.Price.Sub(p.Price.Truncate(0))
}

// FinalPrice is the price after the discount is applied:
// price - price*discount/100. It is never stored.
func (p *Product) FinalPrice() decimal.Decimal {
	return p.Price.Sub(p.Price.Mul(decimal.NewFromFloat(p.Discount)).Div(decimal.NewFromInt(100)))
}

// PriceString renders the base price with the currency suffix, or
// "free" when the price is zero.
func (p *Product) PriceString() string {
	if p.Price.IsPositive() {
		return p.Price.String() + "€"
	}

	return FreeLabel
}

// FinalPriceString renders the discounted price with at most two
// decimal digits and the currency suffix, or "free" when it is zero or
// below.
func (p *Product) FinalPriceString() string {
	final := p.FinalPrice()
	if !final.IsPositive() {
		return FreeLabel
	}

	return formatAtMostTwoDecimals(final) + "€"
}

// DiscountString renders the discount percentage, or "no" when there is
// no discount.
func (p *Product) DiscountString() string {
	if p.Discount > 0 {
		return formatFloat(p.Discount) + "%"
	}

	return NoDiscountLabel
}

// DiscountSupString is the superscript variant of DiscountString: it
// renders the empty string instead of "no" when there is no discount.
func (p *Product) DiscountSupString() string {
	if p.Discount > 0 {
		return formatFloat(p.Discount) + "%"
	}

	return ""
}

// LinkTableString indicates whether the product carries an external link.
func (p *Product) LinkTableString() string {
	if strings.TrimSpace(p.Link) == "" {
		return NoLinkLabel
	}

	return LinkYesLabel
}

// IsOwnedBy reports whether the given user listed this product.
// A nil user or an unowned product never matches.
func (p *Product) IsOwnedBy(user *User) bool {
	return p.OwnerID != nil && user != nil && *p.OwnerID == user.ID
}

// MakeNewID returns the first integer at or above len(products)+1 that
// no existing product uses. The probe is linear and works on a snapshot;
// callers must serialize concurrent allocation, see the catalog service.
func MakeNewID(products []Product) int {
	id := len(products) + 1
	for hasProductID(products, id) {
		id++
	}

	return id
}

func hasProductID(products []Product, id int) bool {
	for i := range products {
		if products[i].ID == id {
			return true
		}
	}

	return false
}

// NormalizeTypeName maps the form placeholder "Choose type" to a
// readable label; any other value passes through unchanged.
func NormalizeTypeName(typeName string) string {
	if typeName == "Choose type" {
		return "No type specified"
	}

	return typeName
}

// CompareByName orders products lexicographically by name.
func CompareByName(x, y *Product) int {
	return strings.Compare(x.Name, y.Name)
}

// CompareByType orders products lexicographically by type.
func CompareByType(x, y *Product) int {
	return strings.Compare(x.Type, y.Type)
}

// CompareByPrice orders products by ascending base price.
func CompareByPrice(x, y *Product) int {
	return x.Price.Cmp(y.Price)
}

// CompareByDiscount orders products by descending discount: the bigger
// the discount, the earlier the product.
func CompareByDiscount(x, y *Product) int {
	return compareFloat(y.Discount, x.Discount)
}

// CompareByFinalPrice orders products by ascending discounted price.
func CompareByFinalPrice(x, y *Product) int {
	return x.FinalPrice().Cmp(y.FinalPrice())
}

// CompareTo is the natural ordering of products: descending by ID, so
// newer products come first.
func (p *Product) CompareTo(other *Product) int {
	switch {
	case p.ID < other.ID:
		return 1
	case p.ID > other.ID:
		return -1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatAtMostTwoDecimals rounds to two fractional digits and drops
// trailing zeros, matching the legacy "0.##" rendering.
func formatAtMostTwoDecimals(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s
}
