package entity

import (
	"context"

	"github.com/google/uuid"
)

// Button and status labels matched verbatim by the presentation layer.
const (
	LabelYours    = "Yours"
	LabelBought   = "Bought"
	LabelSelected = "Selected"
	LabelAdd      = "+"
)

// PurchaseReader is the slice of the persistence contract the product
// model needs to answer ownership questions. The lookup tolerates an
// absent user and returns an empty, never nil, slice.
type PurchaseReader interface {
	BoughtProductsByUser(ctx context.Context, userID *uuid.UUID) ([]BoughtProduct, error)
}

// TagReader resolves the tag names attached to a product.
type TagReader interface {
	TagNamesByProduct(ctx context.Context, productID int) ([]string, error)
}

// ImageReader resolves a product's images, ordered by their order index.
type ImageReader interface {
	ImagesByProduct(ctx context.Context, productID int) ([]Image, error)
	ImageByOrderIndex(ctx context.Context, productID, index int) (*Image, error)
}

// IsBought reports whether the acting user already purchased this
// product. A nil user yields an empty lookup and therefore false.
func (p *Product) IsBought(ctx context.Context, purchases PurchaseReader, user *User) (bool, error) {
	if user == nil {
		return false, nil
	}

	rows, err := purchases.BoughtProductsByUser(ctx, &user.ID)
	if err != nil {
		return false, err
	}

	for i := range rows {
		if rows[i].ProductRefID == p.ID {
			return true, nil
		}
	}

	return false, nil
}

// IsBoughtString renders the purchase state as a button label.
func (p *Product) IsBoughtString(ctx context.Context, purchases PurchaseReader, user *User) (string, error) {
	bought, err := p.IsBought(ctx, purchases, user)
	if err != nil {
		return "", err
	}
	if bought {
		return LabelBought, nil
	}

	return LabelAdd, nil
}

// AddToCartLabel picks the add-to-cart button label for the acting
// user. Ownership wins over purchase state, which wins over the
// catalog selection; anything else renders the plain add label.
func (p *Product) AddToCartLabel(ctx context.Context, purchases PurchaseReader, user *User, chosenID int) (string, error) {
	if p.IsOwnedBy(user) {
		return LabelYours, nil
	}

	bought, err := p.IsBought(ctx, purchases, user)
	if err != nil {
		return "", err
	}
	if bought {
		return LabelBought, nil
	}
	if chosenID == p.ID {
		return LabelSelected, nil
	}

	return LabelAdd, nil
}

// TableHeaderClass styles the product's table header: selection or
// ownership first, then purchase state, then the default.
func (p *Product) TableHeaderClass(ctx context.Context, purchases PurchaseReader, user *User, chosenID int) (string, error) {
	if chosenID == p.ID || p.IsOwnedBy(user) {
		return "bg-dark text-white", nil
	}

	bought, err := p.IsBought(ctx, purchases, user)
	if err != nil {
		return "", err
	}
	if bought {
		return "bg-primary text-white", nil
	}

	return "", nil
}

// LinkClass styles the product's table link for the acting user.
func (p *Product) LinkClass(ctx context.Context, purchases PurchaseReader, user *User, chosenID int) (string, error) {
	bought, err := p.IsBought(ctx, purchases, user)
	if err != nil {
		return "", err
	}
	if bought || chosenID == p.ID || p.IsOwnedBy(user) {
		return "text-white", nil
	}

	return "text-dark", nil
}

// AddToCartButtonClass styles the add-to-cart button. The insufficient
// funds state compares the user's balance against the final price with
// a strict less-than.
func (p *Product) AddToCartButtonClass(ctx context.Context, purchases PurchaseReader, user *User, chosenID int) (string, error) {
	if chosenID == p.ID || p.IsOwnedBy(user) {
		return "btn btn-outline-light", nil
	}
	if user != nil && user.Balance.LessThan(p.FinalPrice()) {
		return "btn btn-outline-danger", nil
	}

	bought, err := p.IsBought(ctx, purchases, user)
	if err != nil {
		return "", err
	}
	if !bought {
		return "btn btn-outline-success", nil
	}

	return "btn btn-primary", nil
}

// ContainsTags checks the product's tag set against the requested tag
// names. With fullyMatching every requested tag must be present, so an
// empty request is vacuously true; otherwise at least one requested tag
// must match, so an empty request can never match.
func (p *Product) ContainsTags(ctx context.Context, tags TagReader, findTags []string, fullyMatching bool) (bool, error) {
	names, err := tags.TagNamesByProduct(ctx, p.ID)
	if err != nil {
		return false, err
	}

	if fullyMatching {
		for _, want := range findTags {
			if !containsString(names, want) {
				return false, nil
			}
		}

		return true, nil
	}

	for _, want := range findTags {
		if containsString(names, want) {
			return true, nil
		}
	}

	return false, nil
}

// ImageSrc resolves the display image for the product. Without an index
// it falls back to the first image by order; a missing image or an
// empty link yields the supplied fallback URL.
func (p *Product) ImageSrc(ctx context.Context, images ImageReader, index *int, fallback string) (string, error) {
	var (
		img *Image
		err error
	)
	if index == nil {
		list, listErr := images.ImagesByProduct(ctx, p.ID)
		if listErr != nil {
			return "", listErr
		}
		if len(list) > 0 {
			img = &list[0]
		}
	} else {
		img, err = images.ImageByOrderIndex(ctx, p.ID, *index)
		if err != nil {
			return "", err
		}
	}

	if img != nil && img.Link != "" {
		return img.Link, nil
	}

	return fallback, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}

	return false
}
