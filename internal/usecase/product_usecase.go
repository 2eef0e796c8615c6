package usecase

import (
	"context"

	"webmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// StarBucket is the share of comments awarding a given star count.
type StarBucket struct {
	Stars   int     `json:"stars"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RatingSummary aggregates the comment ratings of one product.
type RatingSummary struct {
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	// Normalized is the average divided by the five star maximum.
	Normalized float64 `json:"normalized"`
	// RatedCount excludes comments with a zero rating.
	RatedCount int          `json:"rated_count"`
	Buckets    []StarBucket `json:"buckets"`
}

// ProductDetails is the full product page payload.
type ProductDetails struct {
	Product entity.Product `json:"product"`

	PriceString      string `json:"price_string"`
	FinalPriceString string `json:"final_price_string"`
	DiscountString   string `json:"discount_string"`

	Tags     []entity.Tag         `json:"tags"`
	Images   []entity.Image       `json:"images"`
	Comments []entity.UserComment `json:"comments"`

	Rating RatingSummary `json:"rating"`

	// FileSizeString is empty when the product has no stored file or
	// the upload directory is not configured.
	FileSizeString string `json:"file_size_string"`

	IsOwned  bool   `json:"is_owned"`
	IsBought bool   `json:"is_bought"`
	ImageSrc string `json:"image_src"`
}

// ProductUsecase defines the interface for single product use cases
type ProductUsecase interface {
	// GetProduct assembles the product page for the acting user.
	GetProduct(ctx context.Context, productID int, userID *uuid.UUID) (*ProductDetails, error)

	// ProductQR renders a QR code image pointing at the product page.
	ProductQR(ctx context.Context, productID int) ([]byte, error)
}
