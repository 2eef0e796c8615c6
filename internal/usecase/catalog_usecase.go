package usecase

import (
	"context"

	"webmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Sort keys accepted by ListProducts.
const (
	SortByName       = "name"
	SortByType       = "type"
	SortByPrice      = "price"
	SortByDiscount   = "discount"
	SortByFinalPrice = "final_price"
	SortByNewest     = "newest"
)

// ListProductsInput represents the input for listing catalog products
type ListProductsInput struct {
	// Tags filters products to those carrying the given tag texts.
	// An empty slice disables tag filtering.
	Tags []string `json:"tags"`

	// MatchAll requires every requested tag to be present when true;
	// otherwise any single match keeps the product.
	MatchAll bool `json:"match_all"`

	SortBy string `json:"sort_by"`

	// UserID is the acting user, if any. Purchase state and button
	// labels are resolved against it.
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// ProductSummary is one row of the catalog table, fully resolved for
// display.
type ProductSummary struct {
	Product entity.Product `json:"product"`

	PriceString      string `json:"price_string"`
	FinalPriceString string `json:"final_price_string"`
	DiscountString   string `json:"discount_string"`
	LinkString       string `json:"link_string"`

	RatingAverage string `json:"rating_average"`
	CommentCount  int    `json:"comment_count"`

	ImageSrc string `json:"image_src"`

	IsBought        bool   `json:"is_bought"`
	CartLabel       string `json:"cart_label"`
	CartButtonClass string `json:"cart_button_class"`
	RowClass        string `json:"row_class"`
	LinkClass       string `json:"link_class"`
}

// CreateProductInput represents the input for adding a new product
type CreateProductInput struct {
	Name                     string  `json:"name" validate:"required"`
	Type                     string  `json:"type"`
	Price                    string  `json:"price" validate:"required"`
	Discount                 float64 `json:"discount" validate:"gte=0,lte=100"`
	Description              string  `json:"description"`
	Link                     string  `json:"link"`
	OnlyRegisteredCanComment bool    `json:"only_registered_can_comment"`
	OnlyOneCommentPerUser    bool    `json:"only_one_comment_per_user"`
	FileName                 string  `json:"file_name"`
}

// ProductStatus reports staging and purchase state for one product.
type ProductStatus struct {
	ProductID    int    `json:"product_id"`
	Chosen       bool   `json:"chosen"`
	BoughtString string `json:"bought_string"`
	CartLabel    string `json:"cart_label"`
}

// CatalogUsecase defines the interface for catalog browsing and
// product creation use cases
type CatalogUsecase interface {
	// ListProducts returns the catalog rows for the acting user,
	// filtered and sorted per input.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]ProductSummary, error)

	// CreateProduct persists a new product owned by the given user and
	// stages it as the chosen one.
	CreateProduct(ctx context.Context, ownerID *uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ChooseProduct marks a staged product as the currently chosen one.
	ChooseProduct(ctx context.Context, productID int) error

	// ProductStatus resolves staging and purchase state for a product.
	ProductStatus(ctx context.Context, productID int, userID *uuid.UUID) (*ProductStatus, error)
}
