// Package handler contains the HTTP handlers of the catalog API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"webmarket/internal/delivery/http/response"
	"webmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for adding a product
type CreateProductRequest struct {
	Name                     string  `json:"name" validate:"required,max=32"`
	Type                     string  `json:"type" validate:"max=32"`
	Price                    string  `json:"price" validate:"required"`
	Discount                 float64 `json:"discount" validate:"gte=0,lte=100"`
	Description              string  `json:"description" validate:"max=512"`
	Link                     string  `json:"link" validate:"max=128"`
	OnlyRegisteredCanComment bool    `json:"only_registered_can_comment"`
	OnlyOneCommentPerUser    bool    `json:"only_one_comment_per_user"`
	FileName                 string  `json:"file_name"`
	UserID                   string  `json:"user_id"`
}

// ListProducts handles the catalog table: filtering, sorting and the
// per-user display state.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	input := &usecase.ListProductsInput{
		Tags:     splitTags(c.QueryParam("tags")),
		MatchAll: c.QueryParam("match_all") == "true",
		SortBy:   c.QueryParam("sort_by"),
		UserID:   userID,
	}

	summaries, err := h.catalogUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summaries, "Catalog retrieved successfully")
}

// CreateProduct handles adding a new product to the catalog.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var ownerID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		ownerID = &parsed
	}

	input := &usecase.CreateProductInput{
		Name:                     req.Name,
		Type:                     req.Type,
		Price:                    req.Price,
		Discount:                 req.Discount,
		Description:              req.Description,
		Link:                     req.Link,
		OnlyRegisteredCanComment: req.OnlyRegisteredCanComment,
		OnlyOneCommentPerUser:    req.OnlyOneCommentPerUser,
		FileName:                 req.FileName,
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), ownerID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles the product detail page.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	details, err := h.productUC.GetProduct(c.Request().Context(), productID, userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, details, "Product retrieved successfully")
}

// GetProductQR serves the product page QR code as a PNG image.
func (h *CatalogHandler) GetProductQR(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.productUC.ProductQR(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ChooseProduct marks a product as the current catalog selection.
func (h *CatalogHandler) ChooseProduct(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.ChooseProduct(c.Request().Context(), productID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product chosen successfully")
}

// GetProductStatus reports staging and purchase state for a product.
func (h *CatalogHandler) GetProductStatus(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	userID, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	status, err := h.catalogUC.ProductStatus(c.Request().Context(), productID, userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status, "Product status retrieved successfully")
}

// optionalUserID parses the acting user from the user_id query
// parameter. The catalog is browsable anonymously, so absence is fine.
func optionalUserID(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return nil, nil
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// splitTags parses the comma separated tags query parameter.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	return tags
}
