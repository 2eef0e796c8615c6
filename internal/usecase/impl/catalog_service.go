// Package impl provides the implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"webmarket/config"
	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	"webmarket/internal/errors"
	"webmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	tagRepo      repository.TagRepository
	imageRepo    repository.ImageRepository
	commentRepo  repository.CommentRepository
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	txManager    repository.TransactionManager
	staging      *StagingList
	config       *config.Config
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	tagRepo repository.TagRepository,
	imageRepo repository.ImageRepository,
	commentRepo repository.CommentRepository,
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	staging *StagingList,
	cfg *config.Config,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		tagRepo:      tagRepo,
		imageRepo:    imageRepo,
		commentRepo:  commentRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		staging:      staging,
		config:       cfg,
	}
}

// ListProducts returns the catalog rows for the acting user, filtered
// and sorted per input.
func (s *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]usecase.ProductSummary, error) {
	user, err := s.resolveUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if len(input.Tags) > 0 {
		filtered := make([]entity.Product, 0, len(products))
		for i := range products {
			ok, matchErr := products[i].ContainsTags(ctx, s.tagRepo, input.Tags, input.MatchAll)
			if matchErr != nil {
				return nil, fmt.Errorf("failed to match tags: %w", matchErr)
			}
			if ok {
				filtered = append(filtered, products[i])
			}
		}
		products = filtered
	}

	sortProducts(products, input.SortBy)

	chosenID := s.staging.ChosenID()
	summaries := make([]usecase.ProductSummary, 0, len(products))
	for i := range products {
		summary, buildErr := s.buildSummary(ctx, &products[i], user, chosenID)
		if buildErr != nil {
			return nil, buildErr
		}
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

// CreateProduct persists a new product owned by the given user and
// stages it as the chosen one. The ID probe and the insert run inside
// one transaction so concurrent creations cannot race on the same ID.
func (s *catalogService) CreateProduct(ctx context.Context, ownerID *uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a decimal number")
	}
	if price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	if s.staging.ContainsName(input.Name) {
		return nil, domainerrors.ErrProductNameTaken
	}

	product := &entity.Product{
		Name:                     input.Name,
		Type:                     entity.NormalizeTypeName(input.Type),
		Price:                    price,
		Discount:                 input.Discount,
		Description:              input.Description,
		Link:                     input.Link,
		OnlyRegisteredCanComment: input.OnlyRegisteredCanComment,
		OnlyOneCommentPerUser:    input.OnlyOneCommentPerUser,
		FileName:                 input.FileName,
		AddedDate:                time.Now(),
		OwnerID:                  ownerID,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		products := factory.NewProductRepository()

		existing, findErr := products.FindAll(ctx)
		if findErr != nil {
			return fmt.Errorf("failed to list products: %w", findErr)
		}
		for i := range existing {
			if existing[i].Name == product.Name {
				return domainerrors.ErrProductNameTaken
			}
		}

		product.ID = entity.MakeNewID(existing)

		if createErr := products.Create(ctx, product); createErr != nil {
			return fmt.Errorf("failed to create product: %w", createErr)
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrProductCreationFailed.WrapMessage(err.Error())
	}

	if err := s.staging.Add(*product); err != nil {
		return nil, err
	}
	s.staging.Choose(product.ID)

	return product, nil
}

// ChooseProduct marks an existing product as the catalog selection.
func (s *catalogService) ChooseProduct(ctx context.Context, productID int) error {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}

	s.staging.Choose(productID)

	return nil
}

// ProductStatus resolves staging and purchase state for a product.
func (s *catalogService) ProductStatus(ctx context.Context, productID int, userID *uuid.UUID) (*usecase.ProductStatus, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	boughtString, err := product.IsBoughtString(ctx, s.purchaseRepo, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve purchase state: %w", err)
	}

	chosenID := s.staging.ChosenID()
	cartLabel, err := product.AddToCartLabel(ctx, s.purchaseRepo, user, chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart label: %w", err)
	}

	return &usecase.ProductStatus{
		ProductID:    productID,
		Chosen:       chosenID == productID,
		BoughtString: boughtString,
		CartLabel:    cartLabel,
	}, nil
}

func (s *catalogService) findProduct(ctx context.Context, productID int) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// resolveUser looks up the acting user, or returns nil for anonymous
// requests.
func (s *catalogService) resolveUser(ctx context.Context, userID *uuid.UUID) (*entity.User, error) {
	if userID == nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, *userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (s *catalogService) buildSummary(ctx context.Context, product *entity.Product, user *entity.User, chosenID int) (*usecase.ProductSummary, error) {
	comments, err := s.commentRepo.CommentsByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	imageSrc, err := product.ImageSrc(ctx, s.imageRepo, nil, s.config.Catalog.PlaceholderImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image: %w", err)
	}

	bought, err := product.IsBought(ctx, s.purchaseRepo, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve purchase state: %w", err)
	}

	cartLabel, err := product.AddToCartLabel(ctx, s.purchaseRepo, user, chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart label: %w", err)
	}

	buttonClass, err := product.AddToCartButtonClass(ctx, s.purchaseRepo, user, chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve button class: %w", err)
	}

	rowClass, err := product.TableHeaderClass(ctx, s.purchaseRepo, user, chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve row class: %w", err)
	}

	linkClass, err := product.LinkClass(ctx, s.purchaseRepo, user, chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve link class: %w", err)
	}

	return &usecase.ProductSummary{
		Product:          *product,
		PriceString:      product.PriceString(),
		FinalPriceString: product.FinalPriceString(),
		DiscountString:   product.DiscountString(),
		LinkString:       product.LinkTableString(),
		RatingAverage:    strconv.FormatFloat(product.RateAverage(comments), 'f', -1, 64),
		CommentCount:     len(comments),
		ImageSrc:         imageSrc,
		IsBought:         bought,
		CartLabel:        cartLabel,
		CartButtonClass:  buttonClass,
		RowClass:         rowClass,
		LinkClass:        linkClass,
	}, nil
}

// sortProducts orders the slice per the requested sort key. Unknown
// keys keep the natural order, descending by ID.
func sortProducts(products []entity.Product, sortBy string) {
	var cmp func(x, y *entity.Product) int

	switch sortBy {
	case usecase.SortByName:
		cmp = entity.CompareByName
	case usecase.SortByType:
		cmp = entity.CompareByType
	case usecase.SortByPrice:
		cmp = entity.CompareByPrice
	case usecase.SortByDiscount:
		cmp = entity.CompareByDiscount
	case usecase.SortByFinalPrice:
		cmp = entity.CompareByFinalPrice
	case usecase.SortByNewest:
		cmp = func(x, y *entity.Product) int {
			switch {
			case x.AddedDate.After(y.AddedDate):
				return -1
			case x.AddedDate.Before(y.AddedDate):
				return 1
			default:
				return 0
			}
		}
	default:
		cmp = (*entity.Product).CompareTo
	}

	slices.SortStableFunc(products, func(a, b entity.Product) int {
		return cmp(&a, &b)
	})
}
