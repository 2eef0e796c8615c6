package impl

import (
	"context"
	"fmt"

	"webmarket/config"
	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	"webmarket/internal/domain/service"
	"webmarket/internal/errors"
	"webmarket/internal/usecase"
	"webmarket/internal/util"

	"github.com/google/uuid"
)

type productService struct {
	productRepo  repository.ProductRepository
	tagRepo      repository.TagRepository
	imageRepo    repository.ImageRepository
	commentRepo  repository.CommentRepository
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	qrService    service.QRCodeService
	config       *config.Config
}

// NewProductService creates a new product service instance
func NewProductService(
	productRepo repository.ProductRepository,
	tagRepo repository.TagRepository,
	imageRepo repository.ImageRepository,
	commentRepo repository.CommentRepository,
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	qrService service.QRCodeService,
	cfg *config.Config,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		tagRepo:      tagRepo,
		imageRepo:    imageRepo,
		commentRepo:  commentRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		qrService:    qrService,
		config:       cfg,
	}
}

// GetProduct assembles the product page for the acting user.
func (s *productService) GetProduct(ctx context.Context, productID int, userID *uuid.UUID) (*usecase.ProductDetails, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	var user *entity.User
	if userID != nil {
		user, err = s.userRepo.FindByID(ctx, *userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}

	tags, err := s.tagRepo.TagsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	images, err := s.imageRepo.ImagesByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	comments, err := s.commentRepo.CommentsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	bought, err := product.IsBought(ctx, s.purchaseRepo, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve purchase state: %w", err)
	}

	imageSrc, err := product.ImageSrc(ctx, s.imageRepo, nil, s.config.Catalog.PlaceholderImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image: %w", err)
	}

	return &usecase.ProductDetails{
		Product:          *product,
		PriceString:      product.PriceString(),
		FinalPriceString: product.FinalPriceString(),
		DiscountString:   product.DiscountString(),
		Tags:             tags,
		Images:           images,
		Comments:         comments,
		Rating:           buildRatingSummary(product, comments),
		FileSizeString:   s.fileSizeString(product),
		IsOwned:          product.IsOwnedBy(user),
		IsBought:         bought,
		ImageSrc:         imageSrc,
	}, nil
}

// ProductQR renders a QR code image pointing at the product page.
func (s *productService) ProductQR(ctx context.Context, productID int) ([]byte, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	png, err := s.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

// fileSizeString renders the stored file size, or the empty string when
// the product has no file or no upload directory is configured.
func (s *productService) fileSizeString(product *entity.Product) string {
	if product.FileName == "" || s.config.Catalog.UploadDir == "" {
		return ""
	}

	size, err := util.FileSize(s.config.Catalog.UploadDir, product.FileName)
	if err != nil {
		return ""
	}

	return util.FormatFileSize(size)
}

func buildRatingSummary(product *entity.Product, comments []entity.UserComment) usecase.RatingSummary {
	buckets := make([]usecase.StarBucket, 0, 5)
	for stars := 1; stars <= 5; stars++ {
		buckets = append(buckets, usecase.StarBucket{
			Stars:   stars,
			Count:   product.StarsCount(stars, comments),
			Percent: product.StarsPercent(stars, comments),
		})
	}

	return usecase.RatingSummary{
		Sum:        product.RateSum(comments),
		Average:    product.RateAverage(comments),
		Normalized: product.Rate(comments),
		RatedCount: product.TotalNonZeroCommentCount(comments),
		Buckets:    buckets,
	}
}
