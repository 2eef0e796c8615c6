package impl

import (
	"context"
	"testing"

	"webmarket/config"
	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	mockRepo "webmarket/internal/mocks/repository"
	"webmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceMocks struct {
	productRepo  *mockRepo.MockProductRepository
	tagRepo      *mockRepo.MockTagRepository
	imageRepo    *mockRepo.MockImageRepository
	commentRepo  *mockRepo.MockCommentRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	userRepo     *mockRepo.MockUserRepository
	txManager    *mockRepo.MockTransactionManager
	staging      *StagingList
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogServiceMocks) {
	t.Helper()

	m := &catalogServiceMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		tagRepo:      mockRepo.NewMockTagRepository(t),
		imageRepo:    mockRepo.NewMockImageRepository(t),
		commentRepo:  mockRepo.NewMockCommentRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		staging:      NewStagingList(),
	}

	cfg := &config.Config{
		Catalog: &config.CatalogConfig{
			PlaceholderImageURL: "https://example.com/placeholder.jpg",
		},
	}

	service := NewCatalogService(
		m.productRepo,
		m.tagRepo,
		m.imageRepo,
		m.commentRepo,
		m.purchaseRepo,
		m.userRepo,
		m.txManager,
		m.staging,
		cfg,
	)

	return service, m
}

func TestCatalogService_ListProducts_Anonymous(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	products := []entity.Product{
		{ID: 2, Name: "Second", Price: decimal.NewFromFloat(14.99), Discount: 10},
		{ID: 1, Name: "First", Price: decimal.NewFromInt(10), Discount: 30},
	}
	m.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	for _, p := range products {
		m.commentRepo.EXPECT().CommentsByProduct(ctx, p.ID).Return([]entity.UserComment{}, nil)
		m.imageRepo.EXPECT().ImagesByProduct(ctx, p.ID).Return([]entity.Image{}, nil)
	}

	summaries, err := service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Natural order is descending by ID.
	assert.Equal(t, 2, summaries[0].Product.ID)
	assert.Equal(t, 1, summaries[1].Product.ID)

	assert.Equal(t, "14.99€", summaries[0].PriceString)
	assert.Equal(t, "13.49€", summaries[0].FinalPriceString)
	assert.Equal(t, "10%", summaries[0].DiscountString)
	assert.Equal(t, "no link", summaries[0].LinkString)
	assert.Equal(t, "https://example.com/placeholder.jpg", summaries[0].ImageSrc)

	// Anonymous users see the plain add state everywhere.
	assert.False(t, summaries[0].IsBought)
	assert.Equal(t, entity.LabelAdd, summaries[0].CartLabel)
	assert.Equal(t, "btn btn-outline-success", summaries[0].CartButtonClass)
}

func TestCatalogService_ListProducts_SortByDiscount(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	products := []entity.Product{
		{ID: 1, Name: "Low", Discount: 5},
		{ID: 2, Name: "High", Discount: 50},
		{ID: 3, Name: "Mid", Discount: 20},
	}
	m.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	for _, p := range products {
		m.commentRepo.EXPECT().CommentsByProduct(ctx, p.ID).Return([]entity.UserComment{}, nil)
		m.imageRepo.EXPECT().ImagesByProduct(ctx, p.ID).Return([]entity.Image{}, nil)
	}

	summaries, err := service.ListProducts(ctx, &usecase.ListProductsInput{SortBy: usecase.SortByDiscount})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	// Biggest discount first.
	assert.Equal(t, "High", summaries[0].Product.Name)
	assert.Equal(t, "Mid", summaries[1].Product.Name)
	assert.Equal(t, "Low", summaries[2].Product.Name)
}

func TestCatalogService_ListProducts_TagFilter(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	products := []entity.Product{
		{ID: 1, Name: "Tagged"},
		{ID: 2, Name: "Untagged"},
	}
	m.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	m.tagRepo.EXPECT().TagNamesByProduct(ctx, 1).Return([]string{"strategy", "indie"}, nil)
	m.tagRepo.EXPECT().TagNamesByProduct(ctx, 2).Return([]string{}, nil)

	m.commentRepo.EXPECT().CommentsByProduct(ctx, 1).Return([]entity.UserComment{}, nil)
	m.imageRepo.EXPECT().ImagesByProduct(ctx, 1).Return([]entity.Image{}, nil)

	summaries, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Tags: []string{"strategy"},
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Tagged", summaries[0].Product.Name)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(txProductRepo)

	// IDs 1, 2 and 4 are taken, so the probe lands on 5.
	existing := []entity.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 4, Name: "C"}}
	txProductRepo.EXPECT().FindAll(ctx).Return(existing, nil)
	txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	product, err := service.CreateProduct(ctx, &ownerID, &usecase.CreateProductInput{
		Name:     "Fresh",
		Type:     "Choose type",
		Price:    "12.50",
		Discount: 25,
	})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, 5, product.ID)
	assert.Equal(t, "No type specified", product.Type)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(product.Price))
	require.NotNil(t, product.OwnerID)
	assert.Equal(t, ownerID, *product.OwnerID)

	// The new product becomes the staged selection.
	assert.True(t, m.staging.ContainsID(5))
	assert.Equal(t, 5, m.staging.ChosenID())
}

func TestCatalogService_CreateProduct_InvalidPrice(t *testing.T) {
	service, _ := newCatalogService(t)
	ctx := context.Background()

	product, err := service.CreateProduct(ctx, nil, &usecase.CreateProductInput{
		Name:  "Broken",
		Price: "not-a-number",
	})
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_DuplicateNameInStore(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(txProductRepo)

	txProductRepo.EXPECT().FindAll(ctx).Return([]entity.Product{{ID: 1, Name: "Taken"}}, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	product, err := service.CreateProduct(ctx, nil, &usecase.CreateProductInput{
		Name:  "Taken",
		Price: "1.00",
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNameTaken)
}

func TestCatalogService_CreateProduct_DuplicateNameInStaging(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, m.staging.Add(entity.Product{ID: 9, Name: "Staged"}))

	product, err := service.CreateProduct(ctx, nil, &usecase.CreateProductInput{
		Name:  "Staged",
		Price: "1.00",
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNameTaken)
}

func TestCatalogService_ChooseProduct(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().FindByID(ctx, 3).Return(&entity.Product{ID: 3}, nil)

	require.NoError(t, service.ChooseProduct(ctx, 3))
	assert.Equal(t, 3, m.staging.ChosenID())
}

func TestCatalogService_ChooseProduct_NotFound(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().FindByID(ctx, 99).Return(nil, repository.ErrProductNotFound)

	err := service.ChooseProduct(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Equal(t, 0, m.staging.ChosenID())
}

func TestCatalogService_ProductStatus(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := &entity.Product{ID: 4, Name: "Watched"}
	m.productRepo.EXPECT().FindByID(ctx, 4).Return(product, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	m.purchaseRepo.EXPECT().
		BoughtProductsByUser(ctx, &userID).
		Return([]entity.BoughtProduct{{ProductRefID: 4}}, nil)

	m.staging.Choose(4)

	status, err := service.ProductStatus(ctx, 4, &userID)
	require.NoError(t, err)

	assert.Equal(t, 4, status.ProductID)
	assert.True(t, status.Chosen)
	assert.Equal(t, entity.LabelBought, status.BoughtString)
	assert.Equal(t, entity.LabelBought, status.CartLabel)
}

func TestCatalogService_ProductStatus_UnknownUser(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.productRepo.EXPECT().FindByID(ctx, 4).Return(&entity.Product{ID: 4}, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	status, err := service.ProductStatus(ctx, 4, &userID)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
