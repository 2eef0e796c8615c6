package impl

import (
	"context"
	"testing"

	"webmarket/internal/domain/entity"
	domainerrors "webmarket/internal/domain/errors"
	"webmarket/internal/domain/repository"
	mockRepo "webmarket/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	productRepo  *mockRepo.MockProductRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
}

// newPurchaseService wires a transaction manager that immediately runs
// the callback against a factory handing out the given repo mocks.
func newPurchaseService(t *testing.T) (*purchaseService, *purchaseServiceMocks) {
	t.Helper()

	m := &purchaseServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()
	factory.EXPECT().NewProductRepository().Return(m.productRepo).Maybe()
	factory.EXPECT().NewPurchaseRepository().Return(m.purchaseRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return &purchaseService{txManager: txManager}, m
}

func TestPurchaseService_Buy_Success(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(20)}
	product := &entity.Product{ID: 1, Name: "Affordable", Price: decimal.NewFromInt(10)}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 1).Return(product, nil)
	m.purchaseRepo.EXPECT().BoughtProductsByUser(ctx, &userID).Return([]entity.BoughtProduct{}, nil)

	m.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BoughtProduct")).
		Run(func(_ context.Context, purchase *entity.BoughtProduct) {
			assert.Equal(t, 1, purchase.ProductRefID)
			require.NotNil(t, purchase.AppUserRefID)
			assert.Equal(t, userID, *purchase.AppUserRefID)
		}).
		Return(nil)

	require.NoError(t, service.Buy(ctx, 1, userID))
}

func TestPurchaseService_Buy_ExactBalanceSucceeds(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Balance equals the final price: 10 with 30% off is 7.
	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(7)}
	product := &entity.Product{ID: 1, Price: decimal.NewFromInt(10), Discount: 30}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 1).Return(product, nil)
	m.purchaseRepo.EXPECT().BoughtProductsByUser(ctx, &userID).Return([]entity.BoughtProduct{}, nil)
	m.purchaseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BoughtProduct")).Return(nil)

	require.NoError(t, service.Buy(ctx, 1, userID))
}

func TestPurchaseService_Buy_InsufficientFunds(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(5)}
	product := &entity.Product{ID: 1, Price: decimal.NewFromInt(10)}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 1).Return(product, nil)
	m.purchaseRepo.EXPECT().BoughtProductsByUser(ctx, &userID).Return([]entity.BoughtProduct{}, nil)

	err := service.Buy(ctx, 1, userID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
}

func TestPurchaseService_Buy_AlreadyBought(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(100)}
	product := &entity.Product{ID: 1, Price: decimal.NewFromInt(10)}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 1).Return(product, nil)
	m.purchaseRepo.EXPECT().
		BoughtProductsByUser(ctx, &userID).
		Return([]entity.BoughtProduct{{ProductRefID: 1}}, nil)

	err := service.Buy(ctx, 1, userID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyBought)
}

func TestPurchaseService_Buy_OwnProduct(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(100)}
	product := &entity.Product{ID: 1, Price: decimal.NewFromInt(10), OwnerID: &userID}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 1).Return(product, nil)

	err := service.Buy(ctx, 1, userID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnProduct)
}

func TestPurchaseService_Buy_UserNotFound(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := service.Buy(ctx, 1, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPurchaseService_Buy_ProductNotFound(t *testing.T) {
	service, m := newPurchaseService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Balance: decimal.NewFromInt(100)}
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.productRepo.EXPECT().FindByID(ctx, 2).Return(nil, repository.ErrProductNotFound)

	err := service.Buy(ctx, 2, userID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
