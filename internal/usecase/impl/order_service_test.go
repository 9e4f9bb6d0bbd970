package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	cartStore *mockRepo.MockCartStore
	orderRepo *mockRepo.MockOrderRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	cartStore := mockRepo.NewMockCartStore(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(cartStore, orderRepo, txManager, logger)

	return orderServiceFixtures{
		service:   service,
		cartStore: cartStore,
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		DeliveryAddress: "台北市信義區市府路45號",
		CustomerPhone:   "0912345678",
		CustomerName:    "王小明",
	}
}

// passthroughExecute wires the mocked transaction manager to run the callback
// against a factory backed by the given order repository.
func passthroughExecute(fx orderServiceFixtures, t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewOrderRepository().
		Return(fx.orderRepo)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	productA := uuid.New()
	productB := uuid.New()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: productA.String(), Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{ProductID: productB.String(), Quantity: 1, Price: decimal.RequireFromString("5.00")},
		}, nil)

	passthroughExecute(fx, t)

	var created *entity.Order
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			created = order

			return nil
		})

	fx.cartStore.EXPECT().
		Clear(ctx, sessionID).
		Return(nil)

	order, err := fx.service.Checkout(ctx, sessionID, validCheckoutInput())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Same(t, created, order)

	// One item per distinct cart entry, quantities carried over.
	require.Len(t, order.Items, 2)
	quantities := map[uuid.UUID]int{}
	for _, item := range order.Items {
		quantities[item.ProductID] = item.Quantity
		assert.Equal(t, order.ID, item.OrderID)
		assert.True(t, item.DiscountPerItem.IsZero())
	}
	assert.Equal(t, 2, quantities[productA])
	assert.Equal(t, 1, quantities[productB])

	assert.Regexp(t, `^ORD-\d{8}-\d{6}$`, order.Number)
	assert.Equal(t, "王小明", order.CustomerName)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{}, nil)

	// No transaction, no order write, no cart clear.
	order, err := fx.service.Checkout(ctx, sessionID, validCheckoutInput())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_ValidationFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: uuid.New().String(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
		}, nil)

	input := validCheckoutInput()
	input.DeliveryAddress = ""

	order, err := fx.service.Checkout(ctx, sessionID, input)
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Checkout_DuplicateNumberConflict(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: uuid.New().String(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
		}, nil)

	passthroughExecute(fx, t)

	// A second checkout within the same second trips the unique constraint.
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderNumber)

	order, err := fx.service.Checkout(ctx, sessionID, validCheckoutInput())
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNumberConflict)
}

func TestOrderService_Checkout_TransactionFailureKeepsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: uuid.New().String(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
		}, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	// Clear is never expected: the cart survives a failed checkout.
	order, err := fx.service.Checkout(ctx, sessionID, validCheckoutInput())
	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{
		ID:     orderID,
		Number: "ORD-20260829-101500",
	}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Same(t, stored, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
