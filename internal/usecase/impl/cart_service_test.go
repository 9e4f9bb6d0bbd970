package impl

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartStore   *mockRepo.MockCartStore
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartStore := mockRepo.NewMockCartStore(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(cartStore, productRepo)

	return cartServiceFixtures{
		service:     service,
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	product := &entity.Product{
		ID:    uuid.New(),
		Name:  "Americano",
		Price: decimal.RequireFromString("10.00"),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.cartStore.EXPECT().
		AddItem(ctx, sessionID, product.ID.String(), product.Price).
		Return(1, nil)

	output, err := fx.service.AddToCart(ctx, sessionID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.CartTotal)
	assert.Equal(t, "Americano", output.ProductName)
}

func TestCartService_AddToCart_SecondAddIncrementsQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	product := &entity.Product{
		ID:    uuid.New(),
		Name:  "Americano",
		Price: decimal.RequireFromString("10.00"),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil).
		Twice()

	// The store keeps one entry per product and bumps its quantity.
	cartTotal := 0
	fx.cartStore.EXPECT().
		AddItem(ctx, sessionID, product.ID.String(), product.Price).
		RunAndReturn(func(context.Context, string, string, decimal.Decimal) (int, error) {
			cartTotal++

			return cartTotal, nil
		}).
		Twice()

	first, err := fx.service.AddToCart(ctx, sessionID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.CartTotal)

	second, err := fx.service.AddToCart(ctx, sessionID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.CartTotal)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.AddToCart(ctx, sessionID, productID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_SoftDeletedProductStillAddable(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Discontinued Blend",
		Price:     decimal.RequireFromString("7.50"),
		IsDeleted: true,
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.cartStore.EXPECT().
		AddItem(ctx, sessionID, product.ID.String(), product.Price).
		Return(1, nil)

	output, err := fx.service.AddToCart(ctx, sessionID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, output.CartTotal)
}

func TestCartService_RemoveFromCart_AbsentProductIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	productID := uuid.New()

	fx.cartStore.EXPECT().
		RemoveItem(ctx, sessionID, productID.String()).
		Return(nil)

	err := fx.service.RemoveFromCart(ctx, sessionID, productID)
	assert.NoError(t, err)
}

func TestCartService_ViewCart_TotalsUseLivePrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	productA := &entity.Product{
		ID:   uuid.New(),
		Name: "Americano",
		// Live price differs from the snapshot taken at add time.
		Price: decimal.RequireFromString("12.00"),
	}
	productB := &entity.Product{
		ID:    uuid.New(),
		Name:  "Bagel",
		Price: decimal.RequireFromString("5.00"),
	}

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: productA.ID.String(), Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{ProductID: productB.ID.String(), Quantity: 1, Price: decimal.RequireFromString("5.00")},
		}, nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productA.ID).
		Return(productA, nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productB.ID).
		Return(productB, nil)

	view, err := fx.service.ViewCart(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].LineTotal.Equal(decimal.RequireFromString("24.00")))
	assert.True(t, view.Lines[1].LineTotal.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, view.Total.Equal(decimal.RequireFromString("29.00")))
	assert.Equal(t, 3, view.ItemCount())
}

func TestCartService_ViewCart_EmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{}, nil)

	view, err := fx.service.ViewCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
	assert.Equal(t, 0, view.ItemCount())
}

func TestCartService_ViewCart_ProductRemovedAfterAdd(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()
	productID := uuid.New()

	fx.cartStore.EXPECT().
		Entries(ctx, sessionID).
		Return([]entity.CartEntry{
			{ProductID: productID.String(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
		}, nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	view, err := fx.service.ViewCart(ctx, sessionID)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	sessionID := uuid.New().String()

	fx.cartStore.EXPECT().
		Clear(ctx, sessionID).
		Return(nil)

	err := fx.service.ClearCart(ctx, sessionID)
	assert.NoError(t, err)
}
