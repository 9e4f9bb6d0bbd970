package impl

import (
	"context"
	"testing"
	"time"

	"shop/config"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	tagRepo      *mockRepo.MockTagRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	tagRepo := mockRepo.NewMockTagRepository(t)

	cfg := &config.Config{
		Catalog: &config.CatalogConfig{PageSize: 20},
		Cart:    &config.CartConfig{CookieName: "shop_session", TTL: 24 * time.Hour},
	}
	service := NewCatalogService(productRepo, categoryRepo, tagRepo, cfg)

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Name: "Americano"}}

	fx.productRepo.EXPECT().
		FindVisibleProducts(ctx, 20, 20).
		Return(products, nil)

	result, err := fx.service.ListProducts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestCatalogService_ListProducts_PageBelowOneClampsToFirst(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindVisibleProducts(ctx, 20, 0).
		Return([]*entity.Product{}, nil)

	result, err := fx.service.ListProducts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	tagID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Coffee"}, nil)

	fx.tagRepo.EXPECT().
		FindTagByID(ctx, tagID).
		Return(&entity.Tag{ID: tagID, Name: "seasonal"}, nil)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Americano",
		Price:      "10.00",
		CategoryID: &categoryID,
		TagIDs:     []uuid.UUID{tagID},
	})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("10.00")))
	require.Len(t, product.Tags, 1)
	assert.Equal(t, "seasonal", product.Tags[0].Name)
}

func TestCatalogService_CreateProduct_InvalidPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Americano",
		Price: "ten dollars",
	})
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Americano",
		Price: "-1.00",
	})
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Americano",
		Price:      "10.00",
		CategoryID: &categoryID,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		SoftDeleteProduct(ctx, productID).
		Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategoryProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	category := &entity.Category{ID: categoryID, Name: "Coffee"}
	products := []*entity.Product{{ID: uuid.New(), Name: "Americano"}}

	fx.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(category, nil)

	fx.productRepo.EXPECT().
		FindVisibleProductsByCategory(ctx, categoryID).
		Return(products, nil)

	gotCategory, gotProducts, err := fx.service.ListCategoryProducts(ctx, categoryID)
	require.NoError(t, err)
	assert.Same(t, category, gotCategory)
	assert.Equal(t, products, gotProducts)
}

func TestCatalogService_ListTagProducts_UnknownTag(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tagID := uuid.New()

	fx.tagRepo.EXPECT().
		FindTagByID(ctx, tagID).
		Return(nil, repository.ErrTagNotFound)

	gotTag, gotProducts, err := fx.service.ListTagProducts(ctx, tagID)
	require.Error(t, err)
	assert.Nil(t, gotTag)
	assert.Nil(t, gotProducts)
	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}
