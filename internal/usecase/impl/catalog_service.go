// Package impl contains the concrete use-case services.
package impl

import (
	"context"

	"shop/config"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	config       *config.Config
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	cfg *config.Config,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		config:       cfg,
	}
}

// ListProducts returns the visible products for one page.
func (s *catalogService) ListProducts(ctx context.Context, page int) ([]*entity.Product, error) {
	if page < 1 {
		page = 1
	}
	pageSize := s.config.Catalog.PageSize
	offset := (page - 1) * pageSize

	products, err := s.productRepo.FindVisibleProducts(ctx, pageSize, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find visible products")
	}

	return products, nil
}

// GetProduct returns a product by ID regardless of its soft-delete flag.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// CreateProduct validates and persists a new product.
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a decimal string")
	}
	if price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to find category by ID")
		}
	}

	tags := make([]*entity.Tag, 0, len(input.TagIDs))
	for _, tagID := range input.TagIDs {
		tag, err := s.tagRepo.FindTagByID(ctx, tagID)
		if err != nil {
			if errors.Is(err, repository.ErrTagNotFound) {
				return nil, domainerrors.ErrTagNotFound
			}

			return nil, errors.Wrap(err, "failed to find tag by ID")
		}
		tags = append(tags, tag)
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		Tags:        tags,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// DeleteProduct soft-deletes a product.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.SoftDeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to soft delete product")
	}

	return nil
}

// ListCategories returns every category.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all categories")
	}

	return categories, nil
}

// ListCategoryProducts returns the visible products of one category.
func (s *catalogService) ListCategoryProducts(ctx context.Context, categoryID uuid.UUID) (*entity.Category, []*entity.Product, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, nil, domainerrors.ErrCategoryNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find category by ID")
	}

	products, err := s.productRepo.FindVisibleProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find products by category")
	}

	return category, products, nil
}

// CreateCategory validates and persists a new category.
func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListTags returns every tag.
func (s *catalogService) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := s.tagRepo.FindAllTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all tags")
	}

	return tags, nil
}

// ListTagProducts returns the visible products carrying one tag.
func (s *catalogService) ListTagProducts(ctx context.Context, tagID uuid.UUID) (*entity.Tag, []*entity.Product, error) {
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, nil, domainerrors.ErrTagNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find tag by ID")
	}

	products, err := s.productRepo.FindVisibleProductsByTag(ctx, tagID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find products by tag")
	}

	return tag, products, nil
}
