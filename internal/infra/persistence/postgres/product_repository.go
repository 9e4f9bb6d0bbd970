package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new catalog product together with its tag associations.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("invalid category or tag reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
// Soft-deleted products are returned as well; carts and order history
// still reference them after they disappear from listings.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindVisibleProducts retrieves a page of products that are not soft-deleted,
// newest first.
func (repo *productRepository) FindVisibleProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindVisibleProductsByCategory retrieves all non-deleted products in a category.
func (repo *productRepository) FindVisibleProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible products by category")
	}

	return toProductDomainSlice(productModels), nil
}

// FindVisibleProductsByTag retrieves all non-deleted products carrying a tag.
func (repo *productRepository) FindVisibleProductsByTag(ctx context.Context, tagID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Joins("JOIN product_tags ON product_tags.product_model_id = products.id").
		Where("product_tags.tag_model_id = ? AND products.is_deleted = ?", tagID, false).
		Order("products.created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible products by tag")
	}

	return toProductDomainSlice(productModels), nil
}

// SoftDeleteProduct hides a product from listings without removing the row.
func (repo *productRepository) SoftDeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	tags := make([]*entity.Tag, 0, len(data.Tags))
	for _, tagM := range data.Tags {
		tags = append(tags, toTagDomain(tagM))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		Tags:        tags,
		IsDeleted:   data.IsDeleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	tags := make([]*model.TagModel, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, fromTagDomain(tag))
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		Tags:        tags,
		IsDeleted:   data.IsDeleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
