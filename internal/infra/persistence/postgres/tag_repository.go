package postgres

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// FindTagByID retrieves a tag by its unique ID.
func (repo *tagRepository) FindTagByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagM model.TagModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by ID")
	}

	return toTagDomain(&tagM), nil
}

// FindAllTags retrieves every tag ordered by name.
func (repo *tagRepository) FindAllTags(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tags")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// --- Mapper Functions ---

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

// fromTagDomain converts a domain Tag entity to a GORM TagModel.
func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
