package postgres

import (
	"context"
	"encoding/json"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new blog post to the database.
func (repo *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	blogM := fromBlogDomain(post)
	if blogM.ID == uuid.Nil {
		blogM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBlogAlreadyExists.WrapMessage("title already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required blog fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	post.ID = blogM.ID
	post.CreatedAt = blogM.CreatedAt
	post.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindByID retrieves a single blog post by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blogM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// List retrieves one page of posts, optionally restricted by tag containment.
func (repo *blogRepository) List(ctx context.Context, tag string, page, size int) ([]*entity.BlogPost, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{})

	if tag != "" {
		needle, err := json.Marshal([]string{tag})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode tag filter")
		}
		// jsonb containment: matches posts whose tags array includes the tag.
		query = query.Where("tags @> ?", string(needle))
	}

	return repo.listPage(query, page, size)
}

// ListByAuthor retrieves one page of posts by exact author match.
func (repo *blogRepository) ListByAuthor(ctx context.Context, author string, page, size int) ([]*entity.BlogPost, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("author = ?", author)

	return repo.listPage(query, page, size)
}

// listPage applies the shared pagination contract: 1-based pages and a stable
// ordering so consecutive pages are disjoint and contiguous.
func (repo *blogRepository) listPage(query *gorm.DB, page, size int) ([]*entity.BlogPost, error) {
	var blogMs []*model.BlogModel
	err := query.
		Order("created_at, id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	posts := make([]*entity.BlogPost, 0, len(blogMs))
	for _, blogM := range blogMs {
		posts = append(posts, toBlogDomain(blogM))
	}

	return posts, nil
}

// Update applies a partial field replacement and returns the updated post.
func (repo *blogRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.BlogPost, error) {
	if tags, ok := changes["tags"].([]string); ok {
		encoded, err := json.Marshal(tags)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode tags")
		}
		changes["tags"] = string(encoded)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		Updates(changes)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrBlogAlreadyExists.WrapMessage("title already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrBlogNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the post with the given ID.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBlogDomain converts a GORM BlogModel to a domain BlogPost entity.
func toBlogDomain(data *model.BlogModel) *entity.BlogPost {
	if data == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		Body:        data.Body,
		Author:      data.Author,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain BlogPost entity to a GORM BlogModel for persistence.
func fromBlogDomain(data *entity.BlogPost) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		Body:        data.Body,
		Author:      data.Author,
	}
}
