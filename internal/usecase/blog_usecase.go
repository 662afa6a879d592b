package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBlogInput defines the data required to create a post.
type CreateBlogInput struct {
	Title       string
	Description string
	Tags        []string
	Body        string
	Author      string
}

// ListBlogsInput defines the tag filter and pagination for listing posts.
// Zero Page/Size fall back to the defaults (page 1, size 8).
type ListBlogsInput struct {
	Tag  string
	Page int
	Size int
}

// ListByAuthorInput defines the author filter and pagination.
type ListByAuthorInput struct {
	Author string
	Page   int
	Size   int
}

// UpdateBlogInput defines a partial field replacement; nil fields keep their
// prior values.
type UpdateBlogInput struct {
	Title       *string
	Description *string
	Tags        *[]string
	Body        *string
	Author      *string
}

// --- Output DTOs ---

// CreateBlogOutput returns the id of the newly created post.
type CreateBlogOutput struct {
	ID uuid.UUID `json:"id"`
}

// ListBlogsOutput returns one page of posts. Results is the count returned;
// there is no total-count field, so a short page signals the end.
type ListBlogsOutput struct {
	Page    int
	Results int
	Posts   []*entity.BlogPost
}

// BlogUsecase defines the interface for blog-related business operations.
type BlogUsecase interface {
	Create(ctx context.Context, input *CreateBlogInput) (*CreateBlogOutput, error)
	ListAll(ctx context.Context, input *ListBlogsInput) (*ListBlogsOutput, error)

	// GetByID returns a one-element (or empty) slice; an unknown id is not an
	// error, the caller receives an empty data array.
	GetByID(ctx context.Context, id uuid.UUID) ([]*entity.BlogPost, error)

	ListByAuthor(ctx context.Context, input *ListByAuthorInput) (*ListBlogsOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateBlogInput) (*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
