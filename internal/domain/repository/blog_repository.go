package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is a domain-specific error returned when a blog post is not found.
var ErrBlogNotFound = errors.New("blog post not found")

// BlogRepository defines the standard operations for blog post persistence.
type BlogRepository interface {
	// Create persists a new blog post to the storage.
	Create(ctx context.Context, post *entity.BlogPost) error

	// FindByID retrieves a single blog post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)

	// List retrieves a page of posts, optionally restricted to those tagged
	// with tag. Pages are 1-based; ordering is stable across pages.
	List(ctx context.Context, tag string, page, size int) ([]*entity.BlogPost, error)

	// ListByAuthor retrieves a page of posts by exact author match.
	ListByAuthor(ctx context.Context, author string, page, size int) ([]*entity.BlogPost, error)

	// Update applies a partial field replacement to the post with the given ID
	// and returns the updated post. Returns ErrBlogNotFound when no row matched.
	Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*entity.BlogPost, error)

	// Delete removes the post with the given ID.
	// Returns ErrBlogNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
