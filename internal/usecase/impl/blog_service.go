package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage     = 1
	defaultPageSize = 8
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo repository.BlogRepository
	Logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo: params.BlogRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post and returns its generated id.
func (srv *blogService) Create(ctx context.Context, input *usecase.CreateBlogInput) (*usecase.CreateBlogOutput, error) {
	post := &entity.BlogPost{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Body:        input.Body,
		Author:      input.Author,
	}

	if err := srv.blogRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Info("Blog created", slog.Any("blogID", post.ID))

	return &usecase.CreateBlogOutput{ID: post.ID}, nil
}

// ListAll returns one page of posts, optionally restricted by tag.
func (srv *blogService) ListAll(ctx context.Context, input *usecase.ListBlogsInput) (*usecase.ListBlogsOutput, error) {
	page, size := normalizePagination(input.Page, input.Size)

	posts, err := srv.blogRepo.List(ctx, input.Tag, page, size)
	if err != nil {
		srv.log(ctx).Error("Failed to list blogs", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return &usecase.ListBlogsOutput{
		Page:    page,
		Results: len(posts),
		Posts:   posts,
	}, nil
}

// GetByID returns a one-element or empty slice. An unknown id is not an
// error: clients receive an empty data array with a success envelope.
func (srv *blogService) GetByID(ctx context.Context, id uuid.UUID) ([]*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return []*entity.BlogPost{}, nil
		}

		srv.log(ctx).Error("Failed to fetch blog", slog.Any("blogID", id), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch blog")
	}

	return []*entity.BlogPost{post}, nil
}

// ListByAuthor returns one page of the author's posts.
func (srv *blogService) ListByAuthor(ctx context.Context, input *usecase.ListByAuthorInput) (*usecase.ListBlogsOutput, error) {
	page, size := normalizePagination(input.Page, input.Size)

	posts, err := srv.blogRepo.ListByAuthor(ctx, input.Author, page, size)
	if err != nil {
		srv.log(ctx).Error("Failed to list blogs by author", slog.String("author", input.Author), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list blogs by author")
	}

	return &usecase.ListBlogsOutput{
		Page:    page,
		Results: len(posts),
		Posts:   posts,
	}, nil
}

// Update applies a partial field replacement and returns the updated post.
func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateBlogInput) (*entity.BlogPost, error) {
	changes := make(map[string]any)
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.Tags != nil {
		changes["tags"] = *input.Tags
	}
	if input.Body != nil {
		changes["body"] = *input.Body
	}
	if input.Author != nil {
		changes["author"] = *input.Author
	}

	// An empty update is a read: confirm the post exists and echo it back.
	if len(changes) == 0 {
		post, err := srv.blogRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return nil, domainerrors.ErrBlogNotFound.WrapMessage("unknown blog id")
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch blog")
		}

		return post, nil
	}

	post, err := srv.blogRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound.WrapMessage("unknown blog id")
		}

		srv.log(ctx).Error("Failed to update blog", slog.Any("blogID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update blog")
	}

	srv.log(ctx).Info("Blog updated", slog.Any("blogID", id))

	return post, nil
}

// Delete removes a post by id.
func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound.WrapMessage("unknown blog id")
		}

		srv.log(ctx).Error("Failed to delete blog", slog.Any("blogID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete blog")
	}

	srv.log(ctx).Info("Blog deleted", slog.Any("blogID", id))

	return nil
}

// normalizePagination applies the 1-based page and default size rules.
func normalizePagination(page, size int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultPageSize
	}

	return page, size
}
