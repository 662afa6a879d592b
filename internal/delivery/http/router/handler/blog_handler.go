package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateBlogRequest is the body for POST /blog/create. Tags must be present,
// though an explicitly empty list is accepted.
type CreateBlogRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"required"`
	Body        string   `json:"body" validate:"required"`
	Author      string   `json:"author" validate:"required"`
}

// UpdateBlogRequest is the body for PUT /blog/update/:blogId. Absent fields
// keep their stored values.
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Body        *string   `json:"body"`
	Author      *string   `json:"author"`
}

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the blog creation request.
func (h *BlogHandler) Create(c echo.Context) error {
	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), &usecase.CreateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Body:        req.Body,
		Author:      req.Author,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Blog created successfully")
}

// ListAll handles the paginated listing request with an optional tag filter.
func (h *BlogHandler) ListAll(c echo.Context) error {
	page, size := paginationParams(c)

	output, err := h.uc.ListAll(c.Request().Context(), &usecase.ListBlogsInput{
		Tag:  c.QueryParam("tag"),
		Page: page,
		Size: size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, output.Page, output.Results, output.Posts, "Blogs retrieved successfully")
}

// GetByID returns the post with the given id wrapped in an array. An unknown
// id yields a success envelope with an empty array.
func (h *BlogHandler) GetByID(c echo.Context) error {
	blogID, err := uuid.Parse(c.Param("blogId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BLOG_ID", "Invalid blog id")
	}

	posts, err := h.uc.GetByID(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Blog retrieved successfully")
}

// ListByAuthor handles the paginated per-author listing request.
func (h *BlogHandler) ListByAuthor(c echo.Context) error {
	page, size := paginationParams(c)

	output, err := h.uc.ListByAuthor(c.Request().Context(), &usecase.ListByAuthorInput{
		Author: c.Param("authorId"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, output.Page, output.Results, output.Posts, "Blogs retrieved successfully")
}

// Update applies a partial field replacement to a post.
func (h *BlogHandler) Update(c echo.Context) error {
	blogID, err := uuid.Parse(c.Param("blogId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BLOG_ID", "Invalid blog id")
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	post, err := h.uc.Update(c.Request().Context(), blogID, &usecase.UpdateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Body:        req.Body,
		Author:      req.Author,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog updated successfully")
}

// Delete removes a post by id.
func (h *BlogHandler) Delete(c echo.Context) error {
	blogID, err := uuid.Parse(c.Param("blogId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BLOG_ID", "Invalid blog id")
	}

	if err := h.uc.Delete(c.Request().Context(), blogID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog deleted successfully")
}

// paginationParams reads page and size from the query string. Missing or
// malformed values are left at zero for the usecase defaults to apply.
func paginationParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	return page, size
}
