package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog/all", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("maps a domain error to its status and envelope", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext(t)

		newErrorMiddleware().HandleHTTPError(domainerrors.ErrBlogNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, float64(http.StatusNotFound), body["code"])
		assert.Equal(t, domainerrors.ErrBlogNotFound.Message(), body["message"])
	})

	t.Run("unwraps a stack-annotated domain error", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext(t)

		wrapped := errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup failed")
		newErrorMiddleware().HandleHTTPError(wrapped, c)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
	})

	t.Run("keeps echo routing errors intact", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext(t)

		newErrorMiddleware().HandleHTTPError(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"error"`)
	})

	t.Run("hides unexpected errors behind a generic envelope", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext(t)

		newErrorMiddleware().HandleHTTPError(errors.New("pq: connection reset"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
		assert.Contains(t, rec.Body.String(), "Internal server error")
	})

	t.Run("does nothing once the response is committed", func(t *testing.T) {
		t.Parallel()

		c, rec := newErrorTestContext(t)
		require.NoError(t, c.NoContent(http.StatusOK))

		newErrorMiddleware().HandleHTTPError(domainerrors.ErrBlogNotFound, c)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
