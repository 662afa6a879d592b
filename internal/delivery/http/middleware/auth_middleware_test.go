package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockservice "quill/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, modify func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog/all", nil)
	if modify != nil {
		modify(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid bearer header and sets the user id", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)
		userID := uuid.New()
		tokens.EXPECT().Validate("good-token").Return(userID, nil)

		c, rec := newAuthTestContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer good-token")
		})

		mw := NewAuthMiddleware(tokens)
		err := mw.Authenticate(func(c echo.Context) error {
			assert.Equal(t, userID, c.Get(ContextKeyUserID))

			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the access_token cookie", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)
		userID := uuid.New()
		tokens.EXPECT().Validate("cookie-token").Return(userID, nil)

		c, rec := newAuthTestContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
		})

		mw := NewAuthMiddleware(tokens)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a request with no token at all", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)

		c, rec := newAuthTestContext(t, nil)

		mw := NewAuthMiddleware(tokens)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"error"`)
	})

	t.Run("rejects a non-bearer Authorization header", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)

		c, rec := newAuthTestContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		mw := NewAuthMiddleware(tokens)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an invalid or expired token", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)
		tokens.EXPECT().Validate("stale").Return(uuid.Nil, errors.New("token is expired"))

		c, rec := newAuthTestContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer stale")
		})

		mw := NewAuthMiddleware(tokens)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("prefers the header over the cookie", func(t *testing.T) {
		t.Parallel()

		tokens := mockservice.NewMockTokenService(t)
		tokens.EXPECT().Validate("header-token").Return(uuid.New(), nil)

		c, rec := newAuthTestContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer header-token")
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
		})

		mw := NewAuthMiddleware(tokens)
		require.NoError(t, mw.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
