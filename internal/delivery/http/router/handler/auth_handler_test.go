package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/validator"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	mockservice "quill/internal/mocks/service"
	mockusecase "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Parallel()

	t.Run("registers an account and returns the public fields", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		userID := uuid.New()
		uc.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		}).Return(&usecase.SignupOutput{User: &entity.User{
			ID:           userID,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed",
		}}, nil)

		e := newTestEcho()
		c, rec := jsonContext(e, http.MethodPost, "/auth/signup",
			`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(http.StatusCreated), body["code"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, userID.String(), data["id"])
		assert.Equal(t, "alice", data["username"])
		assert.NotContains(t, rec.Body.String(), "hashed")
	})

	t.Run("short-circuits on a missing field", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		e := newTestEcho()
		c, _ := jsonContext(e, http.MethodPost, "/auth/signup",
			`{"username":"alice","password":"s3cret"}`)

		err := h.Signup(c)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	})

	t.Run("renders a missing field as a 400 envelope end to end", func(t *testing.T) {
		t.Parallel()

		// No expectations on the usecase: validation must reject the
		// request before it is reached.
		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		e := newTestEcho()
		e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger()).HandleHTTPError
		e.POST("/auth/signup", h.Signup)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup",
			strings.NewReader(`{"username":"alice","password":"s3cret"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, float64(http.StatusBadRequest), body["code"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns the token and sets the cookie", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		userID := uuid.New()
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{
			Username: "alice",
			Password: "s3cret",
		}).Return(&usecase.LoginOutput{
			User:        &entity.User{ID: userID, Username: "alice", Email: "alice@example.com"},
			AccessToken: "signed-token",
		}, nil)
		tokens.EXPECT().AccessTokenDuration().Return(24 * time.Hour)

		e := newTestEcho()
		c, rec := jsonContext(e, http.MethodPost, "/auth/login",
			`{"username":"alice","password":"s3cret"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("propagates a wrong-password failure", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		uc.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrWrongPassword)

		e := newTestEcho()
		c, _ := jsonContext(e, http.MethodPost, "/auth/login",
			`{"username":"alice","password":"nope"}`)

		err := h.Login(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockAuthUsecase(t)
	tokens := mockservice.NewMockTokenService(t)
	h := NewAuthHandler(uc, tokens, testLogger())

	e := newTestEcho()
	c, rec := jsonContext(e, http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the data for the gated user id", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		userID := uuid.New()
		uc.EXPECT().GetCurrentUser(mock.Anything, userID).Return(&usecase.CurrentUserOutput{
			Username: "alice",
			Email:    "alice@example.com",
		}, nil)

		e := newTestEcho()
		c, rec := jsonContext(e, http.MethodGet, "/auth/user/data", "")
		c.Set(middleware.ContextKeyUserID, userID)

		require.NoError(t, h.GetCurrentUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})

	t.Run("rejects a context without a user id", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		tokens := mockservice.NewMockTokenService(t)
		h := NewAuthHandler(uc, tokens, testLogger())

		e := newTestEcho()
		c, rec := jsonContext(e, http.MethodGet, "/auth/user/data", "")

		require.NoError(t, h.GetCurrentUser(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
