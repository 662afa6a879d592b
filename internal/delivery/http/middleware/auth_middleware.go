package middleware

import (
	"strings"

	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key the authenticated user id is
// stored under for handlers.
const ContextKeyUserID = "userID"

// AccessTokenCookie is the cookie the token falls back to when the
// Authorization header is absent.
const AccessTokenCookie = "access_token"

// AuthMiddleware validates the bearer token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
// The token is read from the Authorization header ("Bearer <token>"), falling
// back to the access_token cookie set at login.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := m.extractToken(c)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", err.Error())
		}

		userID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// extractToken pulls the raw token out of the header or cookie.
func (m *AuthMiddleware) extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", errMalformedHeader
		}

		return tokenString, nil
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", errMissingToken
	}

	return cookie.Value, nil
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	errMissingToken    authError = "Authorization token is missing"
	errMalformedHeader authError = "Invalid token format, must be Bearer token"
)
