// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's public fields.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user and the issued bearer token.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
}

// CurrentUserOutput returns the public fields of the authenticated user.
type CurrentUserOutput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Logout has no server-side operation: the token is stateless and invalidation
// happens by clearing the client-held cookie at the delivery layer.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*CurrentUserOutput, error)
}
