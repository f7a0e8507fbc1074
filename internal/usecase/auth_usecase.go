// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed bearer token after registration or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with the default user role and returns
	// a signed token for the new account.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and returns a signed token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// CurrentUser loads the account behind an authenticated request.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
