// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new admin account.
// Password complexity is enforced at the request boundary by the
// `password` validation rule, before this input reaches the usecase.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserSummary is the caller-visible identity of a user. It deliberately
// carries no password hash.
type UserSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. Fails with a conflict when the
	// email is already registered.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
