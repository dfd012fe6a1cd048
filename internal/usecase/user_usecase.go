package usecase

import "context"

// UpdateUserInput defines a partial update to a user account.
// When Password is set it is re-hashed before persisting.
type UpdateUserInput struct {
	ID       uint   `json:"-"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,password"`
}

// UserUsecase defines the interface for user account management.
type UserUsecase interface {
	// UpdateUser applies a partial update, re-hashing the password when present.
	UpdateUser(ctx context.Context, input *UpdateUserInput) error

	// DeleteUser physically removes a user account.
	DeleteUser(ctx context.Context, id uint) error
}
