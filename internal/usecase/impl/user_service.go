package impl

import (
	"context"
	"log/slog"

	deliverycontext "parfum/internal/delivery/context"
	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	"parfum/internal/domain/service"
	"parfum/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateUser applies a partial update. A new password is re-hashed; a new
// email is re-checked for uniqueness before the write.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) error {
	srv.log(ctx).Info("Updating user", slog.Any("userID", input.ID))

	existing, err := srv.userRepo.FindByID(ctx, input.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("user not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up user for update")
	}

	update := &entity.User{ID: existing.ID}

	if input.Email != "" && input.Email != existing.Email {
		if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		update.Email = input.Email
	}

	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		update.PasswordHash = hashedPassword
	}

	if update.Email == "" && update.PasswordHash == "" {
		// Nothing to change.
		return nil
	}

	if err := srv.userRepo.Update(ctx, update); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", input.ID))

	return nil
}

// DeleteUser physically removes a user account.
func (srv *userService) DeleteUser(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
