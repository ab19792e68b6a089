package impl

import (
	"context"
	"log/slog"
	"strings"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// GetProfile retrieves the signed-in user's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get user profile", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
	}

	return user, nil
}

// UpdateProfile changes the display name and contact email. Nil fields are left alone.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapRepoError(err, "failed to find user", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
		}

		// 2. Apply the changes
		if input.Name != nil {
			foundUser.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			foundUser.Email = strings.ToLower(strings.TrimSpace(*input.Email))
		}

		// 3. Save the updated user
		if err := userRepo.Update(ctx, foundUser); err != nil {
			return mapRepoError(err, "failed to update user profile", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}
