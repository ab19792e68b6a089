package impl

import (
	"context"
	"log/slog"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"
	"pharmacy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	config    *config.Config
	logger    *slog.Logger
}

// UserAdminServiceParams holds dependencies for UserAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		config:    params.Config,
		logger:    params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of accounts matching the filter.
func (srv *userAdminService) ListUsers(ctx context.Context, filter entity.UserFilter) (*entity.PagedResult[*entity.User], error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role filter")
	}
	if filter.Phone != "" {
		filter.Phone = util.NormalizePhone(filter.Phone)
	}
	filter.Page = normalizePage(srv.config, filter.Page)

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.NewPagedResult(users, filter.Page, total), nil
}

// ChangeRole assigns a new role. Staff cannot change their own role.
func (srv *userAdminService) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage(string(role))
	}
	if actorID == userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot change your own role")
	}

	user, err := srv.updateUser(ctx, userID, func(user *entity.User, _ repository.RepositoryFactory) error {
		user.Role = role

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change user role")
	}
	srv.log(ctx).Info("User role changed", slog.Any("actorID", actorID), slog.Any("userID", userID), slog.String("role", role.String()))

	return user, nil
}

// SetBlocked blocks or unblocks an account. Blocking also ends every session of the user.
func (srv *userAdminService) SetBlocked(ctx context.Context, actorID, userID uuid.UUID, blocked bool) (*entity.User, error) {
	if actorID == userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot block yourself")
	}

	user, err := srv.updateUser(ctx, userID, func(user *entity.User, repoFactory repository.RepositoryFactory) error {
		user.IsBlocked = blocked
		if !blocked {
			return nil
		}
		if err := repoFactory.RefreshTokenRepo().RevokeUserSessions(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update block flag")
	}
	srv.log(ctx).Info("User block flag changed", slog.Any("actorID", actorID), slog.Any("userID", userID), slog.Bool("blocked", blocked))

	return user, nil
}

func (srv *userAdminService) updateUser(
	ctx context.Context,
	userID uuid.UUID,
	apply func(*entity.User, repository.RepositoryFactory) error,
) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapRepoError(err, "failed to find user", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
		}
		if err := apply(foundUser, repoFactory); err != nil {
			return err
		}
		if err := userRepo.Update(ctx, foundUser); err != nil {
			return mapRepoError(err, "failed to update user", mapping(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
