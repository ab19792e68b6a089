package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/google/uuid"
)

// UserAdminUsecase defines back-office user management.
type UserAdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter) (*entity.PagedResult[*entity.User], error)

	// ChangeRole sets the role of a user. Actors cannot change their own role.
	ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error)

	// SetBlocked blocks or unblocks a user. Blocking ends every session of the user.
	SetBlocked(ctx context.Context, actorID, userID uuid.UUID, blocked bool) (*entity.User, error)
}
