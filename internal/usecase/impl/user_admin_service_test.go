package impl

import (
	"context"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserAdminService(t *testing.T) (usecase.UserAdminUsecase, *repoMocks) {
	repos := newRepoMocks(t)
	repos.expectTx()

	svc := NewUserAdminService(UserAdminServiceParams{
		TxManager: repos.txManager,
		UserRepo:  repos.user,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})

	return svc, repos
}

func TestUserAdminService_ListUsers_NormalizesFilter(t *testing.T) {
	svc, repos := createTestUserAdminService(t)
	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}}

	repos.user.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.UserFilter) bool {
			return f.Phone == "0912" && f.Page.Number == 1 && f.Page.Size == 100
		})).
		Return(users, int64(1), nil)

	result, err := svc.ListUsers(ctx, entity.UserFilter{
		Phone: "09-12",
		Page:  entity.Page{Number: 0, Size: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, users, result.Items)
	assert.Equal(t, int64(1), result.Total)
}

func TestUserAdminService_ListUsers_InvalidRole(t *testing.T) {
	svc, _ := createTestUserAdminService(t)

	_, err := svc.ListUsers(context.Background(), entity.UserFilter{Role: "pharmacist"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestUserAdminService_ChangeRole(t *testing.T) {
	svc, repos := createTestUserAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.user.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Role == entity.RoleManager })).
		Return(nil)

	got, err := svc.ChangeRole(ctx, actorID, user.ID, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, got.Role)
}

func TestUserAdminService_ChangeRole_Rejections(t *testing.T) {
	svc, repos := createTestUserAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()
	missingID := uuid.New()

	_, err := svc.ChangeRole(ctx, actorID, uuid.New(), "owner")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))

	_, err = svc.ChangeRole(ctx, actorID, actorID, entity.RoleCustomer)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	repos.user.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrUserNotFound)
	_, err = svc.ChangeRole(ctx, actorID, missingID, entity.RoleAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserAdminService_SetBlocked_RevokesSessions(t *testing.T) {
	svc, repos := createTestUserAdminService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.refreshToken.EXPECT().RevokeUserSessions(ctx, user.ID).Return(nil)
	repos.user.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.IsBlocked })).
		Return(nil)

	got, err := svc.SetBlocked(ctx, uuid.New(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)
}

func TestUserAdminService_SetBlocked_UnblockKeepsSessions(t *testing.T) {
	svc, repos := createTestUserAdminService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), IsBlocked: true}

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.user.EXPECT().Update(ctx, user).Return(nil)

	got, err := svc.SetBlocked(ctx, uuid.New(), user.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsBlocked)
	repos.refreshToken.AssertNotCalled(t, "RevokeUserSessions", mock.Anything, mock.Anything)
}

func TestUserAdminService_SetBlocked_Self(t *testing.T) {
	svc, _ := createTestUserAdminService(t)
	actorID := uuid.New()

	_, err := svc.SetBlocked(context.Background(), actorID, actorID, true)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
