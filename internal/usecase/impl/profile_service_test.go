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

func TestProfileService_GetProfile(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewProfileService(repos.txManager, repos.user, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Phone: "0912345678"}

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	repos := newRepoMocks(t)
	svc := NewProfileService(repos.txManager, repos.user, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	repos.user.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_NormalizesFields(t *testing.T) {
	repos := newRepoMocks(t)
	repos.expectTx()
	svc := NewProfileService(repos.txManager, repos.user, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Old", Email: "old@example.com"}
	name := "  Mei Lin  "
	email := " Mei@Example.COM "

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.user.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Mei Lin" && u.Email == "mei@example.com"
		})).
		Return(nil)

	got, err := svc.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Mei Lin", got.Name)
}

func TestProfileService_UpdateProfile_NilFieldsUntouched(t *testing.T) {
	repos := newRepoMocks(t)
	repos.expectTx()
	svc := NewProfileService(repos.txManager, repos.user, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Keep", Email: "keep@example.com"}

	repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	repos.user.EXPECT().Update(ctx, user).Return(nil)

	got, err := svc.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Keep", got.Name)
	assert.Equal(t, "keep@example.com", got.Email)
}
