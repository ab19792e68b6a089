package impl

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"
	"pharmacy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	repos        *repoMocks
	hasher       *mockSvc.MockSecretHasher
	tokenService *mockSvc.MockTokenService
	otpSender    *mockSvc.MockOTPSender
	cartUsecase  *mockUsecase.MockCartUsecase
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	repos := newRepoMocks(t)
	repos.expectTx()
	hasher := mockSvc.NewMockSecretHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	otpSender := mockSvc.NewMockOTPSender(t)
	cartUsecase := mockUsecase.NewMockCartUsecase(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        repos.txManager,
		OTPRepo:          repos.otp,
		RefreshTokenRepo: repos.refreshToken,
		Hasher:           hasher,
		TokenService:     tokenService,
		OTPSender:        otpSender,
		CartUsecase:      cartUsecase,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		repos:        repos,
		hasher:       hasher,
		tokenService: tokenService,
		otpSender:    otpSender,
		cartUsecase:  cartUsecase,
	}
}

func (f userServiceFixtures) expectTokenIssue(userID uuid.UUID, role entity.Role) {
	f.tokenService.EXPECT().GenerateTokens(userID, []string{string(role)}).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(30 * 24 * time.Hour).Maybe()
	f.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute).Maybe()
	f.repos.refreshToken.EXPECT().
		CreateSession(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == util.HashToken("refresh-token")
		})).
		Return(nil)
}

func TestUserService_RequestOTP_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	var sentCode string
	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "+886912345678").Return(nil, repository.ErrOTPNotFound)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("code-hash", nil)
	fx.repos.otp.EXPECT().DeleteByPhone(ctx, "+886912345678").Return(nil)
	fx.repos.otp.EXPECT().
		Create(ctx, mock.MatchedBy(func(otp *entity.OTPCode) bool {
			return otp.Phone == "+886912345678" && otp.CodeHash == "code-hash" && otp.ExpiresAt.After(time.Now())
		})).
		Return(nil)
	fx.otpSender.EXPECT().
		Send(ctx, "+886912345678", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, phone, code string) { sentCode = code }).
		Return(nil)

	out, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "+886 912-345-678"})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, out.ExpiresIn)
	assert.Equal(t, time.Minute, out.ResendAfter)
	assert.Len(t, sentCode, 6)
}

func TestUserService_RequestOTP_InvalidPhone(t *testing.T) {
	fx := createTestUserService(t, 0)

	_, err := fx.service.RequestOTP(context.Background(), &usecase.RequestOTPInput{Phone: "not a phone"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RequestOTP_Cooldown(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(&entity.OTPCode{
		ID:        uuid.New(),
		Phone:     "0912345678",
		ExpiresAt: time.Now().Add(time.Minute),
		CreatedAt: time.Now().Add(-10 * time.Second),
	}, nil)

	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0912345678"})
	assert.True(t, errors.Is(err, domainerrors.ErrOTPCooldown))
}

func TestUserService_RequestOTP_SendFailure(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(nil, repository.ErrOTPNotFound)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("code-hash", nil)
	fx.repos.otp.EXPECT().DeleteByPhone(ctx, "0912345678").Return(nil)
	fx.repos.otp.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OTPCode")).Return(nil)
	fx.otpSender.EXPECT().Send(ctx, "0912345678", mock.AnythingOfType("string")).Return(assert.AnError)

	_, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Phone: "0912345678"})
	assert.True(t, errors.Is(err, domainerrors.ErrOTPSendFailed))
}

func TestUserService_VerifyOTP_NewUserMergesCart(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	otpID := uuid.New()
	userID := uuid.New()

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(&entity.OTPCode{
		ID:        otpID,
		Phone:     "0912345678",
		CodeHash:  "code-hash",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("123456", "code-hash").Return(true)
	fx.repos.otp.EXPECT().MarkConsumed(ctx, otpID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.repos.user.EXPECT().FindByPhone(ctx, "0912345678").Return(nil, repository.ErrUserNotFound)
	fx.repos.user.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Phone == "0912345678" && u.Role == entity.RoleCustomer
		})).
		Run(func(ctx context.Context, u *entity.User) { u.ID = userID }).
		Return(nil)
	fx.expectTokenIssue(userID, entity.RoleCustomer)
	fx.cartUsecase.EXPECT().MergeSessionCart(ctx, userID, "session-1").Return(nil)

	out, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{
		Phone:         "0912345678",
		Code:          "123456",
		CartSessionID: "session-1",
	})
	require.NoError(t, err)
	assert.True(t, out.IsNewUser)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "access-token", out.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", out.Tokens.RefreshToken)
	assert.Equal(t, int64(900), out.Tokens.ExpiresIn)
}

func TestUserService_VerifyOTP_CartMergeFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	otpID := uuid.New()
	user := &entity.User{ID: uuid.New(), Phone: "0912345678", Role: entity.RoleManager}

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(&entity.OTPCode{
		ID:        otpID,
		CodeHash:  "code-hash",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("123456", "code-hash").Return(true)
	fx.repos.otp.EXPECT().MarkConsumed(ctx, otpID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.repos.user.EXPECT().FindByPhone(ctx, "0912345678").Return(user, nil)
	fx.expectTokenIssue(user.ID, entity.RoleManager)
	fx.cartUsecase.EXPECT().MergeSessionCart(ctx, user.ID, "session-1").Return(assert.AnError)

	out, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0912345678", Code: "123456", CartSessionID: "session-1"})
	require.NoError(t, err)
	assert.False(t, out.IsNewUser)
}

func TestUserService_VerifyOTP_WrongCodeRecordsAttempt(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	otpID := uuid.New()

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(&entity.OTPCode{
		ID:        otpID,
		CodeHash:  "code-hash",
		Attempts:  1,
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("000000", "code-hash").Return(false)
	fx.repos.otp.EXPECT().IncrementAttempts(ctx, otpID).Return(nil)

	_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0912345678", Code: "000000"})
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
}

func TestUserService_VerifyOTP_Rejections(t *testing.T) {
	consumedAt := time.Now().Add(-time.Second)

	tests := []struct {
		name    string
		otp     *entity.OTPCode
		findErr error
		wantErr error
	}{
		{
			name:    "no code issued",
			findErr: repository.ErrOTPNotFound,
			wantErr: domainerrors.ErrOTPInvalid,
		},
		{
			name:    "expired",
			otp:     &entity.OTPCode{ID: uuid.New(), ExpiresAt: time.Now().Add(-time.Second)},
			wantErr: domainerrors.ErrOTPInvalid,
		},
		{
			name:    "already used",
			otp:     &entity.OTPCode{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute), ConsumedAt: &consumedAt},
			wantErr: domainerrors.ErrOTPInvalid,
		},
		{
			name:    "attempt limit reached",
			otp:     &entity.OTPCode{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute), Attempts: 5},
			wantErr: domainerrors.ErrOTPTooManyAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			ctx := context.Background()

			fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(tt.otp, tt.findErr)

			_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0912345678", Code: "123456"})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_VerifyOTP_BlockedUser(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	otpID := uuid.New()

	fx.repos.otp.EXPECT().FindLatestByPhone(ctx, "0912345678").Return(&entity.OTPCode{
		ID:        otpID,
		CodeHash:  "code-hash",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("123456", "code-hash").Return(true)
	fx.repos.otp.EXPECT().MarkConsumed(ctx, otpID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.repos.user.EXPECT().FindByPhone(ctx, "0912345678").Return(&entity.User{ID: uuid.New(), IsBlocked: true}, nil)

	_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Phone: "0912345678", Code: "123456"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserBlocked))
}

func TestUserService_RefreshToken_RotatesAndEvictsOldestSession(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	newest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{UserID: user.ID}, nil)
	fx.repos.refreshToken.EXPECT().FindSessionByHash(ctx, util.HashToken("old-refresh")).Return(stored, nil)
	fx.repos.user.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.repos.refreshToken.EXPECT().DeleteSession(ctx, stored.ID).Return(nil)
	fx.repos.refreshToken.EXPECT().ListActiveSessions(ctx, user.ID).Return([]*entity.RefreshToken{newest, oldest}, nil)
	fx.repos.refreshToken.EXPECT().DeleteSession(ctx, oldest.ID).Return(nil)
	fx.expectTokenIssue(user.ID, entity.RoleCustomer)

	tokens, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_RefreshToken_SubjectMismatch(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.repos.refreshToken.EXPECT().
		FindSessionByHash(ctx, util.HashToken("old-refresh")).
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: uuid.New()}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_InvalidSignature(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_UnknownTokenSucceeds(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("stale").Return(nil, assert.AnError)
	fx.repos.refreshToken.EXPECT().DeleteSessionByHash(ctx, util.HashToken("stale")).Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
}

func TestUserService_Logout_RepositoryError(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("token").Return(&service.Claims{}, nil)
	fx.repos.refreshToken.EXPECT().DeleteSessionByHash(ctx, util.HashToken("token")).Return(assert.AnError)

	assert.Error(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "token"}))
}
