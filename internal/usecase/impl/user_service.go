package impl

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
	"pharmacy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface with phone OTP sign-in.
type userService struct {
	txManager         repository.TransactionManager
	otpRepo           repository.OTPRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.SecretHasher
	tokenService      service.TokenService
	otpSender         service.OTPSender
	cartUsecase       usecase.CartUsecase
	otpConfig         config.OTPConfig
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	OTPRepo          repository.OTPRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.SecretHasher
	TokenService     service.TokenService
	OTPSender        service.OTPSender
	CartUsecase      usecase.CartUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpConfig := config.OTPConfig{
		Length:         6,
		TTL:            2 * time.Minute,
		MaxAttempts:    5,
		ResendCooldown: time.Minute,
	}
	maxActiveSessions := 0
	if params.Config != nil {
		if params.Config.OTP != nil {
			otpConfig = *params.Config.OTP
		}
		if params.Config.Auth != nil {
			maxActiveSessions = params.Config.Auth.MaxActiveSessions
		}
	}

	return &userService{
		txManager:         params.TxManager,
		otpRepo:           params.OTPRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		otpSender:         params.OTPSender,
		cartUsecase:       params.CartUsecase,
		otpConfig:         otpConfig,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOTP issues a fresh sign-in code for the phone number and hands it to the sender.
// Earlier codes for the same number stop working.
func (srv *userService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error) {
	phone := util.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid phone number")
	}

	latest, err := srv.otpRepo.FindLatestByPhone(ctx, phone)
	switch {
	case err == nil:
		if !latest.IsConsumed() && time.Since(latest.CreatedAt) < srv.otpConfig.ResendCooldown {
			srv.log(ctx).Warn("OTP requested within cooldown", slog.String("phone", phone))

			return nil, domainerrors.ErrOTPCooldown.WrapMessage("otp requested too soon")
		}
	case !errors.Is(err, repository.ErrOTPNotFound):
		return nil, errors.Wrap(err, "failed to load latest otp")
	}

	code, err := util.GenerateNumericCode(srv.otpConfig.Length)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash otp")
	}

	otp := &entity.OTPCode{
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(srv.otpConfig.TTL),
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.OTPRepo()

		if err := otpRepo.DeleteByPhone(ctx, phone); err != nil {
			return errors.Wrap(err, "failed to delete previous otp codes")
		}
		if err := otpRepo.Create(ctx, otp); err != nil {
			return errors.Wrap(err, "failed to create otp code")
		}

		return nil
	}); err != nil {
		srv.log(ctx).Error("Failed to store otp", slog.String("phone", phone), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute otp request transaction")
	}

	if err := srv.otpSender.Send(ctx, phone, code); err != nil {
		srv.log(ctx).Error("Failed to send otp", slog.String("phone", phone), slog.Any("error", err))

		return nil, domainerrors.ErrOTPSendFailed.WrapMessage(err.Error())
	}

	return &usecase.RequestOTPOutput{
		ExpiresIn:   srv.otpConfig.TTL,
		ResendAfter: srv.otpConfig.ResendCooldown,
	}, nil
}

// VerifyOTP checks the code, signs the user in (creating the account on first use) and
// merges the anonymous cart when a session id is supplied.
func (srv *userService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.LoginOutput, error) {
	phone := util.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid phone number")
	}

	otp, err := srv.otpRepo.FindLatestByPhone(ctx, phone)
	if err != nil {
		return nil, mapRepoError(err, "failed to load otp", mapping(repository.ErrOTPNotFound, domainerrors.ErrOTPInvalid))
	}
	if otp.IsConsumed() || otp.IsExpired(time.Now()) {
		return nil, domainerrors.ErrOTPInvalid.WrapMessage("otp expired or already used")
	}
	if srv.otpConfig.MaxAttempts > 0 && otp.Attempts >= srv.otpConfig.MaxAttempts {
		return nil, domainerrors.ErrOTPTooManyAttempts.WrapMessage("otp attempt limit reached")
	}

	if !srv.hasher.Check(input.Code, otp.CodeHash) {
		// Recorded outside any transaction so the attempt sticks.
		if err := srv.otpRepo.IncrementAttempts(ctx, otp.ID); err != nil {
			srv.log(ctx).Error("Failed to record otp attempt", slog.Any("otpID", otp.ID), slog.Any("error", err))
		}
		srv.log(ctx).Warn("OTP mismatch", slog.String("phone", phone))

		return nil, domainerrors.ErrOTPInvalid.WrapMessage("otp mismatch")
	}

	var (
		loggedInUser *entity.User
		isNewUser    bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OTPRepo().MarkConsumed(ctx, otp.ID, time.Now()); err != nil {
			return mapRepoError(err, "failed to consume otp", mapping(repository.ErrOTPNotFound, domainerrors.ErrOTPInvalid))
		}

		user, created, err := srv.findOrCreateUser(ctx, repoFactory.UserRepo(), phone)
		if err != nil {
			return err
		}
		if user.IsBlocked {
			return domainerrors.ErrUserBlocked.WrapMessage("blocked user attempted to sign in")
		}

		loggedInUser, isNewUser = user, created

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OTP sign-in failed", slog.String("phone", phone), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute otp verification transaction")
	}

	tokens, err := srv.issueTokens(ctx, loggedInUser)
	if err != nil {
		return nil, err
	}

	if input.CartSessionID != "" {
		if err := srv.cartUsecase.MergeSessionCart(ctx, loggedInUser.ID, input.CartSessionID); err != nil {
			srv.log(ctx).Warn("Failed to merge session cart", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", loggedInUser.ID), slog.Bool("isNewUser", isNewUser))

	return &usecase.LoginOutput{
		Tokens:    tokens,
		User:      loggedInUser,
		IsNewUser: isNewUser,
	}, nil
}

func (srv *userService) findOrCreateUser(ctx context.Context, userRepo repository.UserRepository, phone string) (*entity.User, bool, error) {
	user, err := userRepo.FindByPhone(ctx, phone)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by phone")
	}

	user = &entity.User{
		Phone: phone,
		Role:  entity.RoleCustomer,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("Created customer account", slog.Any("userID", user.ID))

	return user, true, nil
}

// issueTokens generates a token pair and stores the refresh token hash.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), user.ID, refreshToken)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return srv.tokenPair(accessToken, refreshToken), nil
}

// storeRefreshToken persists the token and evicts the oldest sessions beyond the limit.
func (srv *userService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	if srv.maxActiveSessions > 0 {
		// Newest first, so the tail holds the sessions to evict.
		sessions, err := refreshRepo.ListActiveSessions(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}
		for i := srv.maxActiveSessions - 1; i < len(sessions); i++ {
			if err := refreshRepo.DeleteSession(ctx, sessions[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(err, "failed to evict old session")
			}
		}
	}

	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateSession(ctx, token); err != nil {
		return errors.Wrap(err, "failed to create refresh token")
	}

	return nil
}

func (srv *userService) tokenPair(accessToken, refreshToken string) *entity.TokenPair {
	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}
}

// RefreshToken exchanges a valid refresh token for a new pair. The old refresh token is revoked.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	var tokens *entity.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindSessionByHash(ctx, util.HashToken(input.RefreshToken))
		if err != nil {
			return mapRepoError(err, "refresh token not found or expired",
				mapping(repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid),
				mapping(repository.ErrRefreshTokenExpired, domainerrors.ErrRefreshTokenInvalid),
			)
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token subject mismatch")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, stored.UserID)
		if err != nil {
			return mapRepoError(err, "failed to find user", mapping(repository.ErrUserNotFound, domainerrors.ErrRefreshTokenInvalid))
		}
		if user.IsBlocked {
			return domainerrors.ErrUserBlocked.WrapMessage("blocked user attempted to refresh")
		}

		if err := refreshRepo.DeleteSession(ctx, stored.ID); err != nil {
			return mapRepoError(err, "failed to revoke refresh token", mapping(repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid))
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}
		if err := srv.storeRefreshToken(ctx, refreshRepo, user.ID, refreshToken); err != nil {
			return err
		}

		tokens = srv.tokenPair(accessToken, refreshToken)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return tokens, nil
}

// Logout revokes the refresh token. Unknown tokens count as already logged out.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteSessionByHash(ctx, util.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}
