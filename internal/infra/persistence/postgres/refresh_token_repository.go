package postgres

import (
	"context"
	"time"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) CreateSession(ctx context.Context, token *entity.RefreshToken) error {
	row := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).Create(row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session hash collision")
	case isForeignKeyConstraintViolation(err):
		return repository.ErrUserNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	token.ID, token.CreatedAt = row.ID, row.CreatedAt

	return nil
}

func (repo *refreshTokenRepository) FindSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !row.ExpiresAt.After(time.Now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return sessionFromRow(&row), nil
}

func (repo *refreshTokenRepository) ListActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var rows []*model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.RefreshToken, len(rows))
	for i, row := range rows {
		sessions[i] = sessionFromRow(row)
	}

	return sessions, nil
}

func (repo *refreshTokenRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return repo.deleteOne(ctx, "id = ?", id)
}

func (repo *refreshTokenRepository) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	return repo.deleteOne(ctx, "token_hash = ?", tokenHash)
}

func (repo *refreshTokenRepository) RevokeUserSessions(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error

	return errors.WithStack(err)
}

func (repo *refreshTokenRepository) deleteOne(ctx context.Context, cond string, arg any) error {
	result := repo.db.WithContext(ctx).Where(cond, arg).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func sessionFromRow(row *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
