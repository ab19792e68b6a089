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

// otpRepository implements the repository.OTPRepository interface.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Create persists a newly issued code.
func (repo *otpRepository) Create(ctx context.Context, code *entity.OTPCode) error {
	codeM := &model.OTPCodeModel{
		ID:        code.ID,
		Phone:     code.Phone,
		CodeHash:  code.CodeHash,
		Attempts:  code.Attempts,
		ExpiresAt: code.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestByPhone returns the most recently issued code for the phone number.
func (repo *otpRepository) FindLatestByPhone(ctx context.Context, phone string) (*entity.OTPCode, error) {
	var codeM model.OTPCodeModel
	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp code")
	}

	return &entity.OTPCode{
		ID:         codeM.ID,
		Phone:      codeM.Phone,
		CodeHash:   codeM.CodeHash,
		Attempts:   codeM.Attempts,
		ExpiresAt:  codeM.ExpiresAt,
		ConsumedAt: codeM.ConsumedAt,
		CreatedAt:  codeM.CreatedAt,
	}, nil
}

// IncrementAttempts records a failed verification attempt.
func (repo *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPCodeModel{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment otp attempts")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// MarkConsumed marks the code as used.
func (repo *otpRepository) MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPCodeModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume otp code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// DeleteByPhone removes every code issued to the phone number.
func (repo *otpRepository) DeleteByPhone(ctx context.Context, phone string) error {
	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		Delete(&model.OTPCodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp codes")
	}

	return nil
}
