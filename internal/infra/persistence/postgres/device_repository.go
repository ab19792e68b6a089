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
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	row := &model.UserDeviceModel{
		ID:       device.ID,
		UserID:   device.UserID,
		FCMToken: device.FCMToken,
		DeviceID: device.DeviceID,
		Platform: device.Platform,
		IsActive: true,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"fcm_token":  row.FCMToken,
					"platform":   row.Platform,
					"is_active":  true,
					"updated_at": time.Now(),
				}),
			},
			clause.Returning{},
		).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	*device = *deviceFromRow(row)

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	return deviceFromRow(&row), nil
}

func (repo *deviceRepository) ListActiveDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active", userID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = deviceFromRow(row)
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.updateOne(ctx, deviceID, map[string]any{"fcm_token": fcmToken, "is_active": true})
}

func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	return repo.updateOne(ctx, id, map[string]any{"is_active": false})
}

func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error

	return errors.Wrap(err, "failed to deactivate devices by token")
}

func (repo *deviceRepository) updateOne(ctx context.Context, id uuid.UUID, values map[string]any) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.UserDeviceModel{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func deviceFromRow(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		FCMToken:  row.FCMToken,
		DeviceID:  row.DeviceID,
		Platform:  row.Platform,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
