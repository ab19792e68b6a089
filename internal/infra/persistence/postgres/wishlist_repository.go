package postgres

import (
	"context"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add saves the product for the user. Adding an existing entry is a no-op.
func (repo *wishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := repo.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

// FindByUser lists the user's wishlist, newest first, with products attached.
// Entries whose product was deleted are skipped.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Variants").
		Preload("Product.Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		if itemM.Product == nil {
			continue
		}
		items = append(items, &entity.WishlistItem{
			ID:        itemM.ID,
			UserID:    itemM.UserID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			CreatedAt: itemM.CreatedAt,
		})
	}

	return items, nil
}
