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
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *cartRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.Cart, error) {
	return repo.findOne(ctx, "session_id = ?", sessionID)
}

func (repo *cartRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Variant").
		Where(cond, arg).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		ID:     cart.ID,
		UserID: cart.UserID,
	}
	if cart.SessionID != "" {
		sessionID := cart.SessionID
		cartM.SessionID = &sessionID
	}

	if err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("cart already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", cartID).Delete(&model.CartModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

func (repo *cartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		ID:            item.ID,
		CartID:        item.CartID,
		ProductID:     item.ProductID,
		VariantID:     item.VariantID,
		Quantity:      item.Quantity,
		PriceAtAdd:    item.PriceAtAdd,
		DiscountAtAdd: item.DiscountAtAdd,
	}

	if err := repo.db.WithContext(ctx).Omit("Product", "Variant").Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("variant already in cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems removes every line of the cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     make([]*entity.CartItem, 0, len(data.Items)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.SessionID != nil {
		cart.SessionID = *data.SessionID
	}
	for i := range data.Items {
		itemM := &data.Items[i]
		item := &entity.CartItem{
			ID:            itemM.ID,
			CartID:        itemM.CartID,
			ProductID:     itemM.ProductID,
			VariantID:     itemM.VariantID,
			Quantity:      itemM.Quantity,
			PriceAtAdd:    itemM.PriceAtAdd,
			DiscountAtAdd: itemM.DiscountAtAdd,
			Variant:       toVariantDomain(itemM.Variant),
			CreatedAt:     itemM.CreatedAt,
			UpdatedAt:     itemM.UpdatedAt,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		cart.Items = append(cart.Items, item)
	}

	return cart
}
