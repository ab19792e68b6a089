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

// variantRepository implements the repository.VariantRepository interface.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

func (repo *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidVariant
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

func (repo *variantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	return repo.find(ctx, repo.db, id)
}

// FindByIDForUpdate loads the variant and locks its row until the transaction ends.
func (repo *variantRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	return repo.find(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *variantRepository) find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	return toVariantDomain(&variantM), nil
}

func (repo *variantRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count variants")
	}

	return count, nil
}

func (repo *variantRepository) Update(ctx context.Context, variant *entity.ProductVariant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{ID: variant.ID}).
		Updates(map[string]any{
			"package_quantity": variant.PackageQuantity,
			"price":            variant.Price,
			"discount_price":   variant.DiscountPrice,
			"stock":            variant.Stock,
			"expiry_date":      variant.ExpiryDate,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidVariant
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

func (repo *variantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductVariantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// DecrementStock subtracts quantity only if enough stock remains.
func (repo *variantRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock adds quantity back to stock.
func (repo *variantRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	return &entity.ProductVariant{
		ID:              data.ID,
		ProductID:       data.ProductID,
		PackageQuantity: data.PackageQuantity,
		Price:           data.Price,
		DiscountPrice:   data.DiscountPrice,
		Stock:           data.Stock,
		ExpiryDate:      data.ExpiryDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	return &model.ProductVariantModel{
		ID:              data.ID,
		ProductID:       data.ProductID,
		PackageQuantity: data.PackageQuantity,
		Price:           data.Price,
		DiscountPrice:   data.DiscountPrice,
		Stock:           data.Stock,
		ExpiryDate:      data.ExpiryDate,
	}
}
