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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
		order.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindByID loads an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(ctx, repo.db, id)
}

// FindByIDForUpdate loads an order with its items and locks the order row.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var locked model.OrderModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&locked).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return repo.find(ctx, repo.db, id)
}

func (repo *orderRepository) find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Where("orders.id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// List returns one page of orders, newest first, without items.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	query = whereCreatedWithin(query, filter.From, filter.To)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Size).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Update saves the order's status and money columns.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{ID: order.ID}).
		Updates(map[string]any{
			"status":         string(order.Status),
			"payment_status": string(order.PaymentStatus),
			"refund_status":  string(order.RefundStatus),
			"refunded_total": order.RefundedTotal,
			"paid_at":        order.PaidAt,
			"cancelled_at":   order.CancelledAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// SetItemRestocked stores the restocked quantity of an order line.
func (repo *orderRepository) SetItemRestocked(ctx context.Context, itemID uuid.UUID, restockedQuantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ?", itemID).
		Update("restocked_quantity", restockedQuantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Stats aggregates orders created within [from, to). Nil bounds are open.
func (repo *orderRepository) Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error) {
	base := func() *gorm.DB {
		return whereCreatedWithin(repo.db.WithContext(ctx).Model(&model.OrderModel{}), from, to)
	}

	var statusRows []model.OrderStatusCountRow
	if err := base().
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	var revenue model.OrderRevenueRow
	if err := base().
		Select("COALESCE(SUM(final_total), 0) AS gross_revenue, COALESCE(SUM(refunded_total), 0) AS refunded_total").
		Where("payment_status = ?", string(entity.PaymentStatusPaid)).
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum order revenue")
	}

	return orderStatsFromRows(statusRows, revenue, from, to), nil
}

// orderStatsFromRows reports every known status, including those with no orders.
func orderStatsFromRows(statusRows []model.OrderStatusCountRow, revenue model.OrderRevenueRow, from, to *time.Time) *entity.OrderStats {
	stats := &entity.OrderStats{
		CountByStatus: make(map[entity.OrderStatus]int64, len(entity.AllOrderStatuses)),
		GrossRevenue:  revenue.GrossRevenue,
		RefundedTotal: revenue.RefundedTotal,
		NetRevenue:    revenue.GrossRevenue.Sub(revenue.RefundedTotal),
		From:          from,
		To:            to,
	}
	for _, status := range entity.AllOrderStatuses {
		stats.CountByStatus[status] = 0
	}
	for _, row := range statusRows {
		stats.CountByStatus[entity.OrderStatus(row.Status)] = row.Count
		stats.TotalOrders += row.Count
	}

	return stats
}

func whereCreatedWithin(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	return query
}

// refundRepository implements the repository.RefundRepository interface.
type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository is the constructor for refundRepository.
func NewRefundRepository(db *gorm.DB) repository.RefundRepository {
	return &refundRepository{db: db}
}

// Create persists the refund together with its items.
func (repo *refundRepository) Create(ctx context.Context, refund *entity.Refund) error {
	refundM := &model.RefundModel{
		ID:        refund.ID,
		OrderID:   refund.OrderID,
		Type:      string(refund.Type),
		Amount:    refund.Amount,
		Restock:   refund.Restock,
		Reason:    refund.Reason,
		CreatedBy: refund.CreatedBy,
		Items:     make([]model.RefundItemModel, 0, len(refund.Items)),
	}
	for _, item := range refund.Items {
		refundM.Items = append(refundM.Items, model.RefundItemModel{
			ID:          item.ID,
			OrderItemID: item.OrderItemID,
			Quantity:    item.Quantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(refundM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refund")
	}

	refund.ID = refundM.ID
	refund.CreatedAt = refundM.CreatedAt
	for i, itemM := range refundM.Items {
		refund.Items[i].ID = itemM.ID
		refund.Items[i].RefundID = itemM.RefundID
	}

	return nil
}

// FindByOrderID lists the refunds of an order, oldest first.
func (repo *refundRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Refund, error) {
	var refundModels []*model.RefundModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&refundModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list refunds")
	}

	refunds := make([]*entity.Refund, 0, len(refundModels))
	for _, refundM := range refundModels {
		refund := &entity.Refund{
			ID:        refundM.ID,
			OrderID:   refundM.OrderID,
			Type:      entity.RefundType(refundM.Type),
			Amount:    refundM.Amount,
			Restock:   refundM.Restock,
			Reason:    refundM.Reason,
			CreatedBy: refundM.CreatedBy,
			Items:     make([]*entity.RefundItem, 0, len(refundM.Items)),
			CreatedAt: refundM.CreatedAt,
		}
		for _, itemM := range refundM.Items {
			refund.Items = append(refund.Items, &entity.RefundItem{
				ID:          itemM.ID,
				RefundID:    itemM.RefundID,
				OrderItemID: itemM.OrderItemID,
				Quantity:    itemM.Quantity,
			})
		}
		refunds = append(refunds, refund)
	}

	return refunds, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		Number:        data.Number,
		UserID:        data.UserID,
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		RefundStatus:  entity.RefundStatus(data.RefundStatus),
		ShippingAddress: entity.AddressSnapshot{
			FullName:   data.ShipFullName,
			Phone:      data.ShipPhone,
			Province:   data.ShipProvince,
			City:       data.ShipCity,
			Street:     data.ShipStreet,
			PostalCode: data.ShipPostalCode,
			Latitude:   data.ShipLatitude,
			Longitude:  data.ShipLongitude,
		},
		Subtotal:      data.Subtotal,
		DiscountTotal: data.DiscountTotal,
		ShippingFee:   data.ShippingFee,
		FinalTotal:    data.FinalTotal,
		RefundedTotal: data.RefundedTotal,
		PaidAt:        data.PaidAt,
		CancelledAt:   data.CancelledAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if len(data.Items) > 0 {
		order.Items = make([]*entity.OrderItem, 0, len(data.Items))
		for _, itemM := range data.Items {
			order.Items = append(order.Items, &entity.OrderItem{
				ID:                itemM.ID,
				OrderID:           itemM.OrderID,
				ProductID:         itemM.ProductID,
				VariantID:         itemM.VariantID,
				ProductName:       itemM.ProductName,
				SKU:               itemM.SKU,
				PackageQuantity:   itemM.PackageQuantity,
				Quantity:          itemM.Quantity,
				UnitPrice:         itemM.UnitPrice,
				UnitDiscount:      itemM.UnitDiscount,
				RestockedQuantity: itemM.RestockedQuantity,
				CreatedAt:         itemM.CreatedAt,
			})
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		Number:         data.Number,
		UserID:         data.UserID,
		Status:         string(data.Status),
		PaymentStatus:  string(data.PaymentStatus),
		RefundStatus:   string(data.RefundStatus),
		ShipFullName:   data.ShippingAddress.FullName,
		ShipPhone:      data.ShippingAddress.Phone,
		ShipProvince:   data.ShippingAddress.Province,
		ShipCity:       data.ShippingAddress.City,
		ShipStreet:     data.ShippingAddress.Street,
		ShipPostalCode: data.ShippingAddress.PostalCode,
		ShipLatitude:   data.ShippingAddress.Latitude,
		ShipLongitude:  data.ShippingAddress.Longitude,
		Subtotal:       data.Subtotal,
		DiscountTotal:  data.DiscountTotal,
		ShippingFee:    data.ShippingFee,
		FinalTotal:     data.FinalTotal,
		RefundedTotal:  data.RefundedTotal,
		PaidAt:         data.PaidAt,
		CancelledAt:    data.CancelledAt,
		Items:          make([]model.OrderItemModel, 0, len(data.Items)),
	}
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:                item.ID,
			ProductID:         item.ProductID,
			VariantID:         item.VariantID,
			ProductName:       item.ProductName,
			SKU:               item.SKU,
			PackageQuantity:   item.PackageQuantity,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			UnitDiscount:      item.UnitDiscount,
			RestockedQuantity: item.RestockedQuantity,
		})
	}

	return orderM
}
