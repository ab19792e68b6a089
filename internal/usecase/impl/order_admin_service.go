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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderAdminService implements the back-office OrderAdminUsecase.
type orderAdminService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	refundRepo repository.RefundRepository
	publisher  service.EventPublisher
	qrService  service.QRCodeService
	config     *config.Config
	logger     *slog.Logger
}

// OrderAdminServiceParams holds dependencies for OrderAdminService, injected by Fx.
type OrderAdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	RefundRepo repository.RefundRepository
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderAdminService is the constructor for orderAdminService.
func NewOrderAdminService(params OrderAdminServiceParams) usecase.OrderAdminUsecase {
	return &orderAdminService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		refundRepo: params.RefundRepo,
		publisher:  params.Publisher,
		qrService:  params.QRService,
		config:     params.Config,
		logger:     params.Logger,
	}
}

func (srv *orderAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns one page of all orders, newest first.
func (srv *orderAdminService) ListOrders(ctx context.Context, filter entity.OrderFilter) (*entity.PagedResult[*entity.Order], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(filter.Status))
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must be before to")
	}
	filter.Page = normalizePage(srv.config, filter.Page)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPagedResult(orders, filter.Page, total), nil
}

// GetOrder loads an order with its items and refunds.
func (srv *orderAdminService) GetOrder(ctx context.Context, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
	}

	refunds, err := srv.refundRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list refunds")
	}
	if refunds == nil {
		refunds = []*entity.Refund{}
	}

	return &usecase.OrderDetail{Order: order, Refunds: refunds}, nil
}

// UpdateStatus moves an order along its lifecycle. Cancelling returns stock.
func (srv *orderAdminService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}
	if status == entity.OrderStatusRefunded {
		return nil, domainerrors.ErrInvalidStatusChange.WithDetails("use a refund to mark an order refunded")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapRepoError(err, "failed to find order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
		}

		if err := changeOrderStatus(ctx, repoFactory, found, status, srv.log(ctx)); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update status transaction")
	}

	srv.log(ctx).Info("Order status changed", slog.Any("orderID", order.ID), slog.String("status", string(order.Status)))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), entity.OrderEventStatusChanged, order, nil)

	return order, nil
}

// Refund records a full or partial refund against a paid order, optionally returning units to stock.
func (srv *orderAdminService) Refund(ctx context.Context, actorID, orderID uuid.UUID, input *usecase.RefundInput) (*usecase.RefundOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown refund type " + string(input.Type))
	}

	var (
		order  *entity.Order
		refund *entity.Refund
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapRepoError(err, "failed to find order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
		}
		if !found.IsPaid() {
			return domainerrors.ErrOrderNotRefundable.WithDetails(string(found.PaymentStatus))
		}

		amount, err := refundAmount(found, input)
		if err != nil {
			return err
		}

		restock, err := restockPlan(found, input)
		if err != nil {
			return err
		}

		refund = &entity.Refund{
			OrderID:   found.ID,
			Type:      input.Type,
			Amount:    amount,
			Restock:   input.Restock,
			Reason:    input.Reason,
			CreatedBy: actorID,
		}
		for _, line := range restock {
			if err := restockItem(ctx, repoFactory, line.item, line.quantity, srv.log(ctx)); err != nil {
				return err
			}
			refund.Items = append(refund.Items, &entity.RefundItem{OrderItemID: line.item.ID, Quantity: line.quantity})
		}

		found.RefundedTotal = found.RefundedTotal.Add(amount)
		if found.RemainingRefundable().IsZero() {
			found.RefundStatus = entity.RefundStatusFull
			found.Status = entity.OrderStatusRefunded
		} else {
			found.RefundStatus = entity.RefundStatusPartial
		}

		if err := repoFactory.OrderRepo().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		if err := repoFactory.RefundRepo().Create(ctx, refund); err != nil {
			return errors.Wrap(err, "failed to create refund")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute refund transaction")
	}

	srv.log(ctx).Info("Order refunded",
		slog.Any("orderID", order.ID),
		slog.String("amount", refund.Amount.StringFixed(2)),
		slog.String("refundStatus", string(order.RefundStatus)),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), entity.OrderEventRefunded, order, &refund.Amount)

	return &usecase.RefundOutput{Refund: refund, Order: order}, nil
}

// refundAmount resolves how much money the refund returns.
func refundAmount(order *entity.Order, input *usecase.RefundInput) (decimal.Decimal, error) {
	remaining := order.RemainingRefundable()
	if !remaining.IsPositive() {
		return decimal.Zero, domainerrors.ErrOrderFullyRefunded.WrapMessage("nothing left to refund")
	}

	if input.Type == entity.RefundTypeFull {
		return remaining, nil
	}

	if input.Amount == nil || !input.Amount.IsPositive() {
		return decimal.Zero, domainerrors.ErrInvalidRefundAmount.WrapMessage("partial refund")
	}
	if !input.Amount.Equal(input.Amount.Round(moneyScale)) {
		return decimal.Zero, domainerrors.ErrInvalidRefundAmount.WithDetails("at most two decimal places")
	}
	if input.Amount.GreaterThan(remaining) {
		return decimal.Zero, domainerrors.ErrRefundAmountExceeded.WithDetails("remaining " + remaining.StringFixed(2))
	}

	return *input.Amount, nil
}

type restockLine struct {
	item     *entity.OrderItem
	quantity int
}

// restockPlan lists the units a refund returns to stock. Full refunds return
// everything not yet restocked; partial refunds return exactly the listed units.
func restockPlan(order *entity.Order, input *usecase.RefundInput) ([]restockLine, error) {
	if !input.Restock {
		if len(input.Items) > 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("items are only accepted with restock")
		}

		return nil, nil
	}

	var plan []restockLine
	if input.Type == entity.RefundTypeFull {
		for _, item := range order.Items {
			if qty := item.RestockableQuantity(); qty > 0 {
				plan = append(plan, restockLine{item: item, quantity: qty})
			}
		}

		return plan, nil
	}

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrRestockItemsRequired.WrapMessage("partial refund with restock")
	}

	requested := make(map[uuid.UUID]int, len(input.Items))
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("restock quantity must be positive")
		}
		item := order.FindItem(in.OrderItemID)
		if item == nil {
			return nil, domainerrors.ErrOrderItemNotFound.WithDetails(in.OrderItemID.String())
		}

		requested[item.ID] += in.Quantity
		if requested[item.ID] > item.RestockableQuantity() {
			return nil, domainerrors.ErrRefundRestockExceeded.WithDetails(item.ID.String())
		}
	}

	for _, item := range order.Items {
		if qty, ok := requested[item.ID]; ok {
			plan = append(plan, restockLine{item: item, quantity: qty})
		}
	}

	return plan, nil
}

// ResolveQR decodes a scanned pickup code and loads the order it names.
func (srv *orderAdminService) ResolveQR(ctx context.Context, payload string) (*usecase.OrderDetail, error) {
	orderID, err := srv.qrService.ParseOrderQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage(err.Error())
	}

	return srv.GetOrder(ctx, orderID)
}

// Stats aggregates order counts and revenue over [from, to).
func (srv *orderAdminService) Stats(ctx context.Context, from, to *time.Time) (*entity.OrderStats, error) {
	if from != nil && to != nil && !from.Before(*to) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must be before to")
	}

	stats, err := srv.orderRepo.Stats(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	return stats, nil
}
