package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the customer-facing OrderUsecase.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	calculator service.ShippingCalculator
	publisher  service.EventPublisher
	qrService  service.QRCodeService
	config     *config.Config
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	Calculator service.ShippingCalculator
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		calculator: params.Calculator,
		publisher:  params.Publisher,
		qrService:  params.QRService,
		config:     params.Config,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder turns the user's cart into a pending order in one transaction.
// Stock is reserved under row locks, and the cart is emptied on success.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// 1. Load the cart
		cart, err := findCart(ctx, cartRepo, entity.CartOwner{UserID: &userID})
		if err != nil {
			return err
		}
		if cart == nil || cart.IsEmpty() {
			return domainerrors.ErrCartEmpty.WrapMessage("place order")
		}
		totals := cart.Totals()

		// 2. Resolve the delivery address
		address, err := findOwnedAddress(ctx, repoFactory.AddressRepo(), userID, input.AddressID)
		if err != nil {
			return err
		}

		// 3. Re-price shipping and compare with what the client saw
		quote, err := quoteShipping(srv.calculator, address, totals.Total)
		if err != nil {
			return err
		}
		if !quote.Fee.Equal(input.ShippingCost) {
			return domainerrors.ErrShippingCostChanged.WithDetails(quote.Fee.StringFixed(2))
		}

		// 4. Reserve stock
		items, err := reserveStock(ctx, repoFactory.VariantRepo(), cart.Items)
		if err != nil {
			return err
		}

		// 5. Persist the order
		number, err := util.GenerateOrderNumber(time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to generate order number")
		}
		order = &entity.Order{
			Number:          number,
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			PaymentStatus:   entity.PaymentStatusUnpaid,
			RefundStatus:    entity.RefundStatusNone,
			ShippingAddress: address.Snapshot(),
			Subtotal:        totals.Subtotal,
			DiscountTotal:   totals.DiscountTotal,
			ShippingFee:     quote.Fee,
			FinalTotal:      entity.ComputeFinalTotal(totals.Subtotal, totals.DiscountTotal, quote.Fee),
			RefundedTotal:   decimal.Zero,
			Items:           items,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 6. Empty the cart
		if err := cartRepo.ClearItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.String("number", order.Number))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), entity.OrderEventCreated, order, nil)

	return order, nil
}

// reserveStock locks each variant in id order and decrements its stock.
// The fixed lock order keeps concurrent checkouts from deadlocking.
func reserveStock(ctx context.Context, variantRepo repository.VariantRepository, cartItems []*entity.CartItem) ([]*entity.OrderItem, error) {
	lines := slices.Clone(cartItems)
	slices.SortFunc(lines, func(a, b *entity.CartItem) int {
		return cmp.Compare(a.VariantID.String(), b.VariantID.String())
	})

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Product == nil || !line.Product.IsPurchasable() {
			return nil, domainerrors.ErrProductUnavailable.WithDetails(line.ProductID.String())
		}

		variant, err := variantRepo.FindByIDForUpdate(ctx, line.VariantID)
		if err != nil {
			return nil, mapRepoError(err, "failed to lock variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrProductUnavailable))
		}
		if variant.Stock < line.Quantity {
			return nil, domainerrors.ErrOutOfStock.WithDetails(variant.ID.String())
		}
		if err := variantRepo.DecrementStock(ctx, variant.ID, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, domainerrors.ErrOutOfStock.WithDetails(variant.ID.String())
			}

			return nil, errors.Wrap(err, "failed to decrement stock")
		}

		items = append(items, &entity.OrderItem{
			ProductID:       line.ProductID,
			VariantID:       variant.ID,
			ProductName:     line.Product.Name,
			SKU:             line.Product.SKU,
			PackageQuantity: variant.PackageQuantity,
			Quantity:        line.Quantity,
			UnitPrice:       line.PriceAtAdd,
			UnitDiscount:    line.DiscountAtAdd,
		})
	}

	return items, nil
}

// ListMyOrders returns one page of the user's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page entity.Page) (*entity.PagedResult[*entity.Order], error) {
	filter := entity.OrderFilter{
		UserID: &userID,
		Page:   normalizePage(srv.config, page),
	}

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPagedResult(orders, filter.Page, total), nil
}

// GetMyOrder loads one of the user's orders. Orders of other users look missing.
func (srv *orderService) GetMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
	}

	return order, nil
}

// CancelMyOrder cancels one of the user's pending orders and returns its stock.
func (srv *orderService) CancelMyOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapRepoError(err, "failed to find order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
		}
		if found.UserID != userID {
			return domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
		}
		if found.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotCancellable.WithDetails(string(found.Status))
		}

		if err := changeOrderStatus(ctx, repoFactory, found, entity.OrderStatusCancelled, srv.log(ctx)); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel order transaction")
	}

	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), entity.OrderEventStatusChanged, order, nil)

	return order, nil
}

// GetOrderQR renders the pickup QR code of one of the user's orders as PNG.
func (srv *orderService) GetOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetMyOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID, order.Number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// changeOrderStatus applies a transition and its side effects, then saves the order.
func changeOrderStatus(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus, logger *slog.Logger) error {
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusChange.WithDetails(string(order.Status) + " -> " + string(next))
	}

	now := time.Now()
	switch next {
	case entity.OrderStatusPaid:
		order.PaymentStatus = entity.PaymentStatusPaid
		order.PaidAt = &now
	case entity.OrderStatusCancelled:
		order.CancelledAt = &now
		for _, item := range order.Items {
			if err := restockItem(ctx, repoFactory, item, item.RestockableQuantity(), logger); err != nil {
				return err
			}
		}
	}
	order.Status = next

	if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
		return mapRepoError(err, "failed to update order", mapping(repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound))
	}

	return nil
}

// restockItem returns units of an order line to stock and records them on the line.
// A variant deleted since the sale cannot take stock back, but the units still count as returned.
func restockItem(ctx context.Context, repoFactory repository.RepositoryFactory, item *entity.OrderItem, quantity int, logger *slog.Logger) error {
	if quantity <= 0 {
		return nil
	}

	if err := repoFactory.VariantRepo().IncrementStock(ctx, item.VariantID, quantity); err != nil {
		if !errors.Is(err, repository.ErrVariantNotFound) {
			return errors.Wrap(err, "failed to restock variant")
		}
		logger.Warn("Restock skipped for deleted variant", slog.Any("variantID", item.VariantID), slog.Int("quantity", quantity))
	}

	restocked := item.RestockedQuantity + quantity
	if err := repoFactory.OrderRepo().SetItemRestocked(ctx, item.ID, restocked); err != nil {
		return errors.Wrap(err, "failed to record restocked quantity")
	}
	item.RestockedQuantity = restocked

	return nil
}

// publishOrderEvent announces an order change after commit. Failures are logged, never returned.
func publishOrderEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType entity.OrderEventType,
	order *entity.Order,
	amount *decimal.Decimal,
) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
		UserID:      order.UserID.String(),
		Status:      order.Status,
		FinalTotal:  order.FinalTotal.StringFixed(2),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if amount != nil {
		event.Amount = amount.StringFixed(2)
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
