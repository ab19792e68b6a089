package impl

import (
	"context"
	"log/slog"

	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Lines keep the price snapshot taken when they were added.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the owner's cart. An owner without a cart gets an empty view.
func (srv *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrCartOwnerMissing.WrapMessage("get cart")
	}

	cart, err := findCart(ctx, srv.cartRepo, owner)
	if err != nil {
		return nil, err
	}

	return newCartView(owner, cart), nil
}

// AddItem puts a variant in the cart, creating the cart on first use.
// Adding a variant already in the cart raises its quantity and keeps the original price snapshot.
func (srv *cartService) AddItem(ctx context.Context, owner entity.CartOwner, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrCartOwnerMissing.WrapMessage("add cart item")
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variant, err := repoFactory.VariantRepo().FindByID(ctx, input.VariantID)
		if err != nil {
			return mapRepoError(err, "failed to find variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
		}
		if variant.ProductID != input.ProductID {
			return domainerrors.ErrVariantNotFound.WrapMessage("variant does not belong to product")
		}

		product, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			return mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
		}
		if !product.IsPurchasable() {
			return domainerrors.ErrProductUnavailable.WrapMessage("product is blocked")
		}

		cartRepo := repoFactory.CartRepo()
		cart, err := findOrCreateCart(ctx, cartRepo, owner)
		if err != nil {
			return err
		}

		existing := cart.FindItemByVariant(variant.ID)
		requested := input.Quantity
		if existing != nil {
			requested += existing.Quantity
		}
		if requested > variant.Stock {
			return domainerrors.ErrOutOfStock.WithDetails(variant.ID.String())
		}

		if existing != nil {
			if err := cartRepo.UpdateItemQuantity(ctx, existing.ID, requested); err != nil {
				return mapRepoError(err, "failed to update cart item", mapping(repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound))
			}

			return nil
		}

		item := &entity.CartItem{
			CartID:        cart.ID,
			ProductID:     product.ID,
			VariantID:     variant.ID,
			Quantity:      input.Quantity,
			PriceAtAdd:    variant.Price,
			DiscountAtAdd: variant.UnitDiscount(),
		}
		if err := cartRepo.AddItem(ctx, item); err != nil {
			return mapRepoError(err, "failed to add cart item", mapping(repository.ErrInvalidReference, domainerrors.ErrVariantNotFound))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add cart item transaction")
	}

	return srv.GetCart(ctx, owner)
}

// UpdateItemQuantity sets the line quantity. Zero removes the line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrCartOwnerMissing.WrapMessage("update cart item")
	}
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}
	if quantity == 0 {
		return srv.RemoveItem(ctx, owner, itemID)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := findCartItem(ctx, cartRepo, owner, itemID)
		if err != nil {
			return err
		}
		if item.Variant == nil {
			return domainerrors.ErrVariantNotFound.WrapMessage("cart line variant was removed")
		}
		if quantity > item.Variant.Stock {
			return domainerrors.ErrOutOfStock.WithDetails(item.VariantID.String())
		}

		if err := cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
			return mapRepoError(err, "failed to update cart item", mapping(repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update cart item transaction")
	}

	return srv.GetCart(ctx, owner)
}

// RemoveItem deletes one line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID) (*usecase.CartView, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrCartOwnerMissing.WrapMessage("remove cart item")
	}

	item, err := findCartItem(ctx, srv.cartRepo, owner, itemID)
	if err != nil {
		return nil, err
	}
	if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, mapRepoError(err, "failed to delete cart item", mapping(repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound))
	}

	return srv.GetCart(ctx, owner)
}

// ClearCart removes every line. Clearing a missing cart is a no-op.
func (srv *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	if owner.IsZero() {
		return domainerrors.ErrCartOwnerMissing.WrapMessage("clear cart")
	}

	cart, err := findCart(ctx, srv.cartRepo, owner)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}

	if err := srv.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// MergeSessionCart moves the anonymous cart's lines into the user's cart and deletes the anonymous cart.
// Lines for a variant the user already has are summed. Every merged line is capped at the
// current stock, and lines whose variant is gone or sold out are dropped.
func (srv *cartService) MergeSessionCart(ctx context.Context, userID uuid.UUID, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		sessionCart, err := cartRepo.FindBySessionID(ctx, sessionID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session cart")
		}
		if sessionCart.UserID != nil {
			return nil
		}

		userCart, err := findOrCreateCart(ctx, cartRepo, entity.CartOwner{UserID: &userID})
		if err != nil {
			return err
		}

		for _, item := range sessionCart.Items {
			if err := mergeCartItem(ctx, cartRepo, userCart, item); err != nil {
				return err
			}
		}

		if err := cartRepo.Delete(ctx, sessionCart.ID); err != nil {
			return errors.Wrap(err, "failed to delete session cart")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute merge cart transaction")
	}
	srv.log(ctx).Debug("Merged session cart", slog.Any("userID", userID))

	return nil
}

func mergeCartItem(ctx context.Context, cartRepo repository.CartRepository, userCart *entity.Cart, item *entity.CartItem) error {
	// Deleted variants are not loaded, and sold-out lines have nothing to carry over.
	if item.Variant == nil || item.Variant.Stock <= 0 {
		return nil
	}
	stock := item.Variant.Stock

	existing := userCart.FindItemByVariant(item.VariantID)
	if existing == nil {
		merged := &entity.CartItem{
			CartID:        userCart.ID,
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			Quantity:      min(item.Quantity, stock),
			PriceAtAdd:    item.PriceAtAdd,
			DiscountAtAdd: item.DiscountAtAdd,
		}
		if err := cartRepo.AddItem(ctx, merged); err != nil {
			return errors.Wrap(err, "failed to move cart item")
		}

		return nil
	}

	quantity := existing.Quantity + item.Quantity
	if quantity > stock {
		quantity = max(existing.Quantity, stock)
	}
	if quantity == existing.Quantity {
		return nil
	}
	if err := cartRepo.UpdateItemQuantity(ctx, existing.ID, quantity); err != nil {
		return errors.Wrap(err, "failed to merge cart item")
	}

	return nil
}

// findCart loads the owner's cart. A missing cart is reported as nil without error.
func findCart(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner) (*entity.Cart, error) {
	var (
		cart *entity.Cart
		err  error
	)
	if owner.UserID != nil {
		cart, err = cartRepo.FindByUserID(ctx, *owner.UserID)
	} else {
		cart, err = cartRepo.FindBySessionID(ctx, owner.SessionID)
	}
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func findOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner) (*entity.Cart, error) {
	cart, err := findCart(ctx, cartRepo, owner)
	if err != nil || cart != nil {
		return cart, err
	}

	cart = &entity.Cart{Items: []*entity.CartItem{}}
	if owner.UserID != nil {
		cart.UserID = owner.UserID
	} else {
		cart.SessionID = owner.SessionID
	}
	if err := cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

func findCartItem(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner, itemID uuid.UUID) (*entity.CartItem, error) {
	cart, err := findCart(ctx, cartRepo, owner)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart does not exist")
	}

	item := cart.FindItem(itemID)
	if item == nil {
		return nil, domainerrors.ErrCartItemNotFound.WrapMessage("item is not in this cart")
	}

	return item, nil
}

func newCartView(owner entity.CartOwner, cart *entity.Cart) *usecase.CartView {
	if cart == nil {
		return &usecase.CartView{
			SessionID: sessionIDFor(owner),
			Items:     []*entity.CartItem{},
			Totals:    (&entity.Cart{}).Totals(),
		}
	}

	cartID := cart.ID

	return &usecase.CartView{
		ID:        &cartID,
		SessionID: cart.SessionID,
		Items:     cart.Items,
		Totals:    cart.Totals(),
	}
}

func sessionIDFor(owner entity.CartOwner) string {
	if owner.UserID != nil {
		return ""
	}

	return owner.SessionID
}
