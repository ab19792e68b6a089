package handler

import (
	"context"
	"net/http"
	"testing"

	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()}), cartUC
}

func TestCartHandler_AddItem_IssuesSessionForAnonymousCaller(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()
	productID, variantID := uuid.New(), uuid.New()

	var issued string
	cartUC.EXPECT().
		AddItem(mock.Anything, mock.MatchedBy(func(owner entity.CartOwner) bool {
			return owner.UserID == nil && owner.SessionID != ""
		}), mock.MatchedBy(func(input *usecase.AddCartItemInput) bool {
			return input.ProductID == productID && input.VariantID == variantID && input.Quantity == 2
		})).
		RunAndReturn(func(_ context.Context, owner entity.CartOwner, _ *usecase.AddCartItemInput) (*usecase.CartView, error) {
			issued = owner.SessionID

			return &usecase.CartView{SessionID: owner.SessionID}, nil
		})

	body := `{"product_id":"` + productID.String() + `","variant_id":"` + variantID.String() + `","quantity":2}`
	c, rec := newJSONContext(e, http.MethodPost, "/cart/items", body, nil)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, issued)
	assert.Equal(t, issued, rec.Header().Get(constants.HeaderCartSession))
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestCartHandler_AddItem_UserWinsOverSessionHeader(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	cartUC.EXPECT().
		AddItem(mock.Anything, mock.MatchedBy(func(owner entity.CartOwner) bool {
			return owner.UserID != nil && *owner.UserID == userID && owner.SessionID == ""
		}), mock.Anything).
		Return(&usecase.CartView{}, nil)

	body := `{"product_id":"` + uuid.NewString() + `","variant_id":"` + uuid.NewString() + `","quantity":1}`
	c, rec := newJSONContext(e, http.MethodPost, "/cart/items", body, &userID)
	c.Request().Header.Set(constants.HeaderCartSession, uuid.NewString())

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constants.HeaderCartSession))
}

func TestCartHandler_AddItem_ZeroQuantity(t *testing.T) {
	h, _ := createTestCartHandler(t)
	e := newTestEcho()

	body := `{"product_id":"` + uuid.NewString() + `","variant_id":"` + uuid.NewString() + `","quantity":0}`
	c, rec := newJSONContext(e, http.MethodPost, "/cart/items", body, nil)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_GetCart_InvalidSessionHeader(t *testing.T) {
	h, _ := createTestCartHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodGet, "/cart", "", nil)
	c.Request().Header.Set(constants.HeaderCartSession, "not-a-uuid")

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CART_SESSION", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_UpdateItem_OutOfStock(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()
	sessionID := uuid.NewString()
	itemID := uuid.New()

	cartUC.EXPECT().
		UpdateItemQuantity(mock.Anything, entity.CartOwner{SessionID: sessionID}, itemID, 50).
		Return(nil, domainerrors.ErrOutOfStock.WrapMessage("update cart item"))

	c, rec := newJSONContext(e, http.MethodPatch, "/cart/items/"+itemID.String(), `{"quantity":50}`, nil)
	c.Request().Header.Set(constants.HeaderCartSession, sessionID)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "OUT_OF_STOCK", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	h, cartUC := createTestCartHandler(t)
	e := newTestEcho()
	userID := uuid.New()

	cartUC.EXPECT().ClearCart(mock.Anything, entity.CartOwner{UserID: &userID}).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/cart", "", &userID)

	require.NoError(t, h.ClearCart(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
