package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	mockUsecase "pharmacy/internal/mocks/usecase"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminProductHandler(t *testing.T) (*AdminProductHandler, *mockUsecase.MockProductAdminUsecase) {
	productAdminUC := mockUsecase.NewMockProductAdminUsecase(t)

	return NewAdminProductHandler(AdminProductHandlerParams{
		ProductAdminUC: productAdminUC,
		Logger:         newDiscardLogger(),
	}), productAdminUC
}

func newMultipartContext(t *testing.T, e *echo.Echo, target string, fields map[string]string, filename string, data []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdminProductHandler_CreateProduct(t *testing.T) {
	h, productAdminUC := createTestAdminProductHandler(t)
	e := newTestEcho()
	categoryID := uuid.New()

	productAdminUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
			return input.SKU == "PAR-500" && input.CategoryID == categoryID &&
				len(input.Variants) == 1 && input.Variants[0].Price.Equal(decimal.RequireFromString("120"))
		})).
		Return(&entity.Product{ID: uuid.New(), SKU: "PAR-500"}, nil)

	body := `{"sku":"PAR-500","name":"Paracetamol 500mg","category_id":"` + categoryID.String() + `",` +
		`"variants":[{"package_quantity":20,"price":"120","stock":10}]}`
	c, rec := newJSONContext(e, http.MethodPost, "/admin/products", body, nil)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminProductHandler_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no variants", body: `{"sku":"A","name":"A","category_id":"` + uuid.NewString() + `","variants":[]}`},
		{name: "negative price", body: `{"sku":"A","name":"A","category_id":"` + uuid.NewString() + `","variants":[{"package_quantity":1,"price":-5}]}`},
		{name: "missing category", body: `{"sku":"A","name":"A","variants":[{"package_quantity":1,"price":5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestAdminProductHandler(t)
			e := newTestEcho()

			c, rec := newJSONContext(e, http.MethodPost, "/admin/products", tt.body, nil)

			require.NoError(t, h.CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAdminProductHandler_DeleteVariant_LastVariant(t *testing.T) {
	h, productAdminUC := createTestAdminProductHandler(t)
	e := newTestEcho()
	variantID := uuid.New()

	productAdminUC.EXPECT().DeleteVariant(mock.Anything, variantID).Return(domainerrors.ErrLastVariant)

	c, rec := newJSONContext(e, http.MethodDelete, "/admin/variants/"+variantID.String(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(variantID.String())

	require.NoError(t, h.DeleteVariant(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LAST_VARIANT", decodeEnvelope(t, rec).Error.Code)
}

func TestAdminProductHandler_UploadImage(t *testing.T) {
	h, productAdminUC := createTestAdminProductHandler(t)
	e := newTestEcho()
	productID := uuid.New()

	productAdminUC.EXPECT().
		UploadImage(mock.Anything, productID, mock.MatchedBy(func(input *usecase.UploadImageInput) bool {
			return input.Filename == "box.png" && string(input.Data) == "png-bytes" && input.Position == 2
		})).
		Return(&entity.ProductImage{ID: uuid.New(), ProductID: productID, URL: "http://cdn/box.png", Position: 2}, nil)

	c, rec := newMultipartContext(t, e, "/admin/products/"+productID.String()+"/images",
		map[string]string{"position": "2"}, "box.png", []byte("png-bytes"))
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminProductHandler_UploadImage_BadInput(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		filename string
	}{
		{name: "missing file", fields: map[string]string{}},
		{name: "negative position", fields: map[string]string{"position": "-1"}, filename: "box.png"},
		{name: "non-numeric position", fields: map[string]string{"position": "first"}, filename: "box.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestAdminProductHandler(t)
			e := newTestEcho()
			productID := uuid.New()

			c, rec := newMultipartContext(t, e, "/admin/products/"+productID.String()+"/images", tt.fields, tt.filename, []byte("x"))
			c.SetParamNames("id")
			c.SetParamValues(productID.String())

			require.NoError(t, h.UploadImage(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdminProductHandler_UploadImage_Unsupported(t *testing.T) {
	h, productAdminUC := createTestAdminProductHandler(t)
	e := newTestEcho()
	productID := uuid.New()

	productAdminUC.EXPECT().
		UploadImage(mock.Anything, productID, mock.Anything).
		Return(nil, domainerrors.ErrUnsupportedImage)

	c, rec := newMultipartContext(t, e, "/admin/products/"+productID.String()+"/images", nil, "notes.txt", []byte("hello"))
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UNSUPPORTED_IMAGE", decodeEnvelope(t, rec).Error.Code)
}
