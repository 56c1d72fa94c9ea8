package product_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"somon-ai/internal/adapters/handlers/http/chi"
	product2 "somon-ai/internal/adapters/handlers/http/chi/v1/product"
	"somon-ai/internal/core/domain"
	"somon-ai/internal/core/service/product"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	categoryID = "659200000000000000000002"
	productID  = "659200000000000000000010"
)

func newRouter(svc *product.MockProductService) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := product2.NewProductHandlerV1(svc, discardLogger)
	return chi.NewRouter(discardLogger, nil, handler, nil, nil, chi.Options{})
}

func TestListProductsV1(t *testing.T) {
	t.Run("query is forwarded", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		svc.On("ListProducts", mock.Anything, domain.ProductFilter{CategoryID: categoryID, Skip: 20, Take: 10}).
			Return(domain.Success([]domain.ProductListItem{{ID: productID, Title: "Camry", Price: decimal.RequireFromString("100")}}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?categoryId="+categoryID+"&skip=20&take=10", nil)

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Camry"`)
		svc.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		svc.On("ListProducts", mock.Anything, domain.ProductFilter{Take: 20}).
			Return(domain.Success([]domain.ProductListItem{}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid take", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?take=ten", nil)

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})
}

func TestGetProductV1(t *testing.T) {
	// Arrange
	svc := product.NewMockProductService()
	svc.On("GetProduct", mock.Anything, productID, domain.LanguageEnglish).
		Return(domain.Success(domain.ProductDetail{ID: productID, CategoryName: "Cars"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID, nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")

	// Act
	newRouter(svc).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"categoryName":"Cars"`)
	svc.AssertExpectations(t)
}

func TestDeleteProductV1(t *testing.T) {
	// Arrange
	svc := product.NewMockProductService()
	svc.On("DeleteProduct", mock.Anything, productID).
		Return(domain.FailureWithValue(domain.NotFound("Product with ID '"+productID+"' not found"), false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+productID, nil)

	// Act
	newRouter(svc).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		IsSuccess bool  `json:"isSuccess"`
		Data      *bool `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.IsSuccess)
	require.NotNil(t, resp.Data)
	assert.False(t, *resp.Data)
}

func TestCreateProductV1(t *testing.T) {
	newForm := func(t *testing.T, fields map[string]string, files ...string) (*bytes.Buffer, string) {
		t.Helper()
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		for k, v := range fields {
			require.NoError(t, mw.WriteField(k, v))
		}
		for _, name := range files {
			part, err := mw.CreateFormFile("files", name)
			require.NoError(t, err)
			_, _ = part.Write([]byte("content"))
		}
		require.NoError(t, mw.Close())
		return body, mw.FormDataContentType()
	}

	t.Run("form is mapped", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in domain.CreateProductInput) bool {
			return in.CategoryID == categoryID &&
				in.Title == "Toyota Camry" &&
				in.Price.Equal(decimal.RequireFromString("15000.50")) &&
				in.IsAIGenerated &&
				in.DynamicFields["brand"] == "Toyota" &&
				in.DynamicFields["year"] == "2018" &&
				len(in.Files) == 2 && in.Files[0].FileName == "a.jpg"
		}), domain.LanguageTajik).Return(domain.Success(domain.ProductDetail{ID: productID}))

		body, contentType := newForm(t, map[string]string{
			"categoryId":          categoryID,
			"title":               "Toyota Camry",
			"price":               "15000.50",
			"isAiGenerated":       "true",
			"dynamicFields":       `{"brand":"Toyota"}`,
			"dynamicFields[year]": "2018",
		}, "a.jpg", "b.mp4")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products?lang=tj", body)
		req.Header.Set("Content-Type", contentType)

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid price", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		body, contentType := newForm(t, map[string]string{"categoryId": categoryID, "title": "x", "price": "cheap"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
		req.Header.Set("Content-Type", contentType)

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid price: cheap")
		svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not multipart", func(t *testing.T) {
		// Arrange
		svc := product.NewMockProductService()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		// Act
		newRouter(svc).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "multipart/form-data")
	})
}
