package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/printshop-dashboard/internal/domain"
	domainmocks "github.com/avc/printshop-dashboard/internal/domain/mocks"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"github.com/avc/printshop-dashboard/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, testMetrics(), logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password1").Return("token", nil).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))

		var resp tokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "token", resp.Token)
	})

	t.Run("User exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password1").Return("", domain.ErrUserExists).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Registration closed", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "stranger", "password1").Return("", domain.ErrRegistrationClosed).Once()

		body := `{"login":"stranger","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Authorization"))
	})

	t.Run("Password too short", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "x").
			Return("", errors.Join(service.ErrInvalidInput, errors.New("password is too short"))).Once()

		body := `{"login":"user","password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing login", func(t *testing.T) {
		body := `{"password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"login": "is required"}, decodeError(t, w).Fields)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"login":}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, testMetrics(), logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "password1").Return("token", nil).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		body := `{"login":"user","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "password1").Return("", errors.New("db down")).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeError(t, w).Error)
	})
}

func TestShopsHandler(t *testing.T) {
	mockService := domainmocks.NewShopServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewShopsHandler(mockService, testMetrics(), logger)

	t.Run("Create success", func(t *testing.T) {
		mockService.EXPECT().CreateShop(mock.Anything, &domain.Shop{Name: "Mugs", Platform: "etsy"}).
			Return(&domain.Shop{ID: 1, Name: "Mugs", Platform: "etsy"}, nil).Once()

		body := `{"name":"Mugs","platform":"etsy"}`
		req := httptest.NewRequest(http.MethodPost, "/api/shops", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreateShop(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		var shop domain.Shop
		require.NoError(t, json.NewDecoder(w.Body).Decode(&shop))
		assert.Equal(t, int64(1), shop.ID)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		mockService.EXPECT().CreateShop(mock.Anything, mock.Anything).Return(nil, domain.ErrShopExists).Once()

		body := `{"name":"Mugs","platform":"etsy"}`
		req := httptest.NewRequest(http.MethodPost, "/api/shops", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreateShop(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Create missing platform", func(t *testing.T) {
		body := `{"name":"Mugs"}`
		req := httptest.NewRequest(http.MethodPost, "/api/shops", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CreateShop(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"platform": "is required"}, decodeError(t, w).Fields)
	})

	t.Run("List", func(t *testing.T) {
		mockService.EXPECT().ListShops(mock.Anything).Return([]*domain.Shop{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
		w := httptest.NewRecorder()

		handler.ListShops(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Get not found", func(t *testing.T) {
		mockService.EXPECT().GetShop(mock.Anything, int64(7)).Return(nil, domain.ErrShopNotFound).Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/shops/7", nil), "shopID", "7")
		w := httptest.NewRecorder()

		handler.GetShop(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Get invalid id", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/shops/abc", nil), "shopID", "abc")
		w := httptest.NewRecorder()

		handler.GetShop(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		mockService.EXPECT().UpdateShop(mock.Anything, &domain.Shop{ID: 3, Name: "Tees", Platform: "amazon"}).
			Return(&domain.Shop{ID: 3, Name: "Tees", Platform: "amazon"}, nil).Once()

		body := `{"name":"Tees","platform":"amazon"}`
		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/shops/3", bytes.NewBufferString(body)), "shopID", "3")
		w := httptest.NewRecorder()

		handler.UpdateShop(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteShop(mock.Anything, int64(3)).Return(nil).Once()

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/shops/3", nil), "shopID", "3")
		w := httptest.NewRecorder()

		handler.DeleteShop(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestProductsHandler(t *testing.T) {
	mockService := domainmocks.NewProductServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewProductsHandler(mockService, testMetrics(), logger)

	t.Run("Create success", func(t *testing.T) {
		mockService.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ShopID == 2 && p.SKU == "mug-11" && p.PriceUsd.Equal(decimal.RequireFromString("12.5"))
		})).Return(&domain.Product{ID: 9, ShopID: 2, SKU: "MUG-11"}, nil).Once()

		body := `{"name":"Mug 11oz","sku":"mug-11","price_usd":"12.5"}`
		req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/shops/2/products", bytes.NewBufferString(body)), "shopID", "2")
		w := httptest.NewRecorder()

		handler.CreateProduct(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Create duplicate sku", func(t *testing.T) {
		mockService.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, domain.ErrProductExists).Once()

		body := `{"name":"Mug 11oz","sku":"mug-11","price_usd":"12.5"}`
		req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/shops/2/products", bytes.NewBufferString(body)), "shopID", "2")
		w := httptest.NewRecorder()

		handler.CreateProduct(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Search", func(t *testing.T) {
		mockService.EXPECT().SearchProducts(mock.Anything, int64(2), "mug", 5).
			Return([]*domain.Product{{ID: 9, Name: "Mug 11oz"}}, nil).Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/shops/2/products/search?q=mug&limit=5", nil), "shopID", "2")
		w := httptest.NewRecorder()

		handler.SearchProducts(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var products []domain.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 1)
		assert.Equal(t, "Mug 11oz", products[0].Name)
	})

	t.Run("Search invalid limit", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/shops/2/products/search?q=mug&limit=x", nil), "shopID", "2")
		w := httptest.NewRecorder()

		handler.SearchProducts(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Search empty query", func(t *testing.T) {
		mockService.EXPECT().SearchProducts(mock.Anything, int64(2), "", 0).
			Return(nil, errors.Join(service.ErrInvalidInput, errors.New("empty query"))).Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/shops/2/products/search", nil), "shopID", "2")
		w := httptest.NewRecorder()

		handler.SearchProducts(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Get not found", func(t *testing.T) {
		mockService.EXPECT().GetProduct(mock.Anything, int64(9)).Return(nil, domain.ErrProductNotFound).Once()

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/products/9", nil), "productID", "9")
		w := httptest.NewRecorder()

		handler.GetProduct(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteProduct(mock.Anything, int64(9)).Return(nil).Once()

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/products/9", nil), "productID", "9")
		w := httptest.NewRecorder()

		handler.DeleteProduct(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
