package handlers

import (
	"net/http"
	"strconv"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductsHandler обрабатывает запросы к товарам
type ProductsHandler struct {
	responder
	productService domain.ProductService
}

// NewProductsHandler создает новый ProductsHandler
func NewProductsHandler(productService domain.ProductService, m *metrics.Metrics, logger *zap.Logger) *ProductsHandler {
	return &ProductsHandler{
		responder:      responder{logger: logger, metrics: m},
		productService: productService,
	}
}

type productRequest struct {
	Name     string          `json:"name" validate:"required,max=256"`
	SKU      string          `json:"sku" validate:"required,max=64"`
	PriceUsd decimal.Decimal `json:"price_usd"`
}

func (req productRequest) product() *domain.Product {
	return &domain.Product{Name: req.Name, SKU: req.SKU, PriceUsd: req.PriceUsd}
}

func (h *ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}

	product := req.product()
	product.ShopID = shopID

	created, err := h.productService.CreateProduct(r.Context(), product)
	if err != nil {
		h.fail(w, r, err, "create product")
		return
	}

	h.json(w, http.StatusCreated, created)
}

func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.productService.ListProducts(r.Context(), shopID)
	if err != nil {
		h.fail(w, r, err, "list products")
		return
	}

	h.json(w, http.StatusOK, products)
}

// SearchProducts ищет товары по названию или артикулу для подстановки в позиции заказа
func (h *ProductsHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			h.message(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	products, err := h.productService.SearchProducts(r.Context(), shopID, r.URL.Query().Get("q"), limit)
	if err != nil {
		h.fail(w, r, err, "search products")
		return
	}

	h.json(w, http.StatusOK, products)
}

func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "get product")
		return
	}

	h.json(w, http.StatusOK, product)
}

func (h *ProductsHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}

	product := req.product()
	product.ID = id

	updated, err := h.productService.UpdateProduct(r.Context(), product)
	if err != nil {
		h.fail(w, r, err, "update product")
		return
	}

	h.json(w, http.StatusOK, updated)
}

func (h *ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "productID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, r, err, "delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
