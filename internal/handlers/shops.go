package handlers

import (
	"net/http"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"go.uber.org/zap"
)

// ShopsHandler обрабатывает запросы к магазинам
type ShopsHandler struct {
	responder
	shopService domain.ShopService
}

// NewShopsHandler создает новый ShopsHandler
func NewShopsHandler(shopService domain.ShopService, m *metrics.Metrics, logger *zap.Logger) *ShopsHandler {
	return &ShopsHandler{
		responder:   responder{logger: logger, metrics: m},
		shopService: shopService,
	}
}

type shopRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,max=64"`
}

func (req shopRequest) shop() *domain.Shop {
	return &domain.Shop{Name: req.Name, Platform: req.Platform}
}

func (h *ShopsHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req shopRequest
	if !h.decode(w, r, &req) {
		return
	}

	shop, err := h.shopService.CreateShop(r.Context(), req.shop())
	if err != nil {
		h.fail(w, r, err, "create shop")
		return
	}

	h.audit(r, "shop created", zap.Int64("shop_id", shop.ID))
	h.json(w, http.StatusCreated, shop)
}

func (h *ShopsHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopService.ListShops(r.Context())
	if err != nil {
		h.fail(w, r, err, "list shops")
		return
	}

	h.json(w, http.StatusOK, shops)
}

func (h *ShopsHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	shop, err := h.shopService.GetShop(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "get shop")
		return
	}

	h.json(w, http.StatusOK, shop)
}

func (h *ShopsHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	var req shopRequest
	if !h.decode(w, r, &req) {
		return
	}

	shop := req.shop()
	shop.ID = id

	updated, err := h.shopService.UpdateShop(r.Context(), shop)
	if err != nil {
		h.fail(w, r, err, "update shop")
		return
	}

	h.audit(r, "shop updated", zap.Int64("shop_id", id))
	h.json(w, http.StatusOK, updated)
}

func (h *ShopsHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.shopService.DeleteShop(r.Context(), id); err != nil {
		h.fail(w, r, err, "delete shop")
		return
	}

	h.audit(r, "shop deleted", zap.Int64("shop_id", id))
	w.WriteHeader(http.StatusNoContent)
}
