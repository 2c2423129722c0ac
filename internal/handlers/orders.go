package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/export"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/avc/printshop-dashboard/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrdersHandler обрабатывает запросы к заказам и их итогам
type OrdersHandler struct {
	responder
	orderService domain.OrderService
	now          func() time.Time
}

// NewOrdersHandler создает новый OrdersHandler
func NewOrdersHandler(orderService domain.OrderService, m *metrics.Metrics, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		responder:    responder{logger: logger, metrics: m},
		orderService: orderService,
		now:          time.Now,
	}
}

type orderItemRequest struct {
	ProductID    *int64          `json:"product_id" validate:"omitempty,gt=0"`
	Name         string          `json:"name" validate:"required,max=256"`
	UnitPriceUsd decimal.Decimal `json:"unit_price_usd"`
	Quantity     int             `json:"quantity" validate:"gt=0"`
}

type orderRequest struct {
	ShopID           int64              `json:"shop_id" validate:"omitempty,gt=0"`
	Number           string             `json:"number" validate:"required,max=64"`
	CustomerName     string             `json:"customer_name" validate:"max=128"`
	Status           domain.OrderStatus `json:"status"`
	Items            []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountRatePct  decimal.Decimal    `json:"discount_rate_pct"`
	BuyerPaidUsd     decimal.Decimal    `json:"buyer_paid_usd"`
	OrderEarningsUsd decimal.Decimal    `json:"order_earnings_usd"`
	ExchangeRate     decimal.Decimal    `json:"exchange_rate"`
	FeeLines         []rollup.FeeLine   `json:"fee_lines"`
	BonusLines       []rollup.BonusLine `json:"bonus_lines"`
	Note             string             `json:"note" validate:"max=2000"`
	OrderedAt        *time.Time         `json:"ordered_at"`
}

// previewRequest отличает отсутствующий курс от явно переданного нуля
type previewRequest struct {
	ItemTotalUsd          decimal.Decimal    `json:"item_total_usd"`
	DiscountRatePct       decimal.Decimal    `json:"discount_rate_pct"`
	BuyerPaidUsd          decimal.Decimal    `json:"buyer_paid_usd"`
	OrderEarningsUsd      decimal.Decimal    `json:"order_earnings_usd"`
	ExchangeRateVndPerUsd *decimal.Decimal   `json:"exchange_rate_vnd_per_usd"`
	FeeLines              []rollup.FeeLine   `json:"fee_lines"`
	BonusLines            []rollup.BonusLine `json:"bonus_lines"`
}

func (req previewRequest) financials() (rollup.OrderFinancials, bool) {
	f := rollup.OrderFinancials{
		ItemTotalUsd:     req.ItemTotalUsd,
		DiscountRatePct:  req.DiscountRatePct,
		BuyerPaidUsd:     req.BuyerPaidUsd,
		OrderEarningsUsd: req.OrderEarningsUsd,
		FeeLines:         req.FeeLines,
		BonusLines:       req.BonusLines,
	}
	if req.ExchangeRateVndPerUsd == nil {
		return f, true
	}
	f.ExchangeRateVndPerUsd = *req.ExchangeRateVndPerUsd
	return f, false
}

func (req orderRequest) order() *domain.Order {
	order := &domain.Order{
		ShopID:           req.ShopID,
		Number:           req.Number,
		CustomerName:     req.CustomerName,
		Status:           req.Status,
		Items:            make([]domain.OrderItem, 0, len(req.Items)),
		DiscountRatePct:  req.DiscountRatePct,
		BuyerPaidUsd:     req.BuyerPaidUsd,
		OrderEarningsUsd: req.OrderEarningsUsd,
		ExchangeRate:     req.ExchangeRate,
		FeeLines:         req.FeeLines,
		BonusLines:       req.BonusLines,
		Note:             req.Note,
	}
	if req.OrderedAt != nil {
		order.OrderedAt = *req.OrderedAt
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			UnitPriceUsd: item.UnitPriceUsd,
			Quantity:     item.Quantity,
		})
	}
	return order
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.orderService.CreateOrder(r.Context(), req.order())
	if err != nil {
		h.fail(w, r, err, "create order")
		return
	}

	h.audit(r, "order created", zap.Int64("order_id", view.ID), zap.Int64("shop_id", view.ShopID))
	h.json(w, http.StatusCreated, view)
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := orderFilter(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err, "list orders")
		return
	}

	h.json(w, http.StatusOK, views)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "orderID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "get order")
		return
	}

	h.json(w, http.StatusOK, view)
}

func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "orderID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	var req orderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order := req.order()
	order.ID = id

	view, err := h.orderService.UpdateOrder(r.Context(), order)
	if err != nil {
		h.fail(w, r, err, "update order")
		return
	}

	h.audit(r, "order updated", zap.Int64("order_id", id))
	h.json(w, http.StatusOK, view)
}

func (h *OrdersHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "orderID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		h.fail(w, r, err, "update order status")
		return
	}

	h.audit(r, "order status changed", zap.Int64("order_id", id), zap.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "orderID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		h.fail(w, r, err, "delete order")
		return
	}

	h.audit(r, "order deleted", zap.Int64("order_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// PreviewRollup считает итоги формы редактирования без сохранения заказа.
// Без курса в теле используется последний сохраненный.
func (h *OrdersHandler) PreviewRollup(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !h.decode(w, r, &req) {
		return
	}

	financials, useLatestRate := req.financials()
	res, err := h.orderService.PreviewRollup(r.Context(), financials, useLatestRate)
	if err != nil {
		h.fail(w, r, err, "preview rollup")
		return
	}

	h.json(w, http.StatusOK, res)
}

// ShopSummary возвращает итоги магазина за период
func (h *OrdersHandler) ShopSummary(w http.ResponseWriter, r *http.Request) {
	shopID, err := idParam(r, "shopID")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	from, err := timeQuery(r, "from")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := timeQuery(r, "to")
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.orderService.ShopSummary(r.Context(), shopID, from, to)
	if err != nil {
		h.fail(w, r, err, "get shop summary")
		return
	}

	h.json(w, http.StatusOK, summary)
}

// ExportOrders выгружает заказы по фильтру в книгу Excel
func (h *OrdersHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := orderFilter(r)
	if err != nil {
		h.message(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err, "list orders for export")
		return
	}

	book, err := export.OrdersWorkbook(views, service.Totals(views))
	if err != nil {
		h.fail(w, r, err, "build orders workbook")
		return
	}
	defer book.Close()

	filename := fmt.Sprintf("orders-%s.xlsx", h.now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := book.WriteTo(w); err != nil {
		h.logger.Error("failed to write orders workbook", zap.Error(err))
	}
}

func orderFilter(r *http.Request) (domain.OrderFilter, error) {
	var filter domain.OrderFilter

	shopID, err := int64Query(r, "shop_id")
	if err != nil {
		return filter, err
	}
	filter.ShopID = shopID

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		filter.Status = &status
	}

	if filter.From, err = timeQuery(r, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = timeQuery(r, "to"); err != nil {
		return filter, err
	}
	return filter, nil
}
