package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/avc/printshop-dashboard/internal/service"
	"go.uber.org/zap"
)

// errorResponse тело ответа с ошибкой
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// responder пишет JSON-ответы и переводит ошибки сервисов в HTTP-статусы
type responder struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func (rs responder) json(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (rs responder) message(w http.ResponseWriter, status int, msg string) {
	rs.json(w, status, errorResponse{Error: msg})
}

// fail отвечает на ошибку сервиса. Неизвестные ошибки логируются и отдаются как 500.
func (rs responder) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	// Испорченные данные в базе не ошибка клиента
	if errors.Is(err, domain.ErrCorruptOrder) {
		rs.internal(w, r, err, op)
		return
	}

	var vErr *rollup.ValidationError
	if errors.As(err, &vErr) {
		rs.metrics.ObserveRollupError(err)
		rs.json(w, http.StatusUnprocessableEntity, vErr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrShopNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		rs.message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrShopExists),
		errors.Is(err, domain.ErrProductExists),
		errors.Is(err, domain.ErrOrderExists):
		rs.message(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidStatus):
		rs.message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		rs.message(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrRegistrationClosed):
		rs.message(w, http.StatusForbidden, err.Error())
	default:
		rs.internal(w, r, err, op)
	}
}

// audit пишет в лог изменение данных вместе с оператором, который его сделал
func (rs responder) audit(r *http.Request, msg string, fields ...zap.Field) {
	userID, _ := GetUserID(r.Context())
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	rs.logger.Info(msg, append([]zap.Field{
		zap.Int64("user_id", userID),
		zap.String("request_id", requestID),
	}, fields...)...)
}

func (rs responder) internal(w http.ResponseWriter, r *http.Request, err error, op string) {
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	rs.logger.Error("failed to "+op,
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	rs.message(w, http.StatusInternalServerError, "Internal Server Error")
}
