package handlers

import (
	"net/http"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/metrics"
	"go.uber.org/zap"
)

// AuthHandler регистрирует и аутентифицирует операторов
type AuthHandler struct {
	responder
	authService domain.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService domain.AuthService, m *metrics.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		responder:   responder{logger: logger, metrics: m},
		authService: authService,
	}
}

type authRequest struct {
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		h.fail(w, r, err, "register")
		return
	}

	h.token(w, token)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.fail(w, r, err, "login")
		return
	}

	h.token(w, token)
}

func (h *AuthHandler) token(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	h.json(w, http.StatusOK, tokenResponse{Token: token})
}
