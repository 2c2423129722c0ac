package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/rollup"
)

// ErrInvalidInput входные данные не прошли проверку
var ErrInvalidInput = errors.New("invalid input")

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// invalidInput оборачивает ErrInvalidInput описанием причины
func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// passthrough сообщает, что ошибку нужно вернуть без обертки
func passthrough(err error) bool {
	var vErr *rollup.ValidationError
	if errors.As(err, &vErr) {
		return true
	}
	for _, sentinel := range []error{
		ErrInvalidInput,
		domain.ErrUserExists,
		domain.ErrShopExists,
		domain.ErrShopNotFound,
		domain.ErrProductExists,
		domain.ErrProductNotFound,
		domain.ErrOrderExists,
		domain.ErrOrderNotFound,
		domain.ErrInvalidStatus,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
