package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/printshop-dashboard/internal/domain"
)

// HTTPRatesClient реализует domain.RatesClient
type HTTPRatesClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRatesClient создает новый клиент сервиса курсов
func NewRatesClient(baseURL string) *HTTPRatesClient {
	return &HTTPRatesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetRate получает текущий курс пары. Для неизвестной пары возвращает nil.
func (c *HTTPRatesClient) GetRate(ctx context.Context, base, quote string) (*domain.RateResponse, error) {
	endpoint := fmt.Sprintf("%s/api/rates/%s/%s", c.baseURL,
		url.PathEscape(strings.ToUpper(base)), url.PathEscape(strings.ToUpper(quote)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("rates client: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var rate domain.RateResponse
		if err := json.NewDecoder(resp.Body).Decode(&rate); err != nil {
			return nil, fmt.Errorf("rates client: failed to decode response: %w", err)
		}
		if !rate.Rate.IsPositive() {
			return nil, fmt.Errorf("rates client: non-positive rate %s for %s/%s", rate.Rate, base, quote)
		}
		return &rate, nil

	case http.StatusNoContent:
		// Пара не поддерживается сервисом
		return nil, nil

	case http.StatusTooManyRequests:
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		return nil, fmt.Errorf("rates client: unexpected status code: %d", resp.StatusCode)
	}
}
