package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза (server-side создание ордеров)
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	currency   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, keyID, keySecret, currency string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Currency возвращает валюту, в которой создаются ордера
func (c *Client) Currency() string {
	return c.currency
}

// CreateOrder создает платежный ордер
// amountMinor - сумма в минорных единицах валюты (пайсы для INR)
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string, notes map[string]string) (*Order, error) {
	if amountMinor <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", ErrInternal, amountMinor)
	}

	payload := &orderRequest{
		Amount:   amountMinor,
		Currency: c.currency,
		Receipt:  receipt,
		Notes:    notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrOrderCreateFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrOrderCreateFailed, resp.StatusCode, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if order.ID == "" {
		return nil, fmt.Errorf("%w: response has no order id", ErrInvalidResponse)
	}

	c.log.Info("Payment order created: id=%s, amount=%d %s", order.ID, order.Amount, order.Currency)
	return &order, nil
}
