package cms

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

// Client клиент для работы со Strapi CMS (лиды и купоны)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CMS
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateExpressLead создает экспресс-лид и возвращает его идентификатор
func (c *Client) CreateExpressLead(ctx context.Context, lead *ExpressLeadRequest) (int64, error) {
	url := fmt.Sprintf("%s/api/express-service-leads", c.baseURL)

	resp, err := c.doJSON(ctx, http.MethodPost, url, lead)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created expressLeadResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if created.Data.ID == 0 {
		return 0, fmt.Errorf("%w: response has no lead id", ErrInvalidResponse)
	}

	c.log.Info("Express lead created: id=%d, mobile=%s", created.Data.ID, lead.MobileNumber)
	return created.Data.ID, nil
}

// UpdateExpressLead обновляет лид расписанием и финальной ценой
func (c *Client) UpdateExpressLead(ctx context.Context, leadID int64, update *ExpressLeadUpdateRequest) error {
	url := fmt.Sprintf("%s/api/express-service-leads/%d", c.baseURL, leadID)

	resp, err := c.doJSON(ctx, http.MethodPatch, url, update)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("Express lead updated: id=%d, slot=%s", leadID, update.TimeSlot)
		return nil
	case http.StatusNotFound:
		return ErrLeadNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// ValidateCoupon валидирует купон для указанной суммы
// При отказе возвращает ErrCouponRejected с человекочитаемой причиной,
// извлеченной из любой из конвенций формата ошибки CMS
func (c *Client) ValidateCoupon(ctx context.Context, code string, amount float64) (*CouponTerms, error) {
	url := fmt.Sprintf("%s/api/coupons/validate", c.baseURL)

	resp, err := c.doJSON(ctx, http.MethodPost, url, &couponValidateRequest{Code: code, Amount: amount})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity:
		// Тело содержит результат валидации в любом из этих случаев
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result couponValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Valid || result.Coupon == nil {
		reason := extractErrorMessage(result.Error)
		c.log.Warn("Coupon rejected: code=%s, reason=%s", code, reason)
		return nil, fmt.Errorf("%w: %s", ErrCouponRejected, reason)
	}

	c.log.Info("Coupon validated: code=%s, type=%s, discount=%.2f",
		result.Coupon.Code, result.Coupon.DiscountType, result.Coupon.Amount())
	return result.Coupon, nil
}

// doJSON выполняет запрос с JSON телом и bearer-авторизацией
func (c *Client) doJSON(ctx context.Context, method, url string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// extractErrorMessage нормализует причину отказа из нескольких конвенций
// формата ошибки CMS: строка, {"message": "..."} или {"error": "..."}
func extractErrorMessage(raw json.RawMessage) string {
	const fallback = "coupon is not valid"

	if len(raw) == 0 {
		return fallback
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
		return asString
	}

	var asObject struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if asObject.Message != "" {
			return asObject.Message
		}
		if asObject.Error != "" {
			return asObject.Error
		}
	}

	return fallback
}
