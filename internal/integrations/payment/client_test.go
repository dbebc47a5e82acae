package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "rzp_test_key", "rzp_test_secret", "INR", 5*time.Second, nopLogger{})
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var req orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(113800), req.Amount)
		assert.Equal(t, "INR", req.Currency)
		assert.Equal(t, "cart_abc", req.Receipt)
		assert.Equal(t, "doorstep_cart", req.Notes["source"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"order_123","amount":113800,"currency":"INR","receipt":"cart_abc","status":"created"}`))
	})

	order, err := client.CreateOrder(context.Background(), 113800, "cart_abc", map[string]string{"source": "doorstep_cart"})

	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, int64(113800), order.Amount)
	assert.Equal(t, "created", order.Status)
}

func TestClient_CreateOrder_NonPositiveAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the gateway")
	})

	_, err := client.CreateOrder(context.Background(), 0, "cart_abc", nil)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_CreateOrder_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"amount exceeds maximum"}}`))
	})

	_, err := client.CreateOrder(context.Background(), 100, "cart_abc", nil)

	require.ErrorIs(t, err, ErrOrderCreateFailed)
	assert.Contains(t, err.Error(), "amount exceeds maximum")
}

func TestClient_CreateOrder_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.CreateOrder(context.Background(), 100, "cart_abc", nil)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CreateOrder_MissingOrderID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"created"}`))
	})

	_, err := client.CreateOrder(context.Background(), 100, "cart_abc", nil)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Currency(t *testing.T) {
	client := NewClient("http://localhost", "k", "s", "INR", time.Second, nopLogger{})
	assert.Equal(t, "INR", client.Currency())
}
