package cms

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
	return NewClient(srv.URL, "test-token", 5*time.Second, nopLogger{})
}

func TestClient_CreateExpressLead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req ExpressLeadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9876543210", req.MobileNumber)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":42}}`))
	})

	id, err := client.CreateExpressLead(context.Background(), &ExpressLeadRequest{
		MobileNumber: "9876543210",
		ServiceType:  "express",
		CarBrand:     "Maruti Suzuki",
		CarModel:     "Swift",
		FuelType:     "Petrol",
		ServicePrice: 2499,
		FinalPrice:   1999,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestClient_UpdateExpressLead_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.UpdateExpressLead(context.Background(), 42, &ExpressLeadUpdateRequest{
		TimeSlot:    "09:00 AM - 11:00 AM",
		ServiceDate: "2026-09-05",
	})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestClient_ValidateCoupon_Valid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"valid":true,"coupon":{"code":"SAVE500","discountType":"fixed","discountAmount":500}}`))
	})

	terms, err := client.ValidateCoupon(context.Background(), "SAVE500", 2000)

	require.NoError(t, err)
	assert.Equal(t, "SAVE500", terms.Code)
	assert.Equal(t, 500.0, terms.Amount())
}

func TestClient_ValidateCoupon_RejectedReasons(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string error", body: `{"valid":false,"error":"coupon has expired"}`, want: "coupon has expired"},
		{name: "message object", body: `{"valid":false,"error":{"message":"minimum order is 1000"}}`, want: "minimum order is 1000"},
		{name: "error object", body: `{"valid":false,"error":{"error":"usage limit reached"}}`, want: "usage limit reached"},
		{name: "no reason", body: `{"valid":false}`, want: "coupon is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ValidateCoupon(context.Background(), "X", 2000)

			require.ErrorIs(t, err, ErrCouponRejected)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestClient_ValidateCoupon_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ValidateCoupon(context.Background(), "X", 2000)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
