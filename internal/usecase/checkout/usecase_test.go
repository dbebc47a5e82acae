package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/payment"
)

type fakeCart struct {
	data domain.CheckoutData
}

func (f *fakeCart) GetCheckoutData(string) domain.CheckoutData {
	return f.data
}

type fakePayments struct {
	calls       int
	order       *payment.Order
	err         error
	lastAmount  int64
	lastReceipt string
}

func (f *fakePayments) Currency() string { return "INR" }

func (f *fakePayments) CreateOrder(_ context.Context, amountMinor int64, receipt string, _ map[string]string) (*payment.Order, error) {
	f.calls++
	f.lastAmount = amountMinor
	f.lastReceipt = receipt
	return f.order, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func checkoutData() domain.CheckoutData {
	return domain.CheckoutData{
		Amount:       1138.0,
		Currency:     domain.Currency,
		ItemCount:    3,
		ServiceCount: 3,
		Items: []domain.CartLine{
			{CartItem: domain.CartItem{ServiceID: "car-wash", Quantity: 1}, LineTotal: 399},
		},
	}
}

func TestUseCase_Execute_CreatesOrder(t *testing.T) {
	payments := &fakePayments{order: &payment.Order{ID: "order_123", Status: "created"}}
	uc := NewUseCase(&fakeCart{data: checkoutData()}, payments, "917300042410", nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, "order_123", result.OrderID)
	assert.Equal(t, 1138.0, result.Amount)
	assert.Equal(t, int64(113800), result.AmountMinor, "amount converted to paise")
	assert.Equal(t, int64(113800), payments.lastAmount)
	assert.Equal(t, "INR", result.Currency)
	assert.True(t, strings.HasPrefix(payments.lastReceipt, "cart_"))
}

func TestUseCase_Execute_EmptyCart(t *testing.T) {
	payments := &fakePayments{order: &payment.Order{ID: "order_123"}}
	uc := NewUseCase(&fakeCart{data: domain.CheckoutData{}}, payments, "917300042410", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, payments.calls)
}

func TestUseCase_Execute_OrderCreateFailed(t *testing.T) {
	payments := &fakePayments{err: errors.New("gateway timeout")}
	uc := NewUseCase(&fakeCart{data: checkoutData()}, payments, "917300042410", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrOrderCreateFailed)
}

func TestUseCase_Execute_WhatsAppLink(t *testing.T) {
	payments := &fakePayments{order: &payment.Order{ID: "order_123"}}
	uc := NewUseCase(&fakeCart{data: checkoutData()}, payments, "917300042410", nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.WhatsAppLink, "https://wa.me/917300042410?text="))

	parsed, err := url.Parse(result.WhatsAppLink)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "order_123")
	assert.Contains(t, text, "1138.00")
}

func TestUseCase_Execute_PaiseRounding(t *testing.T) {
	// 0.1+0.2 и прочие артефакты float не должны давать 1049 вместо 1050
	data := checkoutData()
	data.Amount = 10.499999999999998
	payments := &fakePayments{order: &payment.Order{ID: "o"}}
	uc := NewUseCase(&fakeCart{data: data}, payments, "917300042410", nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1050), result.AmountMinor)
}

func TestUseCase_Execute_MissingSessionID(t *testing.T) {
	uc := NewUseCase(&fakeCart{}, &fakePayments{}, "917300042410", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
