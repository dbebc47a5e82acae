package cart

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// fakeSessions хранит значения как JSON, повторяя поведение реального
// сессионного хранилища
type fakeSessions struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: make(map[string]map[string][]byte)}
}

func (f *fakeSessions) Put(sessionID, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.data[sessionID] == nil {
		f.data[sessionID] = make(map[string][]byte)
	}
	f.data[sessionID][key] = raw
	return nil
}

func (f *fakeSessions) Get(sessionID, key string, dest interface{}) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.data[sessionID][key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (f *fakeSessions) Delete(sessionID, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data[sessionID], key)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(newFakeSessions(), nil, nil, nopLogger{})
}

func TestService_AddItem_NewService(t *testing.T) {
	svc := newTestService()

	line, err := svc.AddItem(context.Background(), "s1", "car-wash", 1)

	require.NoError(t, err)
	assert.Equal(t, "car-wash", line.ServiceID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 399.0, line.LineTotal)
	assert.Equal(t, 1, svc.GetItemQuantity("s1", "car-wash"))
}

func TestService_AddItem_IncrementsQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Три добавления по одному эквивалентны одному добавлению трех
	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, "s1", "car-wash", 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, svc.GetItemQuantity("s1", "car-wash"))

	_, err := svc.AddItem(ctx, "s2", "car-wash", 3)
	require.NoError(t, err)
	assert.Equal(t, svc.GetItemQuantity("s2", "car-wash"), svc.GetItemQuantity("s1", "car-wash"))
}

func TestService_AddItem_UnknownService(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", "no-such-service", 1)

	assert.ErrorIs(t, err, ErrUnknownService)
	assert.True(t, svc.GetCartSummary("s1").IsEmpty)
}

func TestService_AddItem_InvalidQuantity(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", "car-wash", 0)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_RemoveItem_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "car-wash", 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "s1", "car-wash"))
	assert.Equal(t, 0, svc.GetItemQuantity("s1", "car-wash"))

	// Повторное удаление и удаление из пустой корзины - no-op
	require.NoError(t, svc.RemoveItem(ctx, "s1", "car-wash"))
	require.NoError(t, svc.RemoveItem(ctx, "s2", "car-wash"))
}

func TestService_RemoveItem_AbsentDoesNotNotify(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	calls := 0
	svc.AddListener(func(string, domain.CartSummary) { calls++ })

	require.NoError(t, svc.RemoveItem(ctx, "s1", "car-wash"))
	assert.Equal(t, 0, calls, "no-op removal must not notify listeners")
}

func TestService_UpdateQuantity_SetsDirectly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "car-wash", 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "car-wash", 5))
	assert.Equal(t, 5, svc.GetItemQuantity("s1", "car-wash"))
}

func TestService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "car-wash", 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "car-wash", 0))
	assert.Equal(t, 0, svc.GetItemQuantity("s1", "car-wash"))

	require.NoError(t, svc.UpdateQuantity(ctx, "s1", "battery-jumpstart", -3))
	assert.Equal(t, 0, svc.GetItemQuantity("s1", "battery-jumpstart"))
}

func TestService_UpdateQuantity_CreatesWhenAbsent(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.UpdateQuantity(context.Background(), "s1", "car-wash", 4))
	assert.Equal(t, 4, svc.GetItemQuantity("s1", "car-wash"))
}

func TestService_Listener_ExactlyOncePerMutation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	var got []domain.CartSummary
	svc.AddListener(func(_ string, summary domain.CartSummary) {
		got = append(got, summary)
	})

	_, err := svc.AddItem(ctx, "s1", "car-wash", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", "battery-jumpstart", 1)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveItem(ctx, "s1", "car-wash"))

	require.Len(t, got, 3)
	// Слушатель видит состояние после мутации
	assert.Equal(t, 1, got[0].ServiceCount)
	assert.Equal(t, 2, got[1].ServiceCount)
	assert.Equal(t, 1, got[2].ServiceCount)
}

func TestService_RemoveListener(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	calls := 0
	id := svc.AddListener(func(string, domain.CartSummary) { calls++ })

	_, err := svc.AddItem(ctx, "s1", "car-wash", 1)
	require.NoError(t, err)

	svc.RemoveListener(id)

	_, err = svc.AddItem(ctx, "s1", "car-wash", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestService_GetCartSummary_BulkDiscount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, id := range []string{"car-wash", "battery-jumpstart", "ac-checkup"} {
		_, err := svc.AddItem(ctx, "s1", id, 1)
		require.NoError(t, err)
	}

	summary := svc.GetCartSummary("s1")

	assert.Equal(t, 1197.0, summary.Subtotal)
	assert.Equal(t, 59.0, summary.Discount)
	assert.Equal(t, 1138.0, summary.Total)
}

func TestService_ClearCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "car-wash", 2)
	require.NoError(t, err)

	calls := 0
	svc.AddListener(func(string, domain.CartSummary) { calls++ })

	require.NoError(t, svc.ClearCart(ctx, "s1"))

	assert.True(t, svc.GetCartSummary("s1").IsEmpty)
	assert.Equal(t, 1, calls, "clear is a mutation and notifies once")
}

func TestService_GetCheckoutData(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "deep-cleaning", 1)
	require.NoError(t, err)

	data := svc.GetCheckoutData("s1")

	assert.Equal(t, 1999.0, data.Amount)
	assert.Equal(t, domain.Currency, data.Currency)
	assert.Len(t, data.Items, 1)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "car-wash", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, svc.GetItemQuantity("s2", "car-wash"))
	assert.True(t, svc.GetCartSummary("s2").IsEmpty)
}
