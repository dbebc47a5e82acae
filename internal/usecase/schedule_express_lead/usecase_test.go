package schedule_express_lead

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
)

type fakePricing struct {
	data *domain.PricingData
	err  error
}

func (f *fakePricing) ResolvePricing(domain.Vehicle) (*domain.PricingData, error) {
	return f.data, f.err
}

type fakeSessions struct {
	data map[string]map[string][]byte
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: make(map[string]map[string][]byte)}
}

func (f *fakeSessions) Put(sessionID, key string, value interface{}) error {
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
	raw, ok := f.data[sessionID][key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

type fakeCMS struct {
	createCalls int
	updateCalls int
	leadID      int64
	createErr   error
	updateErr   error
	lastUpdate  *cms.ExpressLeadUpdateRequest
	lastLeadID  int64
}

func (f *fakeCMS) CreateExpressLead(_ context.Context, _ *cms.ExpressLeadRequest) (int64, error) {
	f.createCalls++
	return f.leadID, f.createErr
}

func (f *fakeCMS) UpdateExpressLead(_ context.Context, leadID int64, update *cms.ExpressLeadUpdateRequest) error {
	f.updateCalls++
	f.lastLeadID = leadID
	f.lastUpdate = update
	return f.updateErr
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(sessions *fakeSessions, cmsCli *fakeCMS) *UseCase {
	uc := NewUseCase(
		&fakePricing{data: &domain.PricingData{ExpressServicePrice: 2499, DiscountedExpressPrice: 1999}},
		sessions,
		cmsCli,
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func sessionsWithVehicle(t *testing.T) *fakeSessions {
	t.Helper()
	sessions := newFakeSessions()
	require.NoError(t, sessions.Put("s1", sessionstore.KeySelectedVehicle,
		domain.Vehicle{Manufacturer: "Maruti Suzuki", Model: "Swift", FuelType: "Petrol"}))
	return sessions
}

func TestUseCase_Execute_UpdatesCachedLead(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	require.NoError(t, sessions.Put("s1", sessionstore.KeyExpressLeadID, int64(42)))

	cmsCli := &fakeCMS{}
	uc := newTestUseCase(sessions, cmsCli)

	result, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 2),
		TimeSlot:    "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.LeadID)
	assert.False(t, result.CreatedTransparently)
	assert.Equal(t, 0, cmsCli.createCalls)
	require.Equal(t, 1, cmsCli.updateCalls)

	assert.Equal(t, int64(42), cmsCli.lastLeadID)
	assert.Equal(t, "09:00 AM - 11:00 AM", cmsCli.lastUpdate.TimeSlot)
	assert.Equal(t, testNow.AddDate(0, 0, 2).Format(domain.DateFormat), cmsCli.lastUpdate.ServiceDate)
	assert.Equal(t, 2499.0, cmsCli.lastUpdate.ServicePrice)
	assert.Equal(t, 1999.0, cmsCli.lastUpdate.FinalPrice)
}

func TestUseCase_Execute_TransparentCreateWithoutCachedLead(t *testing.T) {
	// Фаза 2 без фазы 1: кешированного лида нет, но номер и автомобиль
	// в сессии есть
	sessions := sessionsWithVehicle(t)
	require.NoError(t, sessions.Put("s1", sessionstore.KeyUserMobile, "9876543210"))

	cmsCli := &fakeCMS{leadID: 88}
	uc := newTestUseCase(sessions, cmsCli)

	result, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "13:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(88), result.LeadID)
	assert.True(t, result.CreatedTransparently)
	assert.Equal(t, 1, cmsCli.createCalls)
	assert.Equal(t, 1, cmsCli.updateCalls)

	// Новый лид закеширован для последующих вызовов
	var cached int64
	require.True(t, sessions.Get("s1", sessionstore.KeyExpressLeadID, &cached))
	assert.Equal(t, int64(88), cached)
}

func TestUseCase_Execute_NoMobileForTransparentCreate(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	cmsCli := &fakeCMS{}
	uc := newTestUseCase(sessions, cmsCli)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "09:00",
	})

	assert.ErrorIs(t, err, ErrNoMobile)
	assert.Equal(t, 0, cmsCli.createCalls)
}

func TestUseCase_Execute_NoVehicle(t *testing.T) {
	uc := newTestUseCase(newFakeSessions(), &fakeCMS{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "09:00",
	})

	assert.ErrorIs(t, err, ErrNoVehicle)
}

func TestUseCase_Execute_InvalidSlot(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	uc := newTestUseCase(sessions, &fakeCMS{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "10:30",
	})

	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	uc := newTestUseCase(sessions, &fakeCMS{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, -1),
		TimeSlot:    "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate, "past date")

	_, err = uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, domain.ExpressAdvanceBookingDays+1),
		TimeSlot:    "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidDate, "beyond booking horizon")
}

func TestUseCase_Execute_LeadVanishedFromCMS(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	require.NoError(t, sessions.Put("s1", sessionstore.KeyExpressLeadID, int64(42)))

	cmsCli := &fakeCMS{updateErr: cms.ErrLeadNotFound}
	uc := newTestUseCase(sessions, cmsCli)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "09:00",
	})

	assert.ErrorIs(t, err, ErrLeadNotFound)

	// Кеш сброшен: следующая попытка пойдет через прозрачное создание
	var cached int64
	sessions.Get("s1", sessionstore.KeyExpressLeadID, &cached)
	assert.Equal(t, int64(0), cached)
}

func TestUseCase_Execute_CouponAppliedToFinalPrice(t *testing.T) {
	sessions := sessionsWithVehicle(t)
	require.NoError(t, sessions.Put("s1", sessionstore.KeyExpressLeadID, int64(42)))
	require.NoError(t, sessions.Put("s1", sessionstore.KeyPendingCoupon,
		domain.AppliedCoupon{Code: "TEST-10OFF", DiscountAmount: 200}))

	cmsCli := &fakeCMS{}
	uc := newTestUseCase(sessions, cmsCli)

	result, err := uc.Execute(context.Background(), &Request{
		SessionID:   "s1",
		ServiceDate: testNow.AddDate(0, 0, 1),
		TimeSlot:    "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 1799.0, result.FinalPrice)
	require.NotNil(t, cmsCli.lastUpdate.CouponCode)
	assert.Equal(t, "TEST-10OFF", *cmsCli.lastUpdate.CouponCode)
}
