package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

type fakeLoader struct {
	rows []domain.PricingRow
}

func (l *fakeLoader) LoadOrEmpty(_ context.Context) []domain.PricingRow {
	return l.rows
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRows() []domain.PricingRow {
	return []domain.PricingRow{
		{FuelType: "Petrol", Brand: "Maruti Suzuki", Model: "Swift", ExpressServicePrice: 2499, DiscountedExpressPrice: 2000},
		{FuelType: "Diesel", Brand: "Maruti Suzuki", Model: "Swift", ExpressServicePrice: 2999, DiscountedExpressPrice: 2499},
		{FuelType: "CNG", Brand: "Maruti Suzuki", Model: "Swift"}, // без пригодной цены
		{FuelType: "Petrol", Brand: "Honda", Model: "City", ExpressServicePrice: 2799},
		{FuelType: "Petrol", Brand: "Maruti Suzuki", Model: "Baleno", PeriodicServicePrice: 3999},
		// Дубль по ключам с другой ценой: выигрывать должна первая строка
		{FuelType: "Petrol", Brand: "Maruti Suzuki", Model: "Swift", ExpressServicePrice: 9999},
	}
}

func newTestService(t *testing.T, rows []domain.PricingRow) *Service {
	t.Helper()
	svc := NewService(&fakeLoader{rows: rows}, nopLogger{})
	svc.Refresh(context.Background())
	return svc
}

func TestService_ListManufacturers(t *testing.T) {
	svc := newTestService(t, testRows())

	manufacturers := svc.ListManufacturers()

	assert.Equal(t, []string{"Honda", "Maruti Suzuki"}, manufacturers)
}

func TestService_ListManufacturers_Empty(t *testing.T) {
	svc := newTestService(t, nil)

	assert.Empty(t, svc.ListManufacturers())
}

func TestService_ListModels(t *testing.T) {
	svc := newTestService(t, testRows())

	assert.Equal(t, []string{"Baleno", "Swift"}, svc.ListModels("Maruti Suzuki"))
	assert.Empty(t, svc.ListModels("Tata"))
}

func TestService_ListFuelTypes_FiltersUnusableRows(t *testing.T) {
	svc := newTestService(t, testRows())

	fuelTypes := svc.ListFuelTypes("Maruti Suzuki", "Swift")

	// CNG-строка без единой положительной цены не предлагается
	assert.Equal(t, []string{"Diesel", "Petrol"}, fuelTypes)
}

func TestService_ResolvePricing_CaseInsensitive(t *testing.T) {
	svc := newTestService(t, testRows())

	data, err := svc.ResolvePricing(domain.Vehicle{
		Manufacturer: "maruti suzuki",
		Model:        "SWIFT",
		FuelType:     "petrol",
	})

	require.NoError(t, err)
	assert.Equal(t, 2499.0, data.ExpressServicePrice)
	assert.Equal(t, 2000.0, data.DiscountedExpressPrice)
}

func TestService_ResolvePricing_FirstMatchWins(t *testing.T) {
	svc := newTestService(t, testRows())

	data, err := svc.ResolvePricing(domain.Vehicle{
		Manufacturer: "Maruti Suzuki",
		Model:        "Swift",
		FuelType:     "Petrol",
	})

	require.NoError(t, err)
	// Дубль с ценой 9999 стоит ниже в прайс-листе и игнорируется
	assert.Equal(t, 2499.0, data.ExpressServicePrice)
}

func TestService_ResolvePricing_NoMatch(t *testing.T) {
	svc := newTestService(t, testRows())

	_, err := svc.ResolvePricing(domain.Vehicle{
		Manufacturer: "Tata",
		Model:        "Nexon",
		FuelType:     "Petrol",
	})

	assert.ErrorIs(t, err, ErrNoPricingMatch)
}

func TestService_ResolvePricing_IncompleteVehicle(t *testing.T) {
	svc := newTestService(t, testRows())

	_, err := svc.ResolvePricing(domain.Vehicle{Manufacturer: "Honda"})

	assert.ErrorIs(t, err, ErrIncompleteVehicle)
}

func TestService_Refresh_KeepsOldRowsOnEmptyLoad(t *testing.T) {
	loader := &fakeLoader{rows: testRows()}
	svc := NewService(loader, nopLogger{})

	require.Equal(t, len(testRows()), svc.Refresh(context.Background()))

	// Сбой загрузки деградирует до пустого списка, старые данные остаются
	loader.rows = nil
	assert.Equal(t, len(testRows()), svc.Refresh(context.Background()))
	assert.NotEmpty(t, svc.ListManufacturers())
}

func TestService_Refresh_ReplacesRows(t *testing.T) {
	loader := &fakeLoader{rows: testRows()}
	svc := NewService(loader, nopLogger{})
	svc.Refresh(context.Background())

	loader.rows = []domain.PricingRow{
		{FuelType: "Electric", Brand: "Tata", Model: "Nexon EV", ExpressServicePrice: 1999},
	}

	assert.Equal(t, 1, svc.Refresh(context.Background()))
	assert.Equal(t, []string{"Tata"}, svc.ListManufacturers())
}
