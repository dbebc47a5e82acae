package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCartSummary_Empty(t *testing.T) {
	summary := ComputeCartSummary(nil)

	assert.True(t, summary.IsEmpty)
	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, 0, summary.ServiceCount)
	assert.Equal(t, 0.0, summary.Total)
	assert.Empty(t, summary.Items)
}

func TestComputeCartSummary_BelowDiscountThreshold(t *testing.T) {
	items := []CartItem{
		{ServiceID: "car-wash", Quantity: 2},
		{ServiceID: "battery-jumpstart", Quantity: 1},
	}

	summary := ComputeCartSummary(items)

	require.Equal(t, 2, summary.ServiceCount)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 399.0*2+299.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Discount, "discount requires %d distinct services", BulkDiscountMinServices)
	assert.Equal(t, summary.Subtotal, summary.Total)
}

func TestComputeCartSummary_BulkDiscountAtThreshold(t *testing.T) {
	items := []CartItem{
		{ServiceID: "car-wash", Quantity: 1},          // 399
		{ServiceID: "battery-jumpstart", Quantity: 1}, // 299
		{ServiceID: "ac-checkup", Quantity: 1},        // 499
	}

	summary := ComputeCartSummary(items)

	require.Equal(t, 3, summary.ServiceCount)
	assert.Equal(t, 1197.0, summary.Subtotal)
	// floor(1197 * 0.05) = 59
	assert.Equal(t, 59.0, summary.Discount)
	assert.Equal(t, 1138.0, summary.Total)
	assert.False(t, summary.IsEmpty)
}

func TestComputeCartSummary_DiscountUsesDistinctServices(t *testing.T) {
	// Три единицы одной услуги не дают скидку
	items := []CartItem{{ServiceID: "car-wash", Quantity: 3}}

	summary := ComputeCartSummary(items)

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 1, summary.ServiceCount)
	assert.Equal(t, 0.0, summary.Discount)
}

func TestComputeCartSummary_SkipsUnknownServices(t *testing.T) {
	items := []CartItem{
		{ServiceID: "car-wash", Quantity: 1},
		{ServiceID: "retired-service", Quantity: 5},
	}

	summary := ComputeCartSummary(items)

	assert.Equal(t, 1, summary.ServiceCount)
	assert.Equal(t, 399.0, summary.Subtotal)
	assert.Len(t, summary.Items, 1)
}

func TestComputeCartSummary_LineTotals(t *testing.T) {
	items := []CartItem{{ServiceID: "deep-cleaning", Quantity: 2}}

	summary := ComputeCartSummary(items)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 1999.0*2, summary.Items[0].LineTotal)
	assert.Equal(t, "Interior Deep Cleaning", summary.Items[0].Service.Name)
}

func TestFindDoorstepService(t *testing.T) {
	service, ok := FindDoorstepService("car-wash")
	require.True(t, ok)
	assert.Equal(t, 399.0, service.Price)

	_, ok = FindDoorstepService("unknown")
	assert.False(t, ok)
}
