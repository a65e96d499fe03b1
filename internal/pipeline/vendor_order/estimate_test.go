package vendor_order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func TestEstimateTimeOfDay(t *testing.T) {
	items := []domain.ItemRecommendation{
		{VendorName: "Acme", AveragePerDay: 6},
		{VendorName: "Acme", AveragePerDay: 4},
		{VendorName: "Beta", AveragePerDay: 2},
	}

	est := EstimateTimeOfDay(items, nil)
	assert.True(t, est.Estimated)
	assert.Equal(t, "fixed-split", est.Method)
	assert.NotEmpty(t, est.Note)
	require.Len(t, est.Vendors, 2)

	acme := est.Vendors[0]
	assert.Equal(t, "Acme", acme.VendorName)
	assert.Equal(t, 10.0, acme.AveragePerDay)
	assert.Equal(t, []domain.TimeOfDayBucket{
		{Label: "morning", Share: 0.35, Quantity: 3.5},
		{Label: "midday", Share: 0.4, Quantity: 4},
		{Label: "afternoon", Share: 0.25, Quantity: 2.5},
	}, acme.Buckets)
	assert.Equal(t, "Beta", est.Vendors[1].VendorName)
}

func TestEstimateTimeOfDay_NormalizesShares(t *testing.T) {
	est := EstimateTimeOfDay(
		[]domain.ItemRecommendation{{VendorName: "Acme", AveragePerDay: 8}},
		[]TimeOfDaySplit{{Label: "am", Share: 1}, {Label: "pm", Share: 3}, {Label: "never", Share: -1}},
	)
	require.Len(t, est.Vendors, 1)
	assert.Equal(t, []domain.TimeOfDayBucket{
		{Label: "am", Share: 0.25, Quantity: 2},
		{Label: "pm", Share: 0.75, Quantity: 6},
	}, est.Vendors[0].Buckets)

	empty := EstimateTimeOfDay(nil, []TimeOfDaySplit{{Label: "x", Share: 0}})
	assert.NotNil(t, empty.Vendors)
	assert.Empty(t, empty.Vendors)
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	a := DefaultVendorSchedules()
	a[0].VendorKey = "mutated"
	*a[0].OrderWeekday = 6
	b := DefaultVendorSchedules()
	assert.NotEqual(t, "mutated", b[0].VendorKey)
	assert.Equal(t, 1, *b[0].OrderWeekday)

	p := DefaultPackSizes()
	p[0].PackSize = 99
	assert.Equal(t, 12, DefaultPackSizes()[0].PackSize)

	tc := DefaultTrackingConfig()
	tc.ItemKeywords[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultTrackingConfig().ItemKeywords[0])
}
