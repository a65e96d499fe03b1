package vendor_order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func TestAggregator_TwoFullWeeks(t *testing.T) {
	// 2024-01-07 is a Sunday; quantity on each day is weekday+1.
	start := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	records := make([]domain.SalesRecord, 0, 14)
	for i := 0; i < 14; i++ {
		d := start.AddDate(0, 0, i)
		records = append(records, domain.SalesRecord{
			Date:              d,
			ItemName:          "Lemon Slice",
			VendorName:        "Sunrise Bakery",
			QuantitySold:      float64(int(d.Weekday()) + 1),
			GrossRevenueMinor: 450,
		})
	}

	agg := NewAggregator(TrackingConfig{ItemKeywords: []string{"slice"}}, NewResolver(nil))
	groups, days := agg.Aggregate(records)

	require.Len(t, groups, 1)
	assert.Equal(t, 14, days)

	g := groups[0]
	assert.Equal(t, 56.0, g.TotalQuantity)
	assert.Equal(t, int64(14*450), g.TotalRevenue)
	assert.InDelta(t, 4.0, g.AveragePerDay, 1e-9)
	assert.InDelta(t, 28.0, g.AveragePerWeek, 1e-9)
	for d := 0; d < 7; d++ {
		assert.Equal(t, float64(2*(d+1)), g.ByWeekday[d], "weekday %d", d)
	}
}

func TestAggregator_TrackingAndGrouping(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	resolver := NewResolver([]domain.VendorScheduleRule{
		{VendorKey: "fresh farms", DeliveryWeekdays: []int{2}},
		{VendorKey: "no days co"},
	})
	agg := NewAggregator(TrackingConfig{
		CategoryKeywords: []string{"Bakery", " "},
		ItemKeywords:     []string{"cake"},
		VendorPatterns:   []VendorPattern{{Pattern: "byron", Vendor: "Byron Cakes"}},
	}, resolver)

	records := []domain.SalesRecord{
		{Date: day1, ItemName: "Milk", VendorName: "Fresh Farms", QuantitySold: 2},
		{Date: day1, ItemName: "Milk", VendorName: "fresh farms", QuantitySold: 1},
		{Date: day2, ItemName: "Sourdough", Category: "BAKERY goods", QuantitySold: 3},
		{Date: day2, ItemName: "Byron Brownie", QuantitySold: 1},
		{Date: day2, ItemName: "Carrot Cake", VariationName: "Large", QuantitySold: 2},
		{Date: day2, ItemName: "Carrot Cake", QuantitySold: 1},
		{Date: day3, ItemName: "Pen", VendorName: "No Days Co", QuantitySold: 9},
		{Date: day3, ItemName: "Pen", VendorName: "Stationers", QuantitySold: 9},
	}

	groups, days := agg.Aggregate(records)
	assert.Equal(t, 3, days, "untracked records still count toward distinct days")

	type key struct{ vendor, item, variation string }
	got := make([]key, 0, len(groups))
	for _, g := range groups {
		got = append(got, key{g.VendorName, g.ItemName, g.VariationName})
	}

	assert.Equal(t, []key{
		{"Fresh Farms", "Milk", ""},
		{"fresh farms", "Milk", ""},
		{domain.UnassignedVendor, "Carrot Cake", ""},
		{domain.UnassignedVendor, "Carrot Cake", "Large"},
		{domain.UnassignedVendor, "Sourdough", ""},
	}, got)
}

func TestAggregator_VendorPatternsOnlyFillBlanks(t *testing.T) {
	agg := NewAggregator(TrackingConfig{
		VendorPatterns: []VendorPattern{
			{Pattern: "brownie", Vendor: "First"},
			{Pattern: "byron", Vendor: "Second"},
		},
	}, nil)

	assert.Equal(t, "First", agg.VendorFor(domain.SalesRecord{ItemName: "Byron Brownie"}))
	assert.Equal(t, "Acme", agg.VendorFor(domain.SalesRecord{ItemName: "Byron Brownie", VendorName: "Acme"}))
	assert.Equal(t, "", agg.VendorFor(domain.SalesRecord{ItemName: "Tea"}))
}

func TestAggregator_Empty(t *testing.T) {
	groups, days := NewAggregator(TrackingConfig{}, nil).Aggregate([]domain.SalesRecord{})
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
	assert.Equal(t, 0, days)
}
