package vendor_order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]domain.VendorScheduleRule{
		{VendorKey: "bakery", DeliveryWeekdays: []int{2}},
		{VendorKey: "Sunrise Bakery", DeliveryWeekdays: []int{5}},
		{VendorKey: "", DeliveryWeekdays: []int{1}},
	})

	tests := []struct {
		name    string
		input   string
		wantKey string
		wantOK  bool
	}{
		{name: "exact beats earlier containment", input: "  SUNRISE bakery ", wantKey: "Sunrise Bakery", wantOK: true},
		{name: "input contains key uses declared order", input: "Sunrise Bakery Pty Ltd", wantKey: "bakery", wantOK: true},
		{name: "key contains input", input: "bake", wantKey: "bakery", wantOK: true},
		{name: "empty input never matches", input: "   ", wantOK: false},
		{name: "unknown vendor", input: "Fresh Farms", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := r.Resolve(tt.input)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, rule.VendorKey)
		})
	}
}

func TestResolver_CopiesRules(t *testing.T) {
	rules := []domain.VendorScheduleRule{{VendorKey: "acme", DeliveryWeekdays: []int{1}}}
	r := NewResolver(rules)
	rules[0].VendorKey = "changed"

	_, ok := r.Resolve("acme")
	assert.True(t, ok)
}

func TestDaysUntilDelivery(t *testing.T) {
	monThu := domain.VendorScheduleRule{DeliveryWeekdays: []int{1, 4}}

	tests := []struct {
		name      string
		today     time.Weekday
		rule      domain.VendorScheduleRule
		wantDays  int
		wantLabel string
	}{
		{name: "wednesday to thursday", today: time.Wednesday, rule: monThu, wantDays: 1, wantLabel: "Tomorrow"},
		{name: "monday skips today", today: time.Monday, rule: monThu, wantDays: 3, wantLabel: "Thu"},
		{name: "friday wraps to monday", today: time.Friday, rule: monThu, wantDays: 3, wantLabel: "Mon"},
		{name: "only today means next week", today: time.Tuesday, rule: domain.VendorScheduleRule{DeliveryWeekdays: []int{2}}, wantDays: 7, wantLabel: "Tue"},
		{name: "same day flag", today: time.Tuesday, rule: domain.VendorScheduleRule{DeliveryWeekdays: []int{2}, SameDayDelivery: true}, wantDays: 0, wantLabel: "Today"},
		{name: "empty schedule", today: time.Tuesday, rule: domain.VendorScheduleRule{}, wantDays: 7, wantLabel: "As needed"},
		{name: "invalid weekdays ignored", today: time.Sunday, rule: domain.VendorScheduleRule{DeliveryWeekdays: []int{9, -1, 6}}, wantDays: 6, wantLabel: "Sat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDays, DaysUntilDelivery(tt.today, tt.rule))
			assert.Equal(t, tt.wantLabel, DeliveryLabel(tt.today, tt.rule))
		})
	}
}

func TestDeliveryLabelAgreesWithDays(t *testing.T) {
	for mask := 1; mask < 128; mask++ {
		var days []int
		for d := 0; d < 7; d++ {
			if mask&(1<<d) != 0 {
				days = append(days, d)
			}
		}
		rule := domain.VendorScheduleRule{DeliveryWeekdays: days}
		for today := time.Sunday; today <= time.Saturday; today++ {
			n := DaysUntilDelivery(today, rule)
			assert.Equal(t, labelForDistance(today, n), DeliveryLabel(today, rule))
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 7)
		}
	}
}
