package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemID(t *testing.T) {
	assert.Equal(t, "Latte", ItemID("Latte", ""))
	assert.Equal(t, "Latte|Large", ItemID("Latte", "Large"))
	assert.NotEqual(t, ItemID("latte", ""), ItemID("Latte", ""))
}

func TestVendorScheduleRuleName(t *testing.T) {
	assert.Equal(t, "acme", VendorScheduleRule{VendorKey: "acme"}.Name())
	assert.Equal(t, "Acme Foods", VendorScheduleRule{VendorKey: "acme", DisplayName: "Acme Foods"}.Name())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   PriorityTier
		wantOK bool
	}{
		{in: "urgent", want: PriorityUrgent, wantOK: true},
		{in: " SOON ", want: PrioritySoon, wantOK: true},
		{in: "Today", want: PriorityToday, wantOK: true},
		{in: "upcoming", want: PriorityUpcoming, wantOK: true},
		{in: "later"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePriority(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Due soon", PriorityLabel(PrioritySoon))
	assert.Equal(t, "Unknown", PriorityLabel("nope"))
}
