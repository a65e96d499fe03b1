package vendor_order

import (
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// Built-in configuration used when the settings store is empty or unreachable.
// Every call returns fresh slices.

// DefaultTrackingConfig returns cafe and bakery keywords.
func DefaultTrackingConfig() TrackingConfig {
	return TrackingConfig{
		CategoryKeywords: []string{"cafe", "bakery", "cakes", "pastries", "drinks", "kombucha"},
		ItemKeywords: []string{
			"cake", "slice", "muffin", "croissant", "cookie", "brownie",
			"scroll", "sourdough", "loaf", "pie", "quiche", "wrap", "sandwich",
		},
		VendorPatterns: []VendorPattern{},
	}
}

func weekday(d time.Weekday) *int {
	v := int(d)
	return &v
}

// DefaultVendorSchedules returns a small starter schedule list.
func DefaultVendorSchedules() []domain.VendorScheduleRule {
	return []domain.VendorScheduleRule{
		{
			VendorKey:        "sunrise bakery",
			DisplayName:      "Sunrise Bakery",
			DeliveryWeekdays: []int{2, 5},
			OrderDeadline:    "2:00 PM",
			OrderWeekday:     weekday(1),
		},
		{
			VendorKey:        "byron cakes",
			DisplayName:      "Byron Cakes",
			DeliveryWeekdays: []int{3},
			OrderDeadline:    "11:00 AM",
			OrderWeekday:     weekday(1),
		},
		{
			VendorKey:        "local dairy",
			DisplayName:      "Local Dairy",
			DeliveryWeekdays: []int{1, 3, 5},
			OrderDeadline:    "4:00 PM",
			OrderWeekday:     weekday(0),
		},
		{
			VendorKey:        "kombucha co",
			DisplayName:      "Kombucha Co",
			DeliveryWeekdays: []int{4},
		},
	}
}

// DefaultPackSizes returns common wholesale pack sizes.
func DefaultPackSizes() []domain.PackSizeRule {
	return []domain.PackSizeRule{
		{ItemPattern: "cake", PackSize: 12, UnitName: "slices"},
		{ItemPattern: "cheesecake", PackSize: 10, UnitName: "slices"},
		{ItemPattern: "slice", PackSize: 16, UnitName: "pieces"},
		{ItemPattern: "muffin", PackSize: 6, UnitName: "muffins"},
		{ItemPattern: "cookie", PackSize: 12, UnitName: "cookies"},
		{ItemPattern: "kombucha", PackSize: 12, UnitName: "bottles"},
	}
}
