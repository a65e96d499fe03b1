package vendor_order

import (
	"sort"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// sortItems orders items by quantity sold desc, then item and variation name.
func sortItems(items []domain.ItemRecommendation) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.TotalQuantitySold != b.TotalQuantitySold {
			return a.TotalQuantitySold > b.TotalQuantitySold
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		return a.VariationName < b.VariationName
	})
}

// sortVendors applies the vendor ordering every consumer relies on:
// unassigned last, scheduled first, soonest delivery, busiest, then name.
func sortVendors(vendors []domain.VendorOrderSummary) {
	sort.Slice(vendors, func(i, j int) bool {
		a, b := vendors[i], vendors[j]
		if a.IsUnassigned != b.IsUnassigned {
			return !a.IsUnassigned
		}
		if a.HasSchedule != b.HasSchedule {
			return a.HasSchedule
		}
		if a.DaysUntilDelivery != b.DaysUntilDelivery {
			return a.DaysUntilDelivery < b.DaysUntilDelivery
		}
		if a.TotalQuantitySold != b.TotalQuantitySold {
			return a.TotalQuantitySold > b.TotalQuantitySold
		}
		return a.VendorName < b.VendorName
	})
}

func reminderRank(r domain.PriorityReminder) int {
	switch {
	case r.Priority == domain.PriorityUpcoming:
		return 2
	case r.MinutesUntilDeadline == nil:
		return 1
	default:
		return 0
	}
}

// sortReminders puts overdue first, then the nearest deadline; no deadline and upcoming sort last.
func sortReminders(reminders []domain.PriorityReminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		ra, rb := reminderRank(a), reminderRank(b)
		if ra != rb {
			return ra < rb
		}
		if ra == 0 && *a.MinutesUntilDeadline != *b.MinutesUntilDeadline {
			return *a.MinutesUntilDeadline < *b.MinutesUntilDeadline
		}
		if a.VendorName != b.VendorName {
			return a.VendorName < b.VendorName
		}
		return a.VendorKey < b.VendorKey
	})
}
