package vendor_order

import (
	"sort"
	"strings"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

var weekdayShortNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Resolver maps free-text vendor names to configured schedule rules.
// Rules are matched in declared order; the map-free layout keeps ties deterministic.
type Resolver struct {
	rules []domain.VendorScheduleRule
	keys  []string
}

// NewResolver copies rules so later caller mutation cannot change resolution.
func NewResolver(rules []domain.VendorScheduleRule) *Resolver {
	r := &Resolver{
		rules: make([]domain.VendorScheduleRule, len(rules)),
		keys:  make([]string, len(rules)),
	}
	copy(r.rules, rules)
	for i, rule := range r.rules {
		r.keys[i] = normalizeKey(rule.VendorKey)
	}
	return r
}

// Resolve finds the rule for name: exact key first, then the first key in
// declared order where either string contains the other.
func (r *Resolver) Resolve(name string) (domain.VendorScheduleRule, bool) {
	needle := normalizeKey(name)
	if needle == "" {
		return domain.VendorScheduleRule{}, false
	}

	for i, key := range r.keys {
		if key != "" && key == needle {
			return r.rules[i], true
		}
	}

	for i, key := range r.keys {
		if key == "" {
			continue
		}
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return r.rules[i], true
		}
	}

	return domain.VendorScheduleRule{}, false
}

// HasDeliveryDays reports whether name resolves to a rule with at least one valid delivery weekday.
func (r *Resolver) HasDeliveryDays(name string) bool {
	rule, ok := r.Resolve(name)
	return ok && len(deliveryWeekdays(rule)) > 0
}

// deliveryWeekdays returns the rule's valid weekdays, sorted and de-duplicated.
func deliveryWeekdays(rule domain.VendorScheduleRule) []int {
	seen := [7]bool{}
	out := make([]int, 0, len(rule.DeliveryWeekdays))
	for _, d := range rule.DeliveryWeekdays {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func deliveryDistance(today time.Weekday, rule domain.VendorScheduleRule) (int, bool) {
	days := deliveryWeekdays(rule)
	if len(days) == 0 {
		return 7, false
	}

	best := 7
	for _, d := range days {
		dist := (d - int(today) + 7) % 7
		if dist == 0 && !rule.SameDayDelivery {
			dist = 7
		}
		if dist < best {
			best = dist
		}
	}
	return best, true
}

// DaysUntilDelivery is the minimum forward distance to the next delivery day.
// Today counts as 0 only for same-day vendors; an empty schedule yields 7.
func DaysUntilDelivery(today time.Weekday, rule domain.VendorScheduleRule) int {
	days, _ := deliveryDistance(today, rule)
	return days
}

// DeliveryLabel renders the next delivery as Today, Tomorrow, a weekday short name or "As needed".
func DeliveryLabel(today time.Weekday, rule domain.VendorScheduleRule) string {
	days, ok := deliveryDistance(today, rule)
	if !ok {
		return "As needed"
	}
	return labelForDistance(today, days)
}

func labelForDistance(today time.Weekday, days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return weekdayShortNames[(int(today)+days)%7]
	}
}

// WeekdayNames maps weekday numbers to short names, skipping invalid entries.
func WeekdayNames(days []int) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			out = append(out, weekdayShortNames[d])
		}
	}
	return out
}
