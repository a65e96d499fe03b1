package vendor_order

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

const (
	urgentWithinMinutes = 30
	soonWithinMinutes   = 120
)

var deadlinePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// ParseDeadline parses "H:MM AM/PM" into a 24-hour clock time. Anything else is ok=false.
func ParseDeadline(s string) (hour, minute int, ok bool) {
	m := deadlinePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}

	h, err := strconv.Atoi(m[1])
	if err != nil || h < 1 || h > 12 {
		return 0, 0, false
	}
	mm, err := strconv.Atoi(m[2])
	if err != nil || mm > 59 {
		return 0, 0, false
	}

	pm := strings.EqualFold(m[3], "pm")
	switch {
	case h == 12 && !pm:
		h = 0
	case h != 12 && pm:
		h += 12
	}
	return h, mm, true
}

// MinutesUntilDeadline compares deadline and now on the same calendar day.
// Negative values mean the deadline has passed; there is no rollover.
func MinutesUntilDeadline(deadline string, now time.Time) (int, bool) {
	h, m, ok := ParseDeadline(deadline)
	if !ok {
		return 0, false
	}
	return (h*60 + m) - (now.Hour()*60 + now.Minute()), true
}

// ClassifyPriority maps a countdown to a tier. hasDeadline=false is always "today".
func ClassifyPriority(minutes int, hasDeadline bool) domain.PriorityTier {
	switch {
	case !hasDeadline:
		return domain.PriorityToday
	case minutes < 0 || minutes <= urgentWithinMinutes:
		return domain.PriorityUrgent
	case minutes <= soonWithinMinutes:
		return domain.PrioritySoon
	default:
		return domain.PriorityToday
	}
}

// CountdownLabel renders minutes as "15m", "1h 30m" or "Overdue 1h".
func CountdownLabel(minutes int, hasDeadline bool) string {
	if !hasDeadline {
		return "No deadline"
	}
	if minutes < 0 {
		return "Overdue " + formatMinutes(-minutes)
	}
	return formatMinutes(minutes)
}

func formatMinutes(total int) string {
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func lookaheadMinutes(hours *float64) int {
	lh := DefaultLookaheadHours
	if hours != nil {
		lh = *hours
	}
	switch {
	case lh < 0 || math.IsNaN(lh):
		lh = 0
	case lh > MaxLookaheadHours:
		lh = MaxLookaheadHours
	}
	return int(lh * 60)
}

// BuildReminders returns unsorted reminders for rules whose order weekday is today
// (and tomorrow, when IncludeUpcoming is set).
func BuildReminders(in ReminderInput) []domain.PriorityReminder {
	today := in.Now.Weekday()
	tomorrow := (int(today) + 1) % 7
	window := lookaheadMinutes(in.LookaheadHours)

	out := make([]domain.PriorityReminder, 0)
	for _, rule := range in.Schedules {
		if rule.OrderWeekday == nil {
			continue
		}

		base := domain.PriorityReminder{
			VendorKey:     rule.VendorKey,
			VendorName:    rule.Name(),
			OrderDeadline: rule.OrderDeadline,
			NextDelivery:  DeliveryLabel(today, rule),
		}

		switch *rule.OrderWeekday {
		case int(today):
			minutes, ok := MinutesUntilDeadline(rule.OrderDeadline, in.Now)
			if !ok {
				if !in.IncludeNoDeadline && !in.IncludeAll {
					continue
				}
				base.OrderDeadline = ""
			} else {
				if minutes > window && !in.IncludeAll {
					continue
				}
				m := minutes
				base.MinutesUntilDeadline = &m
				base.HasDeadline = true
				base.IsOverdue = minutes < 0
			}
			base.Priority = ClassifyPriority(minutes, ok)
			base.Countdown = CountdownLabel(minutes, ok)
		case tomorrow:
			if !in.IncludeUpcoming {
				continue
			}
			base.Priority = domain.PriorityUpcoming
			base.Countdown = "Tomorrow"
			if _, _, ok := ParseDeadline(rule.OrderDeadline); ok {
				base.HasDeadline = true
				base.Countdown = "Tomorrow " + strings.ToUpper(strings.TrimSpace(rule.OrderDeadline))
			} else {
				base.OrderDeadline = ""
			}
		default:
			continue
		}

		base.PriorityLabel = domain.PriorityLabel(base.Priority)
		out = append(out, base)
	}
	return out
}

// CountPriorities tallies reminders by tier.
func CountPriorities(reminders []domain.PriorityReminder) domain.PriorityCounts {
	c := domain.PriorityCounts{Total: len(reminders)}
	for _, r := range reminders {
		switch r.Priority {
		case domain.PriorityUrgent:
			c.Urgent++
		case domain.PrioritySoon:
			c.Soon++
		case domain.PriorityToday:
			c.Today++
		case domain.PriorityUpcoming:
			c.Upcoming++
		}
	}
	return c
}
