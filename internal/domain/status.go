package domain

import "strings"

// PriorityTier describes how urgent a vendor order deadline is.
type PriorityTier string

const (
	PriorityUrgent   PriorityTier = "urgent"
	PrioritySoon     PriorityTier = "soon"
	PriorityToday    PriorityTier = "today"
	PriorityUpcoming PriorityTier = "upcoming"
)

var priorityLabels = map[PriorityTier]string{
	PriorityUrgent:   "Urgent",
	PrioritySoon:     "Due soon",
	PriorityToday:    "Due today",
	PriorityUpcoming: "Upcoming",
}

var priorityCodes = map[string]PriorityTier{
	"urgent":   PriorityUrgent,
	"soon":     PrioritySoon,
	"today":    PriorityToday,
	"upcoming": PriorityUpcoming,
}

// PriorityLabel returns a human-readable label for a priority tier.
func PriorityLabel(tier PriorityTier) string {
	if label, ok := priorityLabels[tier]; ok {
		return label
	}

	return "Unknown"
}

// ParsePriority returns the tier for a given name (case-insensitive).
func ParsePriority(name string) (PriorityTier, bool) {
	tier, ok := priorityCodes[strings.ToLower(strings.TrimSpace(name))]

	return tier, ok
}
