package domain

// WeekdayAggregate holds the folded sales history for one (vendor, item, variation) group.
type WeekdayAggregate struct {
	VendorName     string     `json:"vendor_name"`
	IsUnassigned   bool       `json:"is_unassigned"`
	ItemName       string     `json:"item_name"`
	VariationName  string     `json:"variation_name"`
	Category       string     `json:"category"`
	TotalQuantity  float64    `json:"total_quantity"`
	TotalRevenue   int64      `json:"total_revenue_minor"`
	ByWeekday      [7]float64 `json:"by_weekday"` // index 0 = Sunday
	AveragePerDay  float64    `json:"average_per_day"`
	AveragePerWeek float64    `json:"average_per_week"`
}

// ItemRecommendation is the per-item order suggestion.
type ItemRecommendation struct {
	ItemID            string     `json:"item_id"`
	VendorName        string     `json:"vendor_name"`
	ItemName          string     `json:"item_name"`
	VariationName     string     `json:"variation_name,omitempty"`
	Category          string     `json:"category,omitempty"`
	TotalQuantitySold float64    `json:"total_quantity_sold"`
	TotalRevenue      float64    `json:"total_revenue"`
	ByWeekday         [7]float64 `json:"by_weekday"`
	AveragePerDay     float64    `json:"average_per_day"`
	AveragePerWeek    float64    `json:"average_per_week"`
	OnHand            int        `json:"on_hand"`
	DaysUntilDelivery int        `json:"days_until_delivery"`
	NextDelivery      string     `json:"next_delivery"`
	RawNeeded         int        `json:"raw_needed"`
	SuggestedQuantity int        `json:"suggested_quantity"`
	PackSize          int        `json:"pack_size"`
	UnitName          string     `json:"unit_name,omitempty"`
	SuggestedUnits    int        `json:"suggested_units"`
	SuggestedPieces   int        `json:"suggested_pieces"`
	NeedsReorder      bool       `json:"needs_reorder"`
}

// VendorOrderSummary groups item recommendations for one vendor.
type VendorOrderSummary struct {
	VendorName           string               `json:"vendor_name"`
	IsUnassigned         bool                 `json:"is_unassigned"`
	HasSchedule          bool                 `json:"has_schedule"`
	DeliveryWeekdays     []int                `json:"delivery_weekdays"`
	DeliveryDayNames     []string             `json:"delivery_day_names"`
	OrderDeadline        string               `json:"order_deadline,omitempty"`
	DaysUntilDelivery    int                  `json:"days_until_delivery"`
	NextDelivery         string               `json:"next_delivery"`
	ItemCount            int                  `json:"item_count"`
	ItemsNeedingReorder  int                  `json:"items_needing_reorder"`
	TotalSuggestedUnits  int                  `json:"total_suggested_units"`
	TotalSuggestedPieces int                  `json:"total_suggested_pieces"`
	TotalQuantitySold    float64              `json:"total_quantity_sold"`
	TotalRevenue         float64              `json:"total_revenue"`
	TotalAveragePerDay   float64              `json:"total_average_per_day"`
	Items                []ItemRecommendation `json:"items"`
}

// RecommendationSummary is the totals block of a recommendation run.
type RecommendationSummary struct {
	TotalItems        int     `json:"total_items"`
	TotalQuantitySold float64 `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	WindowDays        int     `json:"window_days"`
}

// RecommendationResult is the full output of the order recommendation engine.
type RecommendationResult struct {
	Vendors              []VendorOrderSummary  `json:"vendors"`
	Items                []ItemRecommendation  `json:"items"`
	Summary              RecommendationSummary `json:"summary"`
	BufferFraction       float64               `json:"buffer_fraction"`
	UsedDefaultSchedules bool                  `json:"used_default_schedules"`
	UsedDefaultPackSizes bool                  `json:"used_default_pack_sizes"`
}

// PriorityReminder is a countdown to one vendor's order deadline.
type PriorityReminder struct {
	VendorKey            string       `json:"vendor_key"`
	VendorName           string       `json:"vendor_name"`
	OrderDeadline        string       `json:"order_deadline,omitempty"`
	HasDeadline          bool         `json:"has_deadline"`
	MinutesUntilDeadline *int         `json:"minutes_until_deadline"`
	IsOverdue            bool         `json:"is_overdue"`
	Priority             PriorityTier `json:"priority"`
	PriorityLabel        string       `json:"priority_label"`
	Countdown            string       `json:"countdown"`
	NextDelivery         string       `json:"next_delivery"`
}

// PriorityCounts tallies reminders by tier.
type PriorityCounts struct {
	Urgent   int `json:"urgent"`
	Soon     int `json:"soon"`
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
	Total    int `json:"total"`
}

// ReminderResult is the prioritized reminder list.
type ReminderResult struct {
	Reminders            []PriorityReminder `json:"reminders"`
	Counts               PriorityCounts     `json:"counts"`
	UsedDefaultSchedules bool               `json:"used_default_schedules"`
}

// TimeOfDayBucket is one slice of an estimated intra-day distribution.
type TimeOfDayBucket struct {
	Label    string  `json:"label"`
	Share    float64 `json:"share"`
	Quantity float64 `json:"quantity"`
}

// VendorTimeOfDay is the estimated intra-day split for one vendor.
type VendorTimeOfDay struct {
	VendorName    string            `json:"vendor_name"`
	AveragePerDay float64           `json:"average_per_day"`
	Buckets       []TimeOfDayBucket `json:"buckets"`
}

// TimeOfDayEstimate is a heuristic split of daily demand. It is not measured data.
type TimeOfDayEstimate struct {
	Estimated bool              `json:"estimated"`
	Method    string            `json:"method"`
	Note      string            `json:"note"`
	Vendors   []VendorTimeOfDay `json:"vendors"`
}
