package vendor_order

import (
	"errors"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

const (
	DefaultBufferFraction = 0.20
	MaxBufferFraction     = 0.50
	DefaultLookaheadHours = 2.0
	MaxLookaheadHours     = 24.0 // deadlines are at most a day away
	DefaultWindowWeeks    = 6
)

var (
	// ErrMissingNow is returned when the caller does not supply the current time.
	ErrMissingNow = errors.New("vendor_order: now is required")
	// ErrNilSalesRecords is returned when the sales record list is nil rather than empty.
	ErrNilSalesRecords = errors.New("vendor_order: sales records must not be nil")
)

// VendorPattern infers a vendor from an item name when a record has none.
type VendorPattern struct {
	Pattern string `json:"pattern"`
	Vendor  string `json:"vendor"`
}

// TrackingConfig decides which sales lines are relevant to ordering.
type TrackingConfig struct {
	CategoryKeywords []string        `json:"category_keywords"`
	ItemKeywords     []string        `json:"item_keywords"`
	VendorPatterns   []VendorPattern `json:"vendor_patterns"`
}

// RecommendationInput is a fully materialized snapshot for one recommendation run.
//
// Nil Schedules or PackSizes (or empty ones) fall back to the built-in defaults.
// A nil Tracking uses DefaultTrackingConfig. A nil BufferFraction uses DefaultBufferFraction.
type RecommendationInput struct {
	SalesRecords   []domain.SalesRecord
	Schedules      []domain.VendorScheduleRule
	PackSizes      []domain.PackSizeRule
	Tracking       *TrackingConfig
	StockLevels    map[string]int
	BufferFraction *float64
	WindowDays     int
	Now            time.Time
}

// ReminderInput drives the deadline reminder list.
type ReminderInput struct {
	Schedules         []domain.VendorScheduleRule
	Now               time.Time
	LookaheadHours    *float64
	IncludeNoDeadline bool
	IncludeAll        bool
	IncludeUpcoming   bool
}

// OrderQuantity is the calculator output for one item.
type OrderQuantity struct {
	RawNeeded int
	Suggested int
	Buffer    float64
}

// PackResult is the pack-size normalized order for one item.
type PackResult struct {
	PackSize int
	UnitName string
	Units    int
	Pieces   int
	Matched  bool
}
