package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/cache"
	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/HJantango/wild-octave-august-sub004/internal/pipeline/vendor_order"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository"
	"github.com/rs/zerolog/log"
)

const maxWindowWeeks = 52

// RecommendationOptions are per-request overrides. Zero values use configured defaults.
type RecommendationOptions struct {
	Weeks          int
	BufferFraction *float64
}

// ReminderOptions mirror the reminder query parameters.
type ReminderOptions struct {
	LookaheadHours    *float64
	IncludeNoDeadline bool
	IncludeAll        bool
	IncludeUpcoming   bool
}

type RecommendationService struct {
	sales    repository.SalesRepository
	settings repository.SettingsRepository
	stock    cache.StockStore
	engine   *vendor_order.Engine
	cfg      config.OrderingConfig
	tracking *vendor_order.TrackingConfig
	clock    func() time.Time
}

// NewRecommendationService wires the engine to its data sources. A nil clock uses
// time.Now in the configured timezone; a nil stock store behaves as empty.
func NewRecommendationService(
	sales repository.SalesRepository,
	settings repository.SettingsRepository,
	stock cache.StockStore,
	cfg config.OrderingConfig,
	clock func() time.Time,
) *RecommendationService {
	if stock == nil {
		stock = cache.NewMemoryStockStore()
	}
	if clock == nil {
		loc := cfg.Location()
		clock = func() time.Time { return time.Now().In(loc) }
	}
	return &RecommendationService{
		sales:    sales,
		settings: settings,
		stock:    stock,
		engine:   vendor_order.NewEngine(),
		cfg:      cfg,
		tracking: trackingFromConfig(cfg),
		clock:    clock,
	}
}

// trackingFromConfig overlays configured keyword lists on the built-in ones.
// It returns nil when nothing is configured so the engine applies its defaults.
func trackingFromConfig(cfg config.OrderingConfig) *vendor_order.TrackingConfig {
	if len(cfg.TrackCategories) == 0 && len(cfg.TrackItems) == 0 && len(cfg.VendorPatterns) == 0 {
		return nil
	}
	tracking := vendor_order.DefaultTrackingConfig()
	if len(cfg.TrackCategories) > 0 {
		tracking.CategoryKeywords = append([]string(nil), cfg.TrackCategories...)
	}
	if len(cfg.TrackItems) > 0 {
		tracking.ItemKeywords = append([]string(nil), cfg.TrackItems...)
	}
	for _, vp := range cfg.VendorPatterns {
		tracking.VendorPatterns = append(tracking.VendorPatterns, vendor_order.VendorPattern{Pattern: vp.Pattern, Vendor: vp.Vendor})
	}
	log.Info().
		Strs("category_keywords", tracking.CategoryKeywords).
		Strs("item_keywords", tracking.ItemKeywords).
		Int("vendor_patterns", len(tracking.VendorPatterns)).
		Msg("recommendations: using configured tracking keywords")
	return &tracking
}

// Tracking returns the keyword configuration applied to every run.
func (s *RecommendationService) Tracking() vendor_order.TrackingConfig {
	if s.tracking == nil {
		return vendor_order.DefaultTrackingConfig()
	}
	return *s.tracking
}

func (s *RecommendationService) windowWeeks(weeks int) int {
	if weeks <= 0 {
		weeks = s.cfg.WindowWeeks
	}
	if weeks <= 0 {
		weeks = vendor_order.DefaultWindowWeeks
	}
	if weeks > maxWindowWeeks {
		weeks = maxWindowWeeks
	}
	return weeks
}

// SalesWindow returns [start, end] where end is today and the window spans 7*weeks days.
func SalesWindow(now time.Time, weeks int) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -7*weeks+1)
	return start, end
}

func (s *RecommendationService) loadSchedules(ctx context.Context) []domain.VendorScheduleRule {
	if s.settings == nil {
		return nil
	}
	rules, err := s.settings.GetVendorSchedules(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("recommendations: vendor schedules unavailable, using defaults")
		return nil
	}
	return rules
}

func (s *RecommendationService) loadPackSizes(ctx context.Context) []domain.PackSizeRule {
	if s.settings == nil {
		return nil
	}
	rules, err := s.settings.GetPackSizes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("recommendations: pack sizes unavailable, using defaults")
		return nil
	}
	return rules
}

func (s *RecommendationService) loadStock(ctx context.Context) map[string]int {
	levels, err := s.stock.All(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("recommendations: stock levels unavailable, assuming zero on hand")
		return map[string]int{}
	}
	return levels
}

func (s *RecommendationService) GetRecommendations(ctx context.Context, opts RecommendationOptions) (domain.RecommendationResult, error) {
	now := s.clock()
	weeks := s.windowWeeks(opts.Weeks)
	start, end := SalesWindow(now, weeks)

	records, err := s.sales.ListSalesRecords(ctx, start, end)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("error loading sales history: %w", err)
	}
	if records == nil {
		records = []domain.SalesRecord{}
	}

	buffer := opts.BufferFraction
	if buffer == nil {
		b := s.cfg.BufferFraction
		if b == 0 {
			b = vendor_order.DefaultBufferFraction
		}
		buffer = &b
	}

	result, err := s.engine.Recommend(vendor_order.RecommendationInput{
		SalesRecords:   records,
		Schedules:      s.loadSchedules(ctx),
		PackSizes:      s.loadPackSizes(ctx),
		Tracking:       s.tracking,
		StockLevels:    s.loadStock(ctx),
		BufferFraction: buffer,
		WindowDays:     7 * weeks,
		Now:            now,
	})
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("error computing recommendations: %w", err)
	}

	if result.UsedDefaultSchedules {
		log.Warn().Msg("recommendations: no vendor schedules configured, using built-in defaults")
	}
	if result.UsedDefaultPackSizes {
		log.Warn().Msg("recommendations: no pack sizes configured, using built-in defaults")
	}

	log.Debug().
		Int("weeks", weeks).
		Int("records", len(records)).
		Int("vendors", len(result.Vendors)).
		Msg("recommendations computed")

	return result, nil
}

func (s *RecommendationService) GetReminders(ctx context.Context, opts ReminderOptions) (domain.ReminderResult, error) {
	lookahead := opts.LookaheadHours
	if lookahead == nil && s.cfg.LookaheadHours > 0 {
		lh := s.cfg.LookaheadHours
		lookahead = &lh
	}

	result, err := s.engine.Reminders(vendor_order.ReminderInput{
		Schedules:         s.loadSchedules(ctx),
		Now:               s.clock(),
		LookaheadHours:    lookahead,
		IncludeNoDeadline: opts.IncludeNoDeadline,
		IncludeAll:        opts.IncludeAll,
		IncludeUpcoming:   opts.IncludeUpcoming,
	})
	if err != nil {
		return domain.ReminderResult{}, fmt.Errorf("error computing reminders: %w", err)
	}

	if result.UsedDefaultSchedules {
		log.Warn().Msg("reminders: no vendor schedules configured, using built-in defaults")
	}
	return result, nil
}

// GetTimeOfDayEstimate splits each vendor's daily average with fixed shares. The output is labelled as an estimate.
func (s *RecommendationService) GetTimeOfDayEstimate(ctx context.Context, weeks int) (domain.TimeOfDayEstimate, error) {
	result, err := s.GetRecommendations(ctx, RecommendationOptions{Weeks: weeks})
	if err != nil {
		return domain.TimeOfDayEstimate{}, err
	}
	return vendor_order.EstimateTimeOfDay(result.Items, vendor_order.DefaultTimeOfDaySplits()), nil
}
