package vendor_order

import (
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// Engine produces order recommendations and deadline reminders from a materialized snapshot.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	calculator *OrderQuantityCalculator
}

// NewEngine creates a new recommendation engine.
func NewEngine() *Engine {
	return &Engine{calculator: NewOrderQuantityCalculator()}
}

// vendorKey keeps the synthetic bucket apart from a real vendor of the same name.
type vendorKey struct {
	name       string
	unassigned bool
}

type vendorAcc struct {
	summary domain.VendorOrderSummary
	revenue int64
	perDay  float64
	qty     float64
}

// Recommend runs aggregate, resolve, calculate, normalize, group and sort.
func (e *Engine) Recommend(in RecommendationInput) (domain.RecommendationResult, error) {
	if in.Now.IsZero() {
		return domain.RecommendationResult{}, ErrMissingNow
	}
	if in.SalesRecords == nil {
		return domain.RecommendationResult{}, ErrNilSalesRecords
	}

	result := domain.RecommendationResult{
		Vendors: make([]domain.VendorOrderSummary, 0),
		Items:   make([]domain.ItemRecommendation, 0),
	}

	schedules := in.Schedules
	if len(schedules) == 0 {
		schedules = DefaultVendorSchedules()
		result.UsedDefaultSchedules = true
	}
	packs := in.PackSizes
	if len(packs) == 0 {
		packs = DefaultPackSizes()
		result.UsedDefaultPackSizes = true
	}
	tracking := DefaultTrackingConfig()
	if in.Tracking != nil {
		tracking = *in.Tracking
	}
	buffer := DefaultBufferFraction
	if in.BufferFraction != nil {
		buffer = ClampBuffer(*in.BufferFraction)
	}
	result.BufferFraction = roundFloat(buffer, 2)

	resolver := NewResolver(schedules)
	normalizer := NewPackNormalizer(packs)
	aggregates, distinctDays := NewAggregator(tracking, resolver).Aggregate(in.SalesRecords)
	today := in.Now.Weekday()

	byVendor := make(map[vendorKey]*vendorAcc)
	for _, agg := range aggregates {
		k := vendorKey{name: agg.VendorName, unassigned: agg.IsUnassigned}
		acc, ok := byVendor[k]
		if !ok {
			acc = newVendorAcc(agg.VendorName, agg.IsUnassigned, resolver, today)
			byVendor[k] = acc
		}

		onHand := in.StockLevels[domain.ItemID(agg.ItemName, agg.VariationName)]
		if onHand < 0 {
			onHand = 0
		}

		days := acc.summary.DaysUntilDelivery
		qty := e.calculator.Calculate(agg.AveragePerDay, days, buffer, onHand)
		pack := normalizer.Normalize(agg.ItemName, qty.Suggested)

		item := domain.ItemRecommendation{
			ItemID:            domain.ItemID(agg.ItemName, agg.VariationName),
			VendorName:        agg.VendorName,
			ItemName:          agg.ItemName,
			VariationName:     agg.VariationName,
			Category:          agg.Category,
			TotalQuantitySold: roundQty(agg.TotalQuantity),
			TotalRevenue:      minorToCurrency(agg.TotalRevenue),
			AveragePerDay:     roundQty(agg.AveragePerDay),
			AveragePerWeek:    roundQty(agg.AveragePerWeek),
			OnHand:            onHand,
			DaysUntilDelivery: days,
			NextDelivery:      acc.summary.NextDelivery,
			RawNeeded:         qty.RawNeeded,
			SuggestedQuantity: qty.Suggested,
			PackSize:          pack.PackSize,
			UnitName:          pack.UnitName,
			SuggestedUnits:    pack.Units,
			SuggestedPieces:   pack.Pieces,
			NeedsReorder:      qty.Suggested > 0,
		}
		for d, v := range agg.ByWeekday {
			item.ByWeekday[d] = roundQty(v)
		}

		acc.summary.Items = append(acc.summary.Items, item)
		acc.summary.ItemCount++
		if item.NeedsReorder {
			acc.summary.ItemsNeedingReorder++
		}
		acc.summary.TotalSuggestedUnits += pack.Units
		acc.summary.TotalSuggestedPieces += pack.Pieces
		acc.qty += agg.TotalQuantity
		acc.revenue += agg.TotalRevenue
		acc.perDay += agg.AveragePerDay
	}

	var totalQty float64
	var totalRevenue int64
	for _, acc := range byVendor {
		acc.summary.TotalQuantitySold = roundQty(acc.qty)
		acc.summary.TotalRevenue = minorToCurrency(acc.revenue)
		acc.summary.TotalAveragePerDay = roundQty(acc.perDay)
		sortItems(acc.summary.Items)
		result.Vendors = append(result.Vendors, acc.summary)
		totalQty += acc.qty
		totalRevenue += acc.revenue
	}
	sortVendors(result.Vendors)

	for _, v := range result.Vendors {
		result.Items = append(result.Items, v.Items...)
	}

	windowDays := in.WindowDays
	if windowDays <= 0 {
		windowDays = distinctDays
	}
	result.Summary = domain.RecommendationSummary{
		TotalItems:        len(result.Items),
		TotalQuantitySold: roundQty(totalQty),
		TotalRevenue:      minorToCurrency(totalRevenue),
		WindowDays:        windowDays,
	}

	return result, nil
}

func newVendorAcc(vendor string, unassigned bool, resolver *Resolver, today time.Weekday) *vendorAcc {
	s := domain.VendorOrderSummary{
		VendorName:       vendor,
		IsUnassigned:     unassigned,
		DeliveryWeekdays: []int{},
		DeliveryDayNames: []string{},
		Items:            make([]domain.ItemRecommendation, 0),
	}

	var rule domain.VendorScheduleRule
	if !s.IsUnassigned {
		if r, ok := resolver.Resolve(vendor); ok {
			rule = r
			s.OrderDeadline = r.OrderDeadline
		}
	}
	s.DeliveryWeekdays = deliveryWeekdays(rule)
	s.DeliveryDayNames = WeekdayNames(s.DeliveryWeekdays)
	s.HasSchedule = len(s.DeliveryWeekdays) > 0
	s.DaysUntilDelivery = DaysUntilDelivery(today, rule)
	s.NextDelivery = DeliveryLabel(today, rule)

	return &vendorAcc{summary: s}
}

// Reminders builds the prioritized list of vendor orders due today.
func (e *Engine) Reminders(in ReminderInput) (domain.ReminderResult, error) {
	if in.Now.IsZero() {
		return domain.ReminderResult{}, ErrMissingNow
	}

	result := domain.ReminderResult{}
	if len(in.Schedules) == 0 {
		in.Schedules = DefaultVendorSchedules()
		result.UsedDefaultSchedules = true
	}

	reminders := BuildReminders(in)
	sortReminders(reminders)

	result.Reminders = reminders
	result.Counts = CountPriorities(reminders)
	return result, nil
}
