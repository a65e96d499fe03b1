package vendor_order

import (
	"math"
	"sort"
	"strings"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

type groupKey struct {
	Vendor     string
	Item       string
	Variation  string
	Unassigned bool
}

// Aggregator folds sales records into per (vendor, item, variation) weekday totals.
type Aggregator struct {
	categoryKeywords []string
	itemKeywords     []string
	vendorPatterns   []VendorPattern
	resolver         *Resolver
}

// NewAggregator prepares keyword lists; resolver decides schedule-based tracking.
func NewAggregator(tracking TrackingConfig, resolver *Resolver) *Aggregator {
	a := &Aggregator{
		categoryKeywords: normalizeKeywords(tracking.CategoryKeywords),
		itemKeywords:     normalizeKeywords(tracking.ItemKeywords),
		resolver:         resolver,
	}
	for _, vp := range tracking.VendorPatterns {
		p := normalizeKey(vp.Pattern)
		if p == "" || strings.TrimSpace(vp.Vendor) == "" {
			continue
		}
		a.vendorPatterns = append(a.vendorPatterns, VendorPattern{Pattern: p, Vendor: vp.Vendor})
	}
	if a.resolver == nil {
		a.resolver = NewResolver(nil)
	}
	return a
}

// VendorFor returns the record's vendor, inferring it from the item name when blank.
// An empty string means no vendor could be found.
func (a *Aggregator) VendorFor(rec domain.SalesRecord) string {
	if strings.TrimSpace(rec.VendorName) != "" {
		return rec.VendorName
	}
	item := normalizeKey(rec.ItemName)
	for _, vp := range a.vendorPatterns {
		if strings.Contains(item, vp.Pattern) {
			return vp.Vendor
		}
	}
	return ""
}

// IsTracked reports whether a record (with its effective vendor) matters for ordering.
func (a *Aggregator) IsTracked(rec domain.SalesRecord, vendor string) bool {
	if containsAny(normalizeKey(rec.Category), a.categoryKeywords) {
		return true
	}
	if containsAny(normalizeKey(rec.ItemName), a.itemKeywords) {
		return true
	}
	return vendor != "" && a.resolver.HasDeliveryDays(vendor)
}

// Aggregate returns groups sorted by vendor, item and variation, plus the
// number of distinct calendar days seen across all records.
func (a *Aggregator) Aggregate(records []domain.SalesRecord) ([]domain.WeekdayAggregate, int) {
	days := make(map[string]struct{})
	groups := make(map[groupKey]*domain.WeekdayAggregate)

	for _, rec := range records {
		days[rec.Date.Format("2006-01-02")] = struct{}{}

		vendor := a.VendorFor(rec)
		if !a.IsTracked(rec, vendor) {
			continue
		}
		key := groupKey{Vendor: vendor, Item: rec.ItemName, Variation: rec.VariationName}
		if vendor == "" {
			key.Vendor = domain.UnassignedVendor
			key.Unassigned = true
		}
		g, ok := groups[key]
		if !ok {
			g = &domain.WeekdayAggregate{
				VendorName:    key.Vendor,
				IsUnassigned:  key.Unassigned,
				ItemName:      key.Item,
				VariationName: key.Variation,
			}
			groups[key] = g
		}
		if g.Category == "" {
			g.Category = rec.Category
		}

		qty := rec.QuantitySold
		if qty < 0 || math.IsNaN(qty) {
			qty = 0
		}
		g.TotalQuantity += qty
		g.TotalRevenue += rec.GrossRevenueMinor
		g.ByWeekday[int(rec.Date.Weekday())] += qty
	}

	distinctDays := len(days)
	weeks := math.Max(1, math.Ceil(float64(distinctDays)/7))

	out := make([]domain.WeekdayAggregate, 0, len(groups))
	for _, g := range groups {
		if distinctDays > 0 {
			g.AveragePerDay = g.TotalQuantity / float64(distinctDays)
		}
		g.AveragePerWeek = g.TotalQuantity / weeks
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].IsUnassigned != out[j].IsUnassigned {
			return !out[i].IsUnassigned
		}
		if out[i].VendorName != out[j].VendorName {
			return out[i].VendorName < out[j].VendorName
		}
		if out[i].ItemName != out[j].ItemName {
			return out[i].ItemName < out[j].ItemName
		}
		return out[i].VariationName < out[j].VariationName
	})

	return out, distinctDays
}
