package vendor_order

import "github.com/HJantango/wild-octave-august-sub004/internal/domain"

// TimeOfDaySplit is a fixed share of daily demand attributed to part of the day.
type TimeOfDaySplit struct {
	Label string  `json:"label"`
	Share float64 `json:"share"`
}

const timeOfDayNote = "Heuristic estimate from fixed percentage splits; not measured intra-day sales."

// DefaultTimeOfDaySplits returns morning 35%, midday 40%, afternoon 25%.
func DefaultTimeOfDaySplits() []TimeOfDaySplit {
	return []TimeOfDaySplit{
		{Label: "morning", Share: 0.35},
		{Label: "midday", Share: 0.40},
		{Label: "afternoon", Share: 0.25},
	}
}

// EstimateTimeOfDay applies splits to each vendor's average daily quantity.
// Items are grouped in first-seen order, so vendor-ordered input keeps vendor order.
// Shares are normalized to sum to 1; an unusable split list falls back to the defaults.
func EstimateTimeOfDay(items []domain.ItemRecommendation, splits []TimeOfDaySplit) domain.TimeOfDayEstimate {
	splits = usableSplits(splits)

	var total float64
	for _, s := range splits {
		total += s.Share
	}

	order := make([]string, 0)
	perDay := make(map[string]float64)
	for _, it := range items {
		if _, ok := perDay[it.VendorName]; !ok {
			order = append(order, it.VendorName)
		}
		perDay[it.VendorName] += it.AveragePerDay
	}

	est := domain.TimeOfDayEstimate{
		Estimated: true,
		Method:    "fixed-split",
		Note:      timeOfDayNote,
		Vendors:   make([]domain.VendorTimeOfDay, 0, len(order)),
	}
	for _, v := range order {
		avg := perDay[v]
		vt := domain.VendorTimeOfDay{
			VendorName:    v,
			AveragePerDay: roundQty(avg),
			Buckets:       make([]domain.TimeOfDayBucket, 0, len(splits)),
		}
		for _, s := range splits {
			share := s.Share / total
			vt.Buckets = append(vt.Buckets, domain.TimeOfDayBucket{
				Label:    s.Label,
				Share:    roundFloat(share, 2),
				Quantity: roundQty(avg * share),
			})
		}
		est.Vendors = append(est.Vendors, vt)
	}
	return est
}

func usableSplits(splits []TimeOfDaySplit) []TimeOfDaySplit {
	var total float64
	out := make([]TimeOfDaySplit, 0, len(splits))
	for _, s := range splits {
		if s.Share > 0 {
			out = append(out, s)
			total += s.Share
		}
	}
	if len(out) == 0 || total <= 0 {
		return DefaultTimeOfDaySplits()
	}
	return out
}
