package vendor_order

import "math"

// OrderQuantityCalculator turns average demand into a net order quantity.
type OrderQuantityCalculator struct {
	maxBuffer float64
}

// NewOrderQuantityCalculator creates a calculator capped at MaxBufferFraction.
func NewOrderQuantityCalculator() *OrderQuantityCalculator {
	return &OrderQuantityCalculator{maxBuffer: MaxBufferFraction}
}

// ClampBuffer bounds a buffer fraction to [0, MaxBufferFraction].
func ClampBuffer(buffer float64) float64 {
	if math.IsNaN(buffer) || buffer < 0 {
		return 0
	}
	return math.Min(buffer, MaxBufferFraction)
}

// Calculate computes rawNeeded = ceil(avg * days * (1+buffer)) and
// suggested = max(0, rawNeeded - onHand). It is pure.
func (c *OrderQuantityCalculator) Calculate(avgPerDay float64, days int, buffer float64, onHand int) OrderQuantity {
	q := OrderQuantity{}

	// 1. Clamp caller inputs to valid bounds
	q.Buffer = math.Min(ClampBuffer(buffer), c.maxBuffer)
	if math.IsNaN(avgPerDay) || avgPerDay < 0 {
		avgPerDay = 0
	}
	if days < 0 {
		days = 0
	}
	if onHand < 0 {
		onHand = 0
	}

	// 2. Projected demand until the next delivery, with safety buffer
	projected := avgPerDay * float64(days) * (1 + q.Buffer)
	q.RawNeeded = ceilTolerant(projected)

	// 3. Net of stock already on hand
	q.Suggested = int(math.Max(0, float64(q.RawNeeded-onHand)))

	return q
}
