// internal/domain/models.go
package domain

import "time"

// UnassignedVendor is the synthetic vendor bucket for tracked items without a vendor.
const UnassignedVendor = "unassigned"

// SalesRecord is a single per-day sales line produced by the POS export.
type SalesRecord struct {
	Date              time.Time `json:"date" db:"sale_date"`
	ItemName          string    `json:"item_name" db:"item_name"`
	VariationName     string    `json:"variation_name" db:"variation_name"`
	VendorName        string    `json:"vendor_name" db:"vendor_name"`
	Category          string    `json:"category" db:"category"`
	QuantitySold      float64   `json:"quantity_sold" db:"quantity_sold"`
	GrossRevenueMinor int64     `json:"gross_revenue_minor" db:"gross_revenue_minor"`
}

// VendorScheduleRule describes when a vendor delivers and when orders are due.
type VendorScheduleRule struct {
	VendorKey        string `json:"vendor_key" db:"vendor_key"`
	DisplayName      string `json:"display_name,omitempty" db:"display_name"`
	DeliveryWeekdays []int  `json:"delivery_weekdays" db:"-"`
	OrderDeadline    string `json:"order_deadline,omitempty" db:"order_deadline"`
	OrderWeekday     *int   `json:"order_weekday,omitempty" db:"order_weekday"`
	// SameDayDelivery lets a delivery on today's weekday count as zero days away.
	SameDayDelivery bool `json:"same_day_delivery" db:"same_day_delivery"`
}

// Name returns the display name, falling back to the vendor key.
func (r VendorScheduleRule) Name() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.VendorKey
}

// PackSizeRule maps an item name pattern to the number of sellable units per vendor unit.
type PackSizeRule struct {
	ItemPattern string `json:"item_pattern" db:"item_pattern"`
	PackSize    int    `json:"pack_size" db:"pack_size"`
	UnitName    string `json:"unit_name" db:"unit_name"`
}

// StockLevel is a caller supplied on-hand count for one item.
type StockLevel struct {
	ItemID string `json:"item_id"`
	OnHand int    `json:"on_hand"`
}

// ItemID builds the stock identifier for an item and optional variation.
func ItemID(itemName, variationName string) string {
	if variationName == "" {
		return itemName
	}
	return itemName + "|" + variationName
}
