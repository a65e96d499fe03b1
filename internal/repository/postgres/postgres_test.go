package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/config"
	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func TestConnString(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "shop", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", ConnString(cfg))
}

func TestBuildSalesUpsert(t *testing.T) {
	d := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	query, args := buildSalesUpsert([]domain.SalesRecord{
		{Date: d, ItemName: " Latte ", VariationName: "Large", QuantitySold: 2, GrossRevenueMinor: 1100},
		{Date: d, ItemName: "Muffin", VendorName: "Sunrise", Category: "Bakery", QuantitySold: 1, GrossRevenueMinor: 450},
	})

	assert.Contains(t, query, "($1, $2, $3, $4, $5, $6, $7), ($8, $9, $10, $11, $12, $13, $14)")
	assert.Contains(t, query, "ON CONFLICT (sale_date, item_name, variation_name, vendor_name)")
	require.Len(t, args, 14)
	assert.Equal(t, "2024-03-04", args[0])
	assert.Equal(t, "Latte", args[1])
	assert.Equal(t, "Sunrise", args[10])
	assert.Equal(t, int64(450), args[13])
}

func TestMergeSalesRecords(t *testing.T) {
	d := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	merged := mergeSalesRecords([]domain.SalesRecord{
		{Date: d, ItemName: "Latte", QuantitySold: 2, GrossRevenueMinor: 1000},
		{Date: d, ItemName: "Latte ", QuantitySold: 1, GrossRevenueMinor: 500, Category: "Cafe"},
		{Date: d.AddDate(0, 0, 1), ItemName: "Latte", QuantitySold: 4},
		{Date: d, ItemName: "  "},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, 3.0, merged[0].QuantitySold)
	assert.Equal(t, int64(1500), merged[0].GrossRevenueMinor)
	assert.Equal(t, "Cafe", merged[0].Category)
	assert.Equal(t, 4.0, merged[1].QuantitySold)
}

func TestVendorScheduleRowRoundTrip(t *testing.T) {
	wd := 3
	rule := domain.VendorScheduleRule{
		VendorKey:        "acme",
		DisplayName:      "Acme",
		DeliveryWeekdays: []int{1, 4},
		OrderDeadline:    "11:00 AM",
		OrderWeekday:     &wd,
		SameDayDelivery:  true,
	}

	args := scheduleArgs(2, rule)
	require.Len(t, args, 7)
	assert.Equal(t, 2, args[0])
	assert.Equal(t, pq.Int64Array{1, 4}, args[3])
	assert.Equal(t, sql.NullInt64{Int64: 3, Valid: true}, args[5])

	row := vendorScheduleRow{
		VendorKey:        "acme",
		DisplayName:      "Acme",
		DeliveryWeekdays: pq.Int64Array{1, 4},
		OrderDeadline:    "11:00 AM",
		OrderWeekday:     sql.NullInt64{Int64: 3, Valid: true},
		SameDayDelivery:  true,
	}
	assert.Equal(t, rule, row.toDomain())

	noWeekday := vendorScheduleRow{VendorKey: "x"}.toDomain()
	assert.Nil(t, noWeekday.OrderWeekday)
	assert.Equal(t, []int{}, noWeekday.DeliveryWeekdays)
}
