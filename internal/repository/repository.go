// internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// SalesRepository reads sales history for a date window.
type SalesRepository interface {
	// ListSalesRecords returns every record with start <= date <= end.
	ListSalesRecords(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error)
}

// SalesWriter persists imported sales lines.
type SalesWriter interface {
	InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error)
}

// SettingsRepository holds vendor schedule and pack-size configuration in declared order.
type SettingsRepository interface {
	GetVendorSchedules(ctx context.Context) ([]domain.VendorScheduleRule, error)
	GetPackSizes(ctx context.Context) ([]domain.PackSizeRule, error)
	ReplaceVendorSchedules(ctx context.Context, rules []domain.VendorScheduleRule) error
	ReplacePackSizes(ctx context.Context, rules []domain.PackSizeRule) error
}
