package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository"
	"github.com/lib/pq"
)

// SettingsRepository stores vendor schedules and pack sizes in declared order (position).
type SettingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

type vendorScheduleRow struct {
	VendorKey        string        `db:"vendor_key"`
	DisplayName      string        `db:"display_name"`
	DeliveryWeekdays pq.Int64Array `db:"delivery_weekdays"`
	OrderDeadline    string        `db:"order_deadline"`
	OrderWeekday     sql.NullInt64 `db:"order_weekday"`
	SameDayDelivery  bool          `db:"same_day_delivery"`
}

func (row vendorScheduleRow) toDomain() domain.VendorScheduleRule {
	rule := domain.VendorScheduleRule{
		VendorKey:        row.VendorKey,
		DisplayName:      row.DisplayName,
		DeliveryWeekdays: make([]int, 0, len(row.DeliveryWeekdays)),
		OrderDeadline:    row.OrderDeadline,
		SameDayDelivery:  row.SameDayDelivery,
	}
	for _, d := range row.DeliveryWeekdays {
		rule.DeliveryWeekdays = append(rule.DeliveryWeekdays, int(d))
	}
	if row.OrderWeekday.Valid {
		wd := int(row.OrderWeekday.Int64)
		rule.OrderWeekday = &wd
	}
	return rule
}

func scheduleArgs(position int, rule domain.VendorScheduleRule) []interface{} {
	days := make(pq.Int64Array, 0, len(rule.DeliveryWeekdays))
	for _, d := range rule.DeliveryWeekdays {
		days = append(days, int64(d))
	}

	var orderWeekday sql.NullInt64
	if rule.OrderWeekday != nil {
		orderWeekday = sql.NullInt64{Int64: int64(*rule.OrderWeekday), Valid: true}
	}

	return []interface{}{
		position,
		rule.VendorKey,
		rule.DisplayName,
		days,
		rule.OrderDeadline,
		orderWeekday,
		rule.SameDayDelivery,
	}
}

func (r *SettingsRepository) GetVendorSchedules(ctx context.Context) ([]domain.VendorScheduleRule, error) {
	query := `
		SELECT vendor_key, display_name, delivery_weekdays, order_deadline, order_weekday, same_day_delivery
		FROM vendor_schedules
		ORDER BY position, id
	`

	var rows []vendorScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error getting vendor schedules: %w", err)
	}

	rules := make([]domain.VendorScheduleRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, row.toDomain())
	}
	return rules, nil
}

func (r *SettingsRepository) GetPackSizes(ctx context.Context) ([]domain.PackSizeRule, error) {
	query := `
		SELECT item_pattern, pack_size, unit_name
		FROM pack_sizes
		ORDER BY position, id
	`

	rules := make([]domain.PackSizeRule, 0)
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, fmt.Errorf("error getting pack sizes: %w", err)
	}
	return rules, nil
}

func (r *SettingsRepository) ReplaceVendorSchedules(ctx context.Context, rules []domain.VendorScheduleRule) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vendor_schedules`); err != nil {
			return fmt.Errorf("error clearing vendor schedules: %w", err)
		}

		query := `
			INSERT INTO vendor_schedules
				(position, vendor_key, display_name, delivery_weekdays, order_deadline, order_weekday, same_day_delivery)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for i, rule := range rules {
			if _, err := tx.ExecContext(ctx, query, scheduleArgs(i, rule)...); err != nil {
				return fmt.Errorf("error inserting vendor schedule %q: %w", rule.VendorKey, err)
			}
		}
		return nil
	})
}

func (r *SettingsRepository) ReplacePackSizes(ctx context.Context, rules []domain.PackSizeRule) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pack_sizes`); err != nil {
			return fmt.Errorf("error clearing pack sizes: %w", err)
		}

		query := `
			INSERT INTO pack_sizes (position, item_pattern, pack_size, unit_name)
			VALUES ($1, $2, $3, $4)
		`
		for i, rule := range rules {
			if _, err := tx.ExecContext(ctx, query, i, rule.ItemPattern, rule.PackSize, rule.UnitName); err != nil {
				return fmt.Errorf("error inserting pack size %q: %w", rule.ItemPattern, err)
			}
		}
		return nil
	})
}
