package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/HJantango/wild-octave-august-sub004/internal/repository"
)

const salesInsertBatchSize = 500

// SalesRepository reads and writes the sales_records table.
type SalesRepository struct {
	db *DB
}

func NewSalesRepository(db *DB) *SalesRepository {
	return &SalesRepository{db: db}
}

var (
	_ repository.SalesRepository = (*SalesRepository)(nil)
	_ repository.SalesWriter     = (*SalesRepository)(nil)
)

func (r *SalesRepository) ListSalesRecords(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error) {
	query := `
		SELECT
			sale_date,
			item_name,
			variation_name,
			vendor_name,
			category,
			quantity_sold,
			gross_revenue_minor
		FROM sales_records
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date, item_name, variation_name, vendor_name
	`

	records := make([]domain.SalesRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, start.Format("2006-01-02"), end.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("error listing sales records: %w", err)
	}

	return records, nil
}

// InsertSalesRecords upserts records in batches inside a single transaction.
// Re-importing the same export replaces quantities rather than doubling them.
func (r *SalesRepository) InsertSalesRecords(ctx context.Context, records []domain.SalesRecord) (int, error) {
	records = mergeSalesRecords(records)
	if len(records) == 0 {
		return 0, nil
	}

	written := 0
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += salesInsertBatchSize {
			end := start + salesInsertBatchSize
			if end > len(records) {
				end = len(records)
			}

			query, args := buildSalesUpsert(records[start:end])
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("error inserting sales batch at %d: %w", start, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				written += int(n)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

type salesKey struct {
	date, item, variation, vendor string
}

// mergeSalesRecords sums lines sharing a conflict key; one INSERT cannot update the same row twice.
func mergeSalesRecords(records []domain.SalesRecord) []domain.SalesRecord {
	index := make(map[salesKey]int, len(records))
	out := make([]domain.SalesRecord, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.ItemName) == "" {
			continue
		}
		k := salesKey{
			date:      rec.Date.Format("2006-01-02"),
			item:      strings.TrimSpace(rec.ItemName),
			variation: strings.TrimSpace(rec.VariationName),
			vendor:    strings.TrimSpace(rec.VendorName),
		}
		if i, ok := index[k]; ok {
			out[i].QuantitySold += rec.QuantitySold
			out[i].GrossRevenueMinor += rec.GrossRevenueMinor
			if out[i].Category == "" {
				out[i].Category = rec.Category
			}
			continue
		}
		index[k] = len(out)
		out = append(out, rec)
	}
	return out
}

func buildSalesUpsert(records []domain.SalesRecord) (string, []interface{}) {
	const cols = 7

	var sb strings.Builder
	sb.WriteString(`INSERT INTO sales_records
		(sale_date, item_name, variation_name, vendor_name, category, quantity_sold, gross_revenue_minor)
		VALUES `)

	args := make([]interface{}, 0, len(records)*cols)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)

		args = append(args,
			rec.Date.Format("2006-01-02"),
			strings.TrimSpace(rec.ItemName),
			strings.TrimSpace(rec.VariationName),
			strings.TrimSpace(rec.VendorName),
			strings.TrimSpace(rec.Category),
			rec.QuantitySold,
			rec.GrossRevenueMinor,
		)
	}

	sb.WriteString(`
		ON CONFLICT (sale_date, item_name, variation_name, vendor_name)
		DO UPDATE SET
			category = EXCLUDED.category,
			quantity_sold = EXCLUDED.quantity_sold,
			gross_revenue_minor = EXCLUDED.gross_revenue_minor,
			updated_at = NOW()`)

	return sb.String(), args
}
