package sales_export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/HJantango/wild-octave-august-sub004/internal/pipeline"
	"github.com/rs/zerolog/log"
)

var _ pipeline.Pipeline = (*SalesExportPipeline)(nil)

// SalesExportPipeline reads per-day item sales CSV exports from the POS.
type SalesExportPipeline struct {
	config Config
}

// NewSalesExportPipeline creates a new sales export pipeline instance.
func NewSalesExportPipeline(cfg Config) *SalesExportPipeline {
	if len(cfg.FilenameDateLayouts) == 0 {
		cfg.FilenameDateLayouts = DefaultFilenameDateLayouts
	}
	return &SalesExportPipeline{config: cfg}
}

func (p *SalesExportPipeline) Name() string {
	return "sales_export"
}

// GetSnapshotDate finds the first date-looking token in the filename.
func (p *SalesExportPipeline) GetSnapshotDate(filename string) (time.Time, error) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, token := range filenameDatePattern.FindAllString(base, -1) {
		for _, layout := range p.config.FilenameDateLayouts {
			if len(token) != len(layout) {
				continue
			}
			if t, err := time.Parse(layout, token); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("filename %s does not contain a snapshot date", filename)
}

// Validate performs basic validation on the input file.
func (p *SalesExportPipeline) Validate(inputFile string) error {
	info, err := os.Stat(inputFile)
	if err != nil {
		return fmt.Errorf("cannot stat input file %s: %w", inputFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, expected file", inputFile)
	}
	ext := strings.ToLower(filepath.Ext(inputFile))
	if ext != ".csv" {
		return fmt.Errorf("unsupported file extension %s for %s (only CSV supported)", ext, inputFile)
	}
	return nil
}

func (p *SalesExportPipeline) Transform(ctx context.Context, inputFile string) ([]domain.SalesRecord, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	snapshot, snapErr := p.GetSnapshotDate(inputFile)
	return p.Parse(ctx, file, snapshot, snapErr == nil)
}

// Parse reads an export from r. Rows without a usable date use snapshot when hasSnapshot
// is set and are otherwise skipped. Rows with a blank item name are skipped.
func (p *SalesExportPipeline) Parse(ctx context.Context, r io.Reader, snapshot time.Time, hasSnapshot bool) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.SalesRecord{}, nil
		}
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	idxDate := colIndex(header, dateColumns...)
	idxItem := colIndex(header, itemColumns...)
	idxVariation := colIndex(header, variationColumns...)
	idxVendor := colIndex(header, vendorColumns...)
	idxCategory := colIndex(header, categoryColumns...)
	idxQty := colIndex(header, quantityColumns...)
	idxGross := colIndex(header, grossColumns...)

	if idxItem < 0 || idxQty < 0 {
		return nil, fmt.Errorf("missing required columns (item, quantity) in header %v", header)
	}

	if hasSnapshot {
		snapshot = time.Date(snapshot.Year(), snapshot.Month(), snapshot.Day(), 0, 0, 0, 0, time.UTC)
	}

	var (
		records = make([]domain.SalesRecord, 0)
		skipped int
		line    = 1
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading line %d: %w", line+1, err)
		}
		line++

		get := func(idx int) string {
			if idx < 0 || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		item := get(idxItem)
		if item == "" {
			skipped++
			continue
		}

		date, ok := ParseRowDate(get(idxDate))
		if !ok {
			if !hasSnapshot {
				skipped++
				continue
			}
			date = snapshot
		}

		qty, ok := ParseQuantity(get(idxQty))
		if !ok {
			log.Warn().Int("line", line).Str("value", get(idxQty)).Msg("sales export: unparseable quantity, using 0")
		}
		gross, ok := ParseMoneyMinor(get(idxGross))
		if !ok {
			log.Warn().Int("line", line).Str("value", get(idxGross)).Msg("sales export: unparseable gross sales, using 0")
		}

		vendor := get(idxVendor)
		if vendor == "" {
			vendor = p.config.DefaultVendor
		}

		records = append(records, domain.SalesRecord{
			Date:              date,
			ItemName:          item,
			VariationName:     get(idxVariation),
			VendorName:        vendor,
			Category:          get(idxCategory),
			QuantitySold:      qty,
			GrossRevenueMinor: gross,
		})
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("parsed", len(records)).Msg("sales export: skipped rows without item or date")
	}
	return records, nil
}
