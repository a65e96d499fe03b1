package drive

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// convertXLSXToCSV writes one sheet of an XLSX workbook as CSV. The first sheet whose
// name contains "sales" is used, otherwise the first sheet.
func convertXLSXToCSV(xlsxPath, csvPath string) error {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("failed to open xlsx file %s: %w", xlsxPath, err)
	}
	defer f.Close()

	sheet := pickSheet(f.GetSheetList())
	if sheet == "" {
		return fmt.Errorf("xlsx file %s has no sheets", xlsxPath)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read rows from sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	out, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", csvPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("failed to read row from %s: %w", xlsxPath, err)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row to %s: %w", csvPath, err)
		}
	}
	if err := rows.Error(); err != nil {
		return fmt.Errorf("error iterating rows in %s: %w", xlsxPath, err)
	}

	w.Flush()
	return w.Error()
}

func pickSheet(sheets []string) string {
	for _, s := range sheets {
		if strings.Contains(strings.ToLower(s), "sales") {
			return s
		}
	}
	if len(sheets) == 0 {
		return ""
	}
	return sheets[0]
}
