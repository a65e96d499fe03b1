package sales_export

// Config controls how POS sales exports are read.
type Config struct {
	// DefaultVendor is applied to rows whose vendor column is blank or missing.
	DefaultVendor string
	// FilenameDateLayouts are tried in order when looking for a snapshot date in a filename.
	FilenameDateLayouts []string
}

// DefaultFilenameDateLayouts are the filename date formats POS exports use.
var DefaultFilenameDateLayouts = []string{"2006-01-02", "20060102"}

// rowDateLayouts are accepted in the date column.
var rowDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04",
}

// Header aliases, compared after normalizeColumnName.
var (
	dateColumns      = []string{"date", "sale date", "day", "transaction date"}
	itemColumns      = []string{"item", "item name", "product", "product name"}
	variationColumns = []string{"variation", "variation name", "variant", "option"}
	vendorColumns    = []string{"vendor", "vendor name", "supplier", "supplier name"}
	categoryColumns  = []string{"category", "category name", "reporting category"}
	quantityColumns  = []string{"qty", "quantity", "quantity sold", "items sold", "units sold", "count"}
	grossColumns     = []string{"gross sales", "gross revenue", "gross", "net sales", "revenue", "sales"}
)
