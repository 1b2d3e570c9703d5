// Package sheet reads and writes the parts spreadsheet in the formats the
// label generator accepts: CSV, TSV and XLSX.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row is one part entry. The first five fields come straight from the
// spreadsheet; the rest are filled during generation (or by the URL
// shortener tool) and are only written back on export.
type Row struct {
	Name        string
	Description string
	TopSymbol   string
	SideSymbol  string
	ReorderURL  string

	TopIcon  string
	SideIcon string
	QRSVG    string
	Label    string
	ShortURL string
}

var (
	requiredColumns = []string{"name", "description"}
	baseColumns     = []string{"name", "description", "top_symbol", "side_symbol", "reorder_url"}
	extraColumns    = []string{"top_icon", "side_icon", "qr_svg", "label", "short_url"}
)

func (r Row) field(column string) string {
	switch column {
	case "name":
		return r.Name
	case "description":
		return r.Description
	case "top_symbol":
		return r.TopSymbol
	case "side_symbol":
		return r.SideSymbol
	case "reorder_url":
		return r.ReorderURL
	case "top_icon":
		return r.TopIcon
	case "side_icon":
		return r.SideIcon
	case "qr_svg":
		return r.QRSVG
	case "label":
		return r.Label
	case "short_url":
		return r.ShortURL
	}
	return ""
}

func (r *Row) setField(column, value string) {
	switch column {
	case "name":
		r.Name = value
	case "description":
		r.Description = value
	case "top_symbol":
		r.TopSymbol = value
	case "side_symbol":
		r.SideSymbol = value
	case "reorder_url":
		r.ReorderURL = value
	case "top_icon":
		r.TopIcon = value
	case "side_icon":
		r.SideIcon = value
	case "qr_svg":
		r.QRSVG = value
	case "label":
		r.Label = value
	case "short_url":
		r.ShortURL = value
	}
}

// Parse reads a parts spreadsheet, dispatching on the file extension.
// name and description columns are required; everything else is optional.
func Parse(path string) ([]Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return parseCSV(path, ',')
	case ".tsv":
		return parseCSV(path, '\t')
	case ".xls", ".xlsx":
		return parseXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Write writes rows out in the format implied by the extension. The five
// spreadsheet columns are always written; generated columns appear only when
// at least one row holds a value for them.
func Write(path string, rows []Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}
	columns := activeColumns(rows)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return writeCSV(path, rows, columns, ',')
	case ".tsv":
		return writeCSV(path, rows, columns, '\t')
	case ".xls", ".xlsx":
		return writeXLSX(path, rows, columns)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

func activeColumns(rows []Row) []string {
	columns := append([]string(nil), baseColumns...)
	for _, extra := range extraColumns {
		for _, row := range rows {
			if row.field(extra) != "" {
				columns = append(columns, extra)
				break
			}
		}
	}
	return columns
}

// rowsFromTable converts a raw header+records table into Rows. Header names
// are matched case-insensitively; cells are whitespace-trimmed; unknown
// columns are ignored and short records read as empty cells.
func rowsFromTable(path string, table [][]string) ([]Row, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingHeader)
	}
	index := make(map[string]int, len(table[0]))
	for i, column := range table[0] {
		index[strings.ToLower(strings.TrimSpace(column))] = i
	}
	var missing []string
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", path, ErrMissingColumns, strings.Join(missing, ", "))
	}

	rows := make([]Row, 0, len(table)-1)
	for _, record := range table[1:] {
		var row Row
		for column, i := range index {
			if i < len(record) {
				row.setField(column, strings.TrimSpace(record[i]))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
