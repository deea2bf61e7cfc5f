package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"cmdb-sync/core/reconcile"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is a header-keyed set of rows.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// ReadCSV parses a CSV document whose first row is the header.
// A leading UTF-8 or UTF-16 byte order mark is honoured and stripped.
func ReadCSV(r io.Reader) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Require checks that every named column is present.
func (t *Table) Require(columns ...string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		present[col] = true
	}

	var missing []string
	for _, col := range columns {
		if col != "" && !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Devices validates the device columns and converts the rows.
func (t *Table) Devices(f reconcile.Fields) ([]DeviceRecord, int, error) {
	if err := t.Require(f.DeviceColumns()...); err != nil {
		return nil, 0, err
	}
	devices, skipped := DevicesFromRows(t.Rows, f)
	return devices, skipped, nil
}

// Locations validates the location columns and converts the rows.
func (t *Table) Locations(f reconcile.Fields) ([]LocationRecord, int, error) {
	if err := t.Require(f.LocationColumns()...); err != nil {
		return nil, 0, err
	}
	locations, skipped := LocationsFromRows(t.Rows, f)
	return locations, skipped, nil
}
