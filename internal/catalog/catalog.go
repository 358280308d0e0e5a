// ABOUTME: Catalog store loading event rows from xlsx or csv at startup
// ABOUTME: Owns the immutable event list and its positional indexing
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/eventscout/eventscout/internal/models"
)

// Column names the catalog source must carry. Any additional columns are
// preserved and passed through to responses unmodified.
const (
	ColumnMonth       = "Month"
	ColumnDescription = "Description"
)

// Catalog holds the full event list, loaded once and immutable for the
// process lifetime. Safe for concurrent reads without locking.
type Catalog struct {
	events []models.Event
}

// LoadFile loads a catalog from path, dispatching on the file extension.
// Supported: .xlsx/.xlsm (spreadsheet) and .csv.
func LoadFile(path string) (*Catalog, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readSpreadsheet(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .xlsx, .xlsm or .csv)", ext)
	}
	if err != nil {
		return nil, err
	}

	return New(rows)
}

// New builds a catalog from raw tabular data. The first row is the header
// and must contain Month and Description columns.
func New(rows [][]string) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty: no header row")
	}

	header := rows[0]
	monthCol, descCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnMonth:
			monthCol = i
		case ColumnDescription:
			descCol = i
		}
	}
	if monthCol < 0 {
		return nil, fmt.Errorf("catalog header is missing the %q column", ColumnMonth)
	}
	if descCol < 0 {
		return nil, fmt.Errorf("catalog header is missing the %q column", ColumnDescription)
	}

	events := make([]models.Event, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			fields[name] = cell(row, i)
		}

		idx := len(events)
		events = append(events, models.Event{
			RecordID: fmt.Sprintf("evt_%03d_%s", idx, uuid.New().String()[:8]),
			Index:    idx,
			Month:    cell(row, monthCol),
			// Missing Description cells become "" before embedding.
			Description: cell(row, descCol),
			Fields:      fields,
		})
	}

	return &Catalog{events: events}, nil
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.events)
}

// Events returns all catalog rows in positional order. Callers must not
// mutate the returned slice.
func (c *Catalog) Events() []models.Event {
	return c.events
}

// Descriptions projects the Description column in positional order, for
// the startup embedding pass.
func (c *Catalog) Descriptions() []string {
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Description
	}
	return out
}

// Months returns the distinct non-empty Month values present, sorted.
func (c *Catalog) Months() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ev := range c.events {
		m := strings.TrimSpace(ev.Month)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// cell returns row[i] or "" when the row is short. Spreadsheet readers
// omit trailing empty cells, so short rows are normal.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}
