// Package export renders roster and fee-ledger tables as downloadable
// CSV and PDF documents.
package export

import "fmt"

// Table is an ordered tabular document. Row cells align with Columns by
// position; a ragged row is a rendering error, not a blank cell.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %q has no columns", t.Title)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table %q row %d has %d cells, want %d", t.Title, i, len(row), len(t.Columns))
		}
	}
	return nil
}
