package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVWriter renders a Table as CSV, columns first.
type CSVWriter struct{}

// NewCSVWriter constructs a CSVWriter.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Render encodes the table. The title is not part of the CSV output; the
// filename carries it.
func (w *CSVWriter) Render(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write csv columns: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
