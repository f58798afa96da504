package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"teamfinder/internal/roster"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a headerless comma-separated table. Rows may have different
// lengths.
func ReadCSV(r io.Reader) ([]roster.RawRow, error) {
	return readDelimited(r, ',')
}

// ReadTSV reads a headerless tab-separated table.
func ReadTSV(r io.Reader) ([]roster.RawRow, error) {
	return readDelimited(r, '\t')
}

func readDelimited(r io.Reader, comma rune) ([]roster.RawRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []roster.RawRow

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parse row %d: %w", len(rows)+1, err)
		}

		if len(rows) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], utf8BOM)
		}

		rows = append(rows, roster.RawRow(record))
	}

	return rows, nil
}
