package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"teamfinder/internal/roster"
)

// cleanedHeader is the column order of the cleaned long-format table.
var cleanedHeader = []string{"Team", "Slot", "Unit", "Notes"}

// WriteCleaned writes entries as a CSV table with a Team,Slot,Unit,Notes header.
func WriteCleaned(w io.Writer, entries []roster.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(cleanedHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		if err := cw.Write([]string{e.Team, e.Slot, e.Unit, e.Notes}); err != nil {
			return fmt.Errorf("write entry for %q: %w", e.Unit, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCleaned reads a table written by WriteCleaned. Columns are located by
// header name, so extra columns and a different order are accepted.
func ReadCleaned(r io.Reader) ([]roster.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range cleanedHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}

	field := func(rec []string, name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}

		return rec[i]
	}

	var entries []roster.Entry

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parse line %d: %w", line, err)
		}

		entries = append(entries, roster.Entry{
			Team:  field(rec, "Team"),
			Slot:  field(rec, "Slot"),
			Unit:  field(rec, "Unit"),
			Notes: field(rec, "Notes"),
			Row:   line,
		})
	}

	return entries, nil
}

// LoadCleanedBook reads a cleaned table from path and groups it.
func LoadCleanedBook(path string) (*roster.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Format: "cleaned", Err: err}
	}
	defer f.Close()

	entries, err := ReadCleaned(f)
	if err != nil {
		return nil, &ReadError{Path: path, Format: "cleaned", Err: err}
	}

	return roster.Group(entries), nil
}

// WriteUnits writes one name per line.
func WriteUnits(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)

	for _, name := range names {
		if _, err := bw.WriteString(name + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
