package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"teamfinder/internal/roster"
)

// Format names a source encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the raw counter sheet at path. sheet only applies to workbooks.
func Load(path, sheet string) ([]roster.RawRow, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var rows []roster.RawRow

	switch format {
	case FormatXLSX:
		rows, err = ReadXLSX(path, sheet)
	default:
		rows, err = loadDelimited(path, format)
	}

	if err != nil {
		return nil, &ReadError{Path: path, Format: string(format), Err: err}
	}

	return rows, nil
}

func loadDelimited(path string, format Format) ([]roster.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatTSV {
		return ReadTSV(f)
	}

	return ReadCSV(f)
}

// LoadBook reads the sheet at path and normalizes it with layout.
func LoadBook(path, sheet string, layout roster.Layout) (*roster.Book, error) {
	rows, err := Load(path, sheet)
	if err != nil {
		return nil, err
	}

	book := roster.Normalize(rows, layout)
	if book.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("normalize %s: %w", path, book.Diagnostics.Error())
	}

	return book, nil
}
