package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"teamfinder/internal/roster"
)

// ReadXLSX reads every row of one sheet of an Excel workbook. An empty sheet
// name selects the workbook's active sheet. Cells are read as displayed text;
// merged cells only carry their value in the top-left cell, which is what the
// column layout expects.
func ReadXLSX(path, sheet string) ([]roster.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) ([]roster.RawRow, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}

	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	rows := make([]roster.RawRow, len(grid))
	for i, cells := range grid {
		rows[i] = roster.RawRow(cells)
	}

	return rows, nil
}
