package roster

import (
	"fmt"
)

// Normalize reshapes positional rows into team sets.
//
// Empty rows are skipped. Cells missing from short rows read as empty. Unit
// cells are consumed in positional order, defense slots first; after each one
// the row's notes are applied and the group is emitted as soon as both sides
// hold three names. A row that adds no unit still updates the notes of the
// group being accumulated. A partial group left at the end is dropped.
//
// An invalid layout yields an empty book carrying one error diagnostic.
func Normalize(rows []RawRow, layout Layout) *Book {
	b := newBuilder()

	if err := layout.Validate(); err != nil {
		b.book.Diagnostics.AddError(CodeInvalidLayout, err.Error(), 0, "")
		return b.book
	}
	slots := layout.UnitSlots()
	width := layout.Width()

	for i, row := range rows {
		num := i + 1

		if row.IsEmpty() {
			b.book.Stats.EmptyRows++
			continue
		}

		b.book.Stats.Rows++

		if len(row) < width {
			b.book.Diagnostics.AddInfo(CodeShortRow,
				fmt.Sprintf("row has %d cells, layout reads up to %d; missing cells read as empty", len(row), width),
				num, "")
		}

		notes := row.Field(layout.Notes)
		added := 0

		for _, slot := range slots {
			if !b.unit(num, slot, row.Field(slot.Offset)) {
				continue
			}

			added++

			b.setNotes(notes)
			b.flush()
		}

		if added == 0 {
			b.setNotes(notes)
		}
	}

	return b.finish()
}
