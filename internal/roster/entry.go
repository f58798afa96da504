package roster

import (
	"fmt"
	"strings"
)

// Entry is one unit cell in long format: the shape of the cleaned table.
type Entry struct {
	Team  string // "Defense" or "Attack"
	Slot  string // "Unit 1".."Unit 3"
	Unit  string
	Notes string
	Row   int // source row, 1-based; not written out
}

// Explode turns wide rows into one Entry per non-empty unit cell. Every entry
// of a row carries that row's notes cell. Placeholder labels are kept; Group
// filters them.
func Explode(rows []RawRow, layout Layout) []Entry {
	var entries []Entry

	slots := layout.UnitSlots()

	for i, row := range rows {
		if row.IsEmpty() {
			continue
		}

		notes := row.Field(layout.Notes)

		for _, slot := range slots {
			unit := row.Field(slot.Offset)
			if unit == "" {
				continue
			}

			entries = append(entries, Entry{
				Team:  slot.Side.String(),
				Slot:  slot.Label(),
				Unit:  unit,
				Notes: notes,
				Row:   i + 1,
			})
		}
	}

	return entries
}

// Group builds team sets from long-format entries with the same grouping
// rules as Normalize. Entries with an unknown Team label are reported and
// skipped.
func Group(entries []Entry) *Book {
	b := newBuilder()

	for i, e := range entries {
		row := e.Row
		if row == 0 {
			row = i + 1
		}

		side, ok := ParseSide(strings.TrimSpace(e.Team))
		if !ok {
			b.book.Diagnostics.AddWarning(CodeUnknownTeamLabel,
				fmt.Sprintf("unknown team label %q", e.Team), row, "")

			continue
		}

		slot := Slot{Name: strings.ToLower(side.String()), Side: side}

		b.unit(row, slot, strings.TrimSpace(e.Unit))
		b.setNotes(strings.TrimSpace(e.Notes))
		b.flush()
	}

	return b.finish()
}
