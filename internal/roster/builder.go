package roster

import (
	"fmt"
)

// builder holds the single in-progress group.
type builder struct {
	book    *Book
	defense []string
	attack  []string
	notes   string
	lastRow int
}

func newBuilder() *builder {
	return &builder{book: &Book{}}
}

// unit appends name to its side. Placeholder labels are skipped. It reports
// whether the name was taken into the group.
func (b *builder) unit(row int, slot Slot, name string) bool {
	b.lastRow = row

	if name == "" {
		return false
	}

	if IsPlaceholder(name) {
		b.book.Stats.Placeholders++
		return false
	}

	side := &b.defense
	if slot.Side == SideAttack {
		side = &b.attack
	}

	if len(*side) == slotsPerSide {
		b.book.Stats.Overflow++
		b.book.Diagnostics.AddWarning(CodeSideOverflow,
			fmt.Sprintf("%s side already has %d units, dropped %q", slot.Side, slotsPerSide, name),
			row, slot.Name)

		return false
	}

	*side = append(*side, name)
	b.book.Stats.Units++

	return true
}

// setNotes overwrites the group notes with a non-empty, non-header value.
func (b *builder) setNotes(notes string) {
	if notes == "" || notes == NotesHeader {
		return
	}

	b.notes = notes
}

// flush emits the group once both sides are full.
func (b *builder) flush() {
	if len(b.defense) != slotsPerSide || len(b.attack) != slotsPerSide {
		return
	}

	var set TeamSet
	copy(set.Defense[:], b.defense)
	copy(set.Attack[:], b.attack)
	set.Notes = b.notes

	b.book.Sets = append(b.book.Sets, set)
	b.book.Stats.Sets++

	b.defense, b.attack, b.notes = nil, nil, ""
}

// finish drops any partial group and returns the book.
func (b *builder) finish() *Book {
	if len(b.defense) > 0 || len(b.attack) > 0 {
		b.book.Stats.Discarded++
		b.book.Diagnostics.AddInfo(CodeGroupDiscarded,
			fmt.Sprintf("input ended with a partial group (%d defense, %d attack)", len(b.defense), len(b.attack)),
			b.lastRow, "")
	}

	b.defense, b.attack, b.notes = nil, nil, ""

	return b.book
}
