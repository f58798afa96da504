package roster

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned by Layout.Validate.
var ErrInvalidLayout = errors.New("invalid column layout")

const slotsPerSide = 3

// Layout maps the sheet's slots to zero-based column offsets.
type Layout struct {
	Defense []int `yaml:"defense"`
	Attack  []int `yaml:"attack"`
	Notes   int   `yaml:"notes"`
}

// Slot is one named, positioned cell of a block.
type Slot struct {
	Name   string
	Side   Side
	Index  int // 0..2 within the side
	Offset int
}

// Label returns the per-side slot label written to the cleaned table.
func (s Slot) Label() string {
	return fmt.Sprintf("Unit %d", s.Index+1)
}

// DefaultLayout returns the offsets of the merged-cell counter sheet:
// defense cells every third column, attack cells every fourth, notes last.
func DefaultLayout() Layout {
	return Layout{
		Defense: []int{0, 3, 6},
		Attack:  []int{9, 13, 17},
		Notes:   21,
	}
}

// UnitSlots returns the six unit slots in positional order, defense first.
func (l Layout) UnitSlots() []Slot {
	slots := make([]Slot, 0, len(l.Defense)+len(l.Attack))

	for i, off := range l.Defense {
		slots = append(slots, Slot{Name: fmt.Sprintf("defense%d", i+1), Side: SideDefense, Index: i, Offset: off})
	}

	for i, off := range l.Attack {
		slots = append(slots, Slot{Name: fmt.Sprintf("attack%d", i+1), Side: SideAttack, Index: i, Offset: off})
	}

	return slots
}

// Width returns the number of columns a row needs to supply every slot.
func (l Layout) Width() int {
	width := l.Notes + 1
	for _, s := range l.UnitSlots() {
		if s.Offset+1 > width {
			width = s.Offset + 1
		}
	}

	return width
}

// Validate checks that each side has three offsets and that all seven
// offsets are non-negative and distinct.
func (l Layout) Validate() error {
	if len(l.Defense) != slotsPerSide {
		return fmt.Errorf("%w: need %d defense offsets, got %d", ErrInvalidLayout, slotsPerSide, len(l.Defense))
	}

	if len(l.Attack) != slotsPerSide {
		return fmt.Errorf("%w: need %d attack offsets, got %d", ErrInvalidLayout, slotsPerSide, len(l.Attack))
	}

	seen := map[int]string{}

	check := func(name string, off int) error {
		if off < 0 {
			return fmt.Errorf("%w: %s offset %d is negative", ErrInvalidLayout, name, off)
		}

		if other, ok := seen[off]; ok {
			return fmt.Errorf("%w: %s and %s share column %d", ErrInvalidLayout, other, name, off)
		}

		seen[off] = name

		return nil
	}

	for _, s := range l.UnitSlots() {
		if err := check(s.Name, s.Offset); err != nil {
			return err
		}
	}

	return check("notes", l.Notes)
}
