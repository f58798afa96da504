package roster

import (
	"strings"

	"teamfinder/internal/common"
)

// TeamSet pairs a defense roster with the attack roster that beats it.
// Defense order is kept for display; matching treats it as a set.
type TeamSet struct {
	Defense [3]string `json:"defense" yaml:"defense"`
	Attack  [3]string `json:"attack" yaml:"attack"`
	Notes   string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// AttackLine joins the attack roster for replies.
func (t TeamSet) AttackLine() string {
	return strings.Join(t.Attack[:], " | ")
}

func (t TeamSet) String() string {
	return strings.Join(t.Defense[:], ", ") + " => " + t.AttackLine()
}

// RawRow is one positional source row. Trailing cells may be absent.
type RawRow []string

// Field returns the trimmed cell at offset, or "" when the row is too short.
func (r RawRow) Field(offset int) string {
	if offset < 0 || offset >= len(r) {
		return ""
	}

	return strings.TrimSpace(r[offset])
}

// IsEmpty reports whether every cell is blank.
func (r RawRow) IsEmpty() bool {
	for _, c := range r {
		if !common.IsBlank(c) {
			return false
		}
	}

	return true
}

// placeholders are the header-like cell values of the sheet template.
var placeholders = map[string]struct{}{
	"Defense Unit 1": {},
	"Defense Unit 2": {},
	"Defense Unit 3": {},
	"ATK Unit 1":     {},
	"ATK Unit 2":     {},
	"ATK Unit 3":     {},
	"Unit":           {},
}

// NotesHeader is the header cell of the notes column.
const NotesHeader = "Notes"

// IsPlaceholder reports whether name is a template label rather than a unit.
func IsPlaceholder(name string) bool {
	_, ok := placeholders[name]
	return ok
}
