package roster

import "teamfinder/internal/common"

// Side tells which half of a block a unit cell belongs to.
type Side int

const (
	SideDefense Side = iota
	SideAttack
)

const (
	sideDefenseLabel = "Defense"
	sideAttackLabel  = "Attack"
)

// String returns the label used in the cleaned long-format table.
func (s Side) String() string {
	switch s {
	case SideDefense:
		return sideDefenseLabel
	case SideAttack:
		return sideAttackLabel
	default:
		return common.UnknownStr
	}
}

// ParseSide parses a Team column value. It returns false for anything else.
func ParseSide(s string) (Side, bool) {
	switch s {
	case sideDefenseLabel:
		return SideDefense, true
	case sideAttackLabel:
		return SideAttack, true
	default:
		return 0, false
	}
}
