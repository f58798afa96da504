// Package match decides whether three typed unit names correspond to a stored
// defense roster.
//
// Key functions:
//   - NormalizeName: trims and case-folds a name before comparison
//   - InDel: insert/delete edit distance between two strings
//   - Ratio: 0..100 similarity score derived from InDel
//   - IsFuzzyMatch: Ratio at or above a threshold
//   - Matcher.DefenseUnitsMatch: greedy first-fit 3-to-3 assignment
//   - Matcher.FindMatch: first team set, in book order, whose defense matches
//
// Everything here is a pure function of its inputs and is safe to call from
// concurrent goroutines over a shared, unmodified slice of team sets.
package match
