// Package roster reshapes the wide, column-positional counter sheet into
// normalized team sets.
//
// The sheet repeats a visual block of three defense cells, three attack cells
// and one notes cell per row. Cell offsets come from a Layout, never from
// inline literals. Normalize walks the rows once, accumulating names until a
// group holds three defenders and three attackers, and emits it as a TeamSet.
//
// Key types:
//   - RawRow: one positional source row
//   - Layout: slot name to column offset table
//   - TeamSet: a normalized 3 defense / 3 attack / notes record
//   - Book: the immutable, ingestion-ordered result with its diagnostics
package roster
