// Package misslog keeps the append-only record of queries that matched no
// team set.
//
// Two backends implement Log: a line-oriented text file (one "a, b, c" line
// per miss) and a SQLite table. Both serialize writes, so a single Log may be
// shared by concurrent handlers.
package misslog
