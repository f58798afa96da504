// Package diagnostic provides structured warnings, errors, and informational
// notes collected while ingesting a counter sheet.
//
// Key capabilities:
//   - Short or ragged source rows read leniently
//   - Overflowing unit slots inside one group
//   - Trailing partial groups that were discarded
//   - Counting diagnostics by code for ingestion summaries
package diagnostic
