// Package source reads the counter sheet into positional rows and writes the
// cleaned long-format table derived from it.
//
// Supported inputs are delimited text (.csv, .tsv) and Excel workbooks
// (.xlsx, .xlsm). Rows are returned exactly as positioned in the source;
// interpreting the columns is the roster package's job.
package source
