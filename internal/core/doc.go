// Package core implements the validation and conversion pipeline for
// water-chemistry lab reports.
//
// The package is independent of any file format or database driver: rows
// come in through the [RowSource] interface and leave as [DbRecord]
// values, so it can be driven by a spreadsheet, a CSV export, or an
// in-memory slice in tests.
//
// # Pipeline
//
// A run is a single synchronous pass over the source, driven by [Run]:
//
//  1. [TableReader] consumes the header row, infers a cell-type template
//     per column from the first non-blank cell it sees, and emits one
//     [RowResult] per data row.
//  2. [BuildRecord] maps the row's cells onto an [AnalysisRecord],
//     accumulating one error per bad field rather than stopping at the
//     first.
//  3. [ValidateRecord] checks the record against the domain tables: the
//     parameter must be known and, where patterns are registered, the
//     test description must match one.
//  4. [Converter.Convert] resolves the reported value (including the
//     non-detect substitution), analyte code, destination table, dedup
//     priority and sample-point GUID.
//  5. [BatchResult] folds the per-row outcomes together.
//
// # Error Policy
//
// Errors accumulate rather than short-circuit, and the batch outcome is
// all-or-nothing: a single bad row anywhere means no records are loaded
// and the run reports every problem it found. Header and row-shape
// errors are structural and terminate the read; everything else is
// recoverable and the pass continues to collect further errors.
//
// # Deduplication
//
// When a report carries the same (sample point, analyte) result from
// more than one test method, the record whose test matched the earliest
// pattern in the domain tables wins, independent of row order.
package core
