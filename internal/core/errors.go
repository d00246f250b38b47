package core

import (
	"fmt"
	"strings"
)

// errors.go defines the pipeline's error taxonomy. Validation errors are
// plain values carried alongside rows, never panics: structural errors end
// the stream, per-row errors accumulate and the run keeps reading rows.

// RowError ties an error to the 0-based sheet row it occurred on.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// InvalidHeaderError reports non-text cells in the header row.
// Structural: the stream terminates after emitting it.
type InvalidHeaderError struct {
	Columns []int // 0-based indices of the offending cells
}

func (e *InvalidHeaderError) Error() string {
	cols := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		cols[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("header row has non-text cells at columns %s", strings.Join(cols, ", "))
}

// ShapeError reports a data row whose cell count does not match the header.
// Structural: the stream terminates after emitting it.
type ShapeError struct {
	HeaderCols int
	RowCols    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row has %d cells, header has %d columns", e.RowCols, e.HeaderCols)
}

// CellTypeError reports a cell whose kind conflicts with the type already
// established for its column. Recoverable: the row is rejected, the stream
// continues.
type CellTypeError struct {
	Column   string
	Expected string
}

func (e *CellTypeError) Error() string {
	return fmt.Sprintf("column %q expects %s values", e.Column, e.Expected)
}

// MissingFieldError reports a required column absent from the row map.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Name)
}

// FieldTypeError reports a field whose cell holds the wrong variant.
type FieldTypeError struct {
	Name string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("wrong cell type for field %q", e.Name)
}

// UnknownParameterError reports a parameter with no registered analyte code.
type UnknownParameterError struct {
	Parameter string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("no analyte conversion registered for parameter %q", e.Parameter)
}

// InvalidTestError reports a test description that matches none of the
// acceptable method patterns registered for the parameter.
type InvalidTestError struct {
	SamplePoint string
	Parameter   string
	Test        string
}

func (e *InvalidTestError) Error() string {
	return fmt.Sprintf("sample point %s: test %q is not an accepted method for %q",
		e.SamplePoint, e.Test, e.Parameter)
}

// ResultFormatError reports a reported value that is neither "ND" nor a
// parseable number.
type ResultFormatError struct {
	Value string
}

func (e *ResultFormatError) Error() string {
	return fmt.Sprintf("reported value %q is neither ND nor numeric", e.Value)
}

// MissingLowerLimitError reports a non-detect with no lower detection limit.
type MissingLowerLimitError struct {
	SamplePoint string
}

func (e *MissingLowerLimitError) Error() string {
	return fmt.Sprintf("sample point %s: non-detect result without a lower limit", e.SamplePoint)
}

// UnknownSamplePointError reports a sample point with no GUID in the
// reference data.
type UnknownSamplePointError struct {
	SamplePoint string
}

func (e *UnknownSamplePointError) Error() string {
	return fmt.Sprintf("sample point %q has no GUID in sample information", e.SamplePoint)
}

// DuplicateSampleError reports a result whose (sample point, analyte) key
// already exists in the destination tables.
type DuplicateSampleError struct {
	SamplePoint string
	Analyte     string
}

func (e *DuplicateSampleError) Error() string {
	return fmt.Sprintf("result for %s / %s already exists in the database", e.SamplePoint, e.Analyte)
}
