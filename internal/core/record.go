package core

import (
	"strings"
	"time"
)

// record.go builds strongly typed analysis records from validated column
// maps and checks their domain semantics. Both stages accumulate every
// problem they find in a row rather than stopping at the first, so one
// report names everything wrong with the sheet.

// Spreadsheet column names the lab's report template uses.
const (
	FieldParameter    = "Param"
	FieldTest         = "Test"
	FieldSamplePoint  = "SamplePointID"
	FieldReportedND   = "ReportedND"
	FieldLowerLimit   = "LowerLimit"
	FieldDilution     = "Dilution"
	FieldMethod       = "Method"
	FieldTotal        = "Total"
	FieldUnits        = "Units"
	FieldSampleNumber = "SampleNumber"
	FieldAnalysisTime = "AnalysisTime"
)

// AnalysisRecord is one validated row of a lab report.
type AnalysisRecord struct {
	Parameter     string
	Test          string
	SamplePointID string
	// ReportedND is the reported result: the literal "ND" for a
	// non-detect, otherwise a numeric string.
	ReportedND   string
	LowerLimit   *float64
	Dilution     float64
	Method       string
	Total        string // non-blank marks the "(total)" analyte variant
	Units        string
	SampleNumber string
	AnalysisTime *time.Time
}

// IsTotal reports whether the record carries the total-analyte marker.
func (r AnalysisRecord) IsTotal() bool {
	return strings.TrimSpace(r.Total) != ""
}

// BuildRecord converts a column map into an AnalysisRecord, checking that
// every required field is present with the expected cell kind. All field
// errors are returned together; the record is only meaningful when the
// error slice is empty.
func BuildRecord(cols map[string]Cell) (AnalysisRecord, []error) {
	b := fieldReader{cols: cols}
	rec := AnalysisRecord{
		Parameter:     b.text(FieldParameter),
		Test:          b.text(FieldTest),
		SamplePointID: b.textOrNumber(FieldSamplePoint),
		ReportedND:    b.textOrNumber(FieldReportedND),
		LowerLimit:    b.optNumber(FieldLowerLimit),
		Dilution:      b.number(FieldDilution),
		Method:        b.text(FieldMethod),
		Total:         b.optText(FieldTotal),
		Units:         b.text(FieldUnits),
		SampleNumber:  b.textOrNumber(FieldSampleNumber),
		AnalysisTime:  b.optDate(FieldAnalysisTime),
	}
	return rec, b.errs
}

// ValidateRecord checks a record's domain semantics against the static
// tables: the parameter must have an analyte code, and when the parameter
// registers acceptable test-method patterns the test description must
// match at least one of them. Both checks always run.
func ValidateRecord(rec AnalysisRecord, dom Domain) []error {
	var errs []error

	if _, ok := dom.Analytes[rec.Parameter]; !ok {
		errs = append(errs, &UnknownParameterError{Parameter: rec.Parameter})
	}

	if patterns, ok := dom.TestPatterns[rec.Parameter]; ok {
		matched := false
		for _, p := range patterns {
			if p.MatchString(rec.Test) {
				matched = true
				break
			}
		}
		if !matched {
			errs = append(errs, &InvalidTestError{
				SamplePoint: rec.SamplePointID,
				Parameter:   rec.Parameter,
				Test:        rec.Test,
			})
		}
	}

	return errs
}

// fieldReader extracts typed fields from a column map, accumulating an
// error per missing or mis-typed field.
type fieldReader struct {
	cols map[string]Cell
	errs []error
}

// get looks a field up by name, recording a MissingFieldError when absent.
func (f *fieldReader) get(name string) (Cell, bool) {
	c, ok := f.cols[name]
	if !ok {
		f.errs = append(f.errs, &MissingFieldError{Name: name})
	}
	return c, ok
}

func (f *fieldReader) badType(name string) {
	f.errs = append(f.errs, &FieldTypeError{Name: name})
}

func (f *fieldReader) text(name string) string {
	c, ok := f.get(name)
	if !ok {
		return ""
	}
	if c.Kind != KindText {
		f.badType(name)
		return ""
	}
	return c.Text
}

// textOrNumber accepts either a text cell or a numeric cell, rendering
// numbers as their shortest decimal string. Lab sheets routinely type
// sample numbers and reported values as numeric cells.
func (f *fieldReader) textOrNumber(name string) string {
	c, ok := f.get(name)
	if !ok {
		return ""
	}
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.String()
	default:
		f.badType(name)
		return ""
	}
}

func (f *fieldReader) number(name string) float64 {
	c, ok := f.get(name)
	if !ok {
		return 0
	}
	if c.Kind != KindNumber {
		f.badType(name)
		return 0
	}
	return c.Number
}

func (f *fieldReader) optNumber(name string) *float64 {
	c, ok := f.get(name)
	if !ok {
		return nil
	}
	switch c.Kind {
	case KindBlank:
		return nil
	case KindNumber:
		v := c.Number
		return &v
	default:
		f.badType(name)
		return nil
	}
}

func (f *fieldReader) optText(name string) string {
	c, ok := f.get(name)
	if !ok {
		return ""
	}
	switch c.Kind {
	case KindBlank:
		return ""
	case KindText:
		return c.Text
	default:
		f.badType(name)
		return ""
	}
}

func (f *fieldReader) optDate(name string) *time.Time {
	c, ok := f.get(name)
	if !ok {
		return nil
	}
	switch c.Kind {
	case KindBlank:
		return nil
	case KindDate:
		t := c.Time
		return &t
	default:
		f.badType(name)
		return nil
	}
}
