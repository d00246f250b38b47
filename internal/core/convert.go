package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// convert.go maps validated analysis records onto the destination schema,
// resolving analyte codes, non-detect values, method suffixes, priorities
// and sample-point GUIDs.

// NonDetect is the literal reported for a result below the detection limit.
const NonDetect = "ND"

// TotalSuffix marks the total-analyte variant of a code.
const TotalSuffix = "(total)"

// ResultKey identifies one result in the destination schema. It is the
// uniqueness and dedup key for a run.
type ResultKey struct {
	SamplePointID string
	Analyte       string
}

// DbRecord is one database-ready chemistry result.
type DbRecord struct {
	AnalysesAgency  string
	AnalysisDate    *time.Time
	AnalysisMethod  string
	Analyte         string // analyte code, possibly suffixed "(total)"
	LabID           string
	Priority        int // lower is more preferred; not stored, used for dedup
	SamplePointGUID uuid.UUID
	SamplePointID   string
	SampleValue     float64
	Symbol          string // "<" for non-detects, otherwise empty
	Table           string // destination table name
	Units           string
}

// Key returns the record's dedup/uniqueness key.
func (r DbRecord) Key() ResultKey {
	return ResultKey{SamplePointID: r.SamplePointID, Analyte: r.Analyte}
}

// BaseAnalyte returns the analyte code with any total-variant suffix removed.
func (r DbRecord) BaseAnalyte() string {
	return strings.TrimSpace(strings.TrimSuffix(r.Analyte, TotalSuffix))
}

// Converter turns validated AnalysisRecords into DbRecords using the static
// domain tables, the per-run sample-point GUID map and the set of result
// keys already present in the destination. All lookups are read-only
// snapshots taken before the run starts.
type Converter struct {
	Agency   string
	Domain   Domain
	GUIDs    map[string]uuid.UUID
	Existing map[ResultKey]bool
}

// Convert maps one record. The independent checks (reported value format,
// GUID lookup, duplicate guard) all run and their errors accumulate; the
// returned record is only meaningful when the error slice is empty.
func (c *Converter) Convert(rec AnalysisRecord) (DbRecord, []error) {
	var errs []error

	value, symbol, valueErrs := deriveSampleValue(rec)
	errs = append(errs, valueErrs...)

	guid, ok := c.GUIDs[rec.SamplePointID]
	if !ok {
		errs = append(errs, &UnknownSamplePointError{SamplePoint: rec.SamplePointID})
	}

	analyte := c.Domain.Analytes[rec.Parameter]
	if rec.IsTotal() {
		analyte += TotalSuffix
	}

	if c.Existing[ResultKey{SamplePointID: rec.SamplePointID, Analyte: analyte}] {
		errs = append(errs, &DuplicateSampleError{SamplePoint: rec.SamplePointID, Analyte: analyte})
	}

	if len(errs) > 0 {
		return DbRecord{}, errs
	}

	return DbRecord{
		AnalysesAgency:  c.Agency,
		AnalysisDate:    rec.AnalysisTime,
		AnalysisMethod:  c.methodFor(rec),
		Analyte:         analyte,
		LabID:           rec.SampleNumber,
		Priority:        c.priorityFor(rec),
		SamplePointGUID: guid,
		SamplePointID:   rec.SamplePointID,
		SampleValue:     value,
		Symbol:          symbol,
		Table:           c.Domain.Targets[rec.Parameter],
		Units:           c.unitsFor(rec),
	}, nil
}

// deriveSampleValue resolves the stored value and symbol. A non-detect is
// recorded as lower limit times dilution and flagged "<"; anything else
// must parse as a number.
func deriveSampleValue(rec AnalysisRecord) (float64, string, []error) {
	if rec.ReportedND != NonDetect {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec.ReportedND), 64)
		if err != nil {
			return 0, "", []error{&ResultFormatError{Value: rec.ReportedND}}
		}
		return v, "", nil
	}
	if rec.LowerLimit == nil {
		return 0, "", []error{&MissingLowerLimitError{SamplePoint: rec.SamplePointID}}
	}
	return *rec.LowerLimit * rec.Dilution, "<", nil
}

// priorityFor returns the index of the first test pattern matching the
// record's test description. Parameters without a pattern list rank 0.
// The validator has already guaranteed a match when a list exists.
func (c *Converter) priorityFor(rec AnalysisRecord) int {
	for i, p := range c.Domain.TestPatterns[rec.Parameter] {
		if p.MatchString(rec.Test) {
			return i
		}
	}
	return 0
}

// methodFor appends the parameter's registered method suffix, if any.
func (c *Converter) methodFor(rec AnalysisRecord) string {
	if suffix, ok := c.Domain.MethodSuffixes[rec.Parameter]; ok {
		return rec.Method + ", " + suffix
	}
	return rec.Method
}

// unitsFor prefers the parameter's registered unit override over the
// units column of the report.
func (c *Converter) unitsFor(rec AnalysisRecord) string {
	if units, ok := c.Domain.UnitOverrides[rec.Parameter]; ok {
		return units
	}
	return rec.Units
}
