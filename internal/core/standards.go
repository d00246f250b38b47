package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// standards.go compares loaded records against the drinking-water
// acceptable ranges and formats the pass/fail report.

// StandardsResult partitions records into those meeting the water quality
// standards and those outside their analyte's acceptable range.
type StandardsResult struct {
	Passing []DbRecord
	Failing []DbRecord
}

// CheckStandards classifies each record against the standards table.
// The analyte is looked up by its base code (total-variant suffix
// stripped); analytes with no registered range always pass.
func CheckStandards(records []DbRecord, standards map[string]Range) StandardsResult {
	var res StandardsResult
	for _, rec := range records {
		r, ok := standards[rec.BaseAnalyte()]
		if !ok || r.Contains(rec.SampleValue) {
			res.Passing = append(res.Passing, rec)
		} else {
			res.Failing = append(res.Failing, rec)
		}
	}
	sortByKey(res.Passing)
	sortByKey(res.Failing)
	return res
}

// Report formats the standards outcome: a single line when everything
// passes, otherwise a count followed by one line per failing record.
func (r StandardsResult) Report() string {
	if len(r.Failing) == 0 {
		return "All records meet water quality standards"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d record(s) fail to meet water quality standards:", len(r.Failing))
	for _, rec := range r.Failing {
		fmt.Fprintf(&b, "\n%s - %s (%s %s)",
			rec.SamplePointID, rec.Analyte,
			strconv.FormatFloat(rec.SampleValue, 'f', -1, 64), rec.Units)
	}
	return b.String()
}

func sortByKey(recs []DbRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].SamplePointID != recs[j].SamplePointID {
			return recs[i].SamplePointID < recs[j].SamplePointID
		}
		return recs[i].Analyte < recs[j].Analyte
	})
}
