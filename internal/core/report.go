package core

import (
	"fmt"
	"sort"
	"strings"
)

// report.go renders the single textual report a run produces: either every
// accumulated error tagged with its source and row, or a full success
// summary. Never a mix of the two.

const reportSeparator = "--------------------"

// ErrorReport formats accumulated row errors, one line per error.
func ErrorReport(source string, errs []RowError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = fmt.Sprintf("ERROR: in %s, row %d: %v", source, e.Row, e.Err)
	}
	return strings.Join(lines, "\n")
}

// SuccessReport summarizes a completed load: the record count, the sorted
// distinct sample point IDs, and the standards outcome.
func SuccessReport(records []DbRecord, std StandardsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Added %d records with the following sample point IDs to database:", len(records))
	for _, id := range distinctSamplePoints(records) {
		b.WriteString("\n")
		b.WriteString(id)
	}
	b.WriteString("\n")
	b.WriteString(reportSeparator)
	b.WriteString("\n")
	b.WriteString(std.Report())
	return b.String()
}

// distinctSamplePoints returns the sorted set of sample point IDs.
func distinctSamplePoints(records []DbRecord) []string {
	seen := make(map[string]bool, len(records))
	var ids []string
	for _, r := range records {
		if !seen[r.SamplePointID] {
			seen[r.SamplePointID] = true
			ids = append(ids, r.SamplePointID)
		}
	}
	sort.Strings(ids)
	return ids
}
