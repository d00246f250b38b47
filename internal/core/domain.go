package core

import "regexp"

// Domain holds the static lookup tables that drive record validation and
// conversion. The tables are loaded once at startup (see tables.Default)
// and treated as read-only for the duration of a run.
type Domain struct {
	// Analytes maps a report parameter name to its analyte code.
	// A parameter absent from this map is rejected by the validator.
	Analytes map[string]string

	// MethodSuffixes maps a parameter to a suffix appended to the
	// reported analysis method (", <suffix>").
	MethodSuffixes map[string]string

	// UnitOverrides maps a parameter to the units stored in the
	// database regardless of what the report says.
	UnitOverrides map[string]string

	// Targets maps a parameter to the destination table name.
	Targets map[string]string

	// TestPatterns maps a parameter to its acceptable test-method
	// patterns in priority order, most preferred first. The position of
	// the first pattern matching a record's test description becomes the
	// record's priority (lower wins during dedup). Parameters with no
	// entry accept any test description at priority 0.
	TestPatterns map[string][]*regexp.Regexp

	// Standards maps a base analyte code (no "(total)" suffix) to its
	// acceptable concentration range. Analytes without an entry always
	// pass the standards check.
	Standards map[string]Range
}

// Range is an inclusive acceptable interval for a sample value.
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}
