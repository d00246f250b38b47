package core

import (
	"strings"
	"testing"
)

func TestCheckStandards(t *testing.T) {
	standards := map[string]Range{
		"Fe": {Low: 0, High: 0.3},
		"Cl": {Low: 0, High: 250},
	}

	tests := []struct {
		name     string
		rec      DbRecord
		wantPass bool
	}{
		{
			name:     "within range",
			rec:      DbRecord{SamplePointID: "WL-1", Analyte: "Fe", SampleValue: 0.2},
			wantPass: true,
		},
		{
			name:     "above range",
			rec:      DbRecord{SamplePointID: "WL-1", Analyte: "Fe", SampleValue: 0.5},
			wantPass: false,
		},
		{
			name:     "boundary value passes",
			rec:      DbRecord{SamplePointID: "WL-1", Analyte: "Fe", SampleValue: 0.3},
			wantPass: true,
		},
		{
			name:     "total variant checked against the base analyte",
			rec:      DbRecord{SamplePointID: "WL-1", Analyte: "Fe" + TotalSuffix, SampleValue: 0.5},
			wantPass: false,
		},
		{
			name:     "analyte without a standard passes",
			rec:      DbRecord{SamplePointID: "WL-1", Analyte: "Na", SampleValue: 9000},
			wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckStandards([]DbRecord{tt.rec}, standards)
			if tt.wantPass && (len(res.Passing) != 1 || len(res.Failing) != 0) {
				t.Errorf("expected pass, got %d passing / %d failing", len(res.Passing), len(res.Failing))
			}
			if !tt.wantPass && (len(res.Failing) != 1 || len(res.Passing) != 0) {
				t.Errorf("expected fail, got %d passing / %d failing", len(res.Passing), len(res.Failing))
			}
		})
	}
}

func TestStandardsReportAllPassing(t *testing.T) {
	res := StandardsResult{Passing: []DbRecord{{Analyte: "Fe"}}}
	if got := res.Report(); got != "All records meet water quality standards" {
		t.Errorf("got %q", got)
	}
}

func TestStandardsReportFailures(t *testing.T) {
	res := StandardsResult{
		Failing: []DbRecord{
			{SamplePointID: "WL-1", Analyte: "Fe", SampleValue: 0.5, Units: "mg/L"},
			{SamplePointID: "WL-2", Analyte: "U", SampleValue: 0.045, Units: "mg/L"},
		},
	}
	got := res.Report()
	if !strings.HasPrefix(got, "2 record(s) fail to meet water quality standards:") {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(got, "\nWL-1 - Fe (0.5 mg/L)") {
		t.Errorf("missing first failure line in %q", got)
	}
	if !strings.Contains(got, "\nWL-2 - U (0.045 mg/L)") {
		t.Errorf("missing second failure line in %q", got)
	}
}
