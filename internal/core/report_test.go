package core

import (
	"errors"
	"testing"
)

func TestErrorReport(t *testing.T) {
	errs := []RowError{
		{Row: 2, Err: errors.New("missing value in Dilution column")},
		{Row: 5, Err: errors.New("unknown value in Param column")},
	}
	got := ErrorReport("lab_report.xlsx", errs)
	want := "ERROR: in lab_report.xlsx, row 2: missing value in Dilution column\n" +
		"ERROR: in lab_report.xlsx, row 5: unknown value in Param column"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuccessReport(t *testing.T) {
	records := []DbRecord{
		{SamplePointID: "WL-0042", Analyte: "Fe", SampleValue: 0.2, Units: "mg/L"},
		{SamplePointID: "WL-0042", Analyte: "Cl", SampleValue: 12, Units: "mg/L"},
		{SamplePointID: "WL-0017", Analyte: "Na", SampleValue: 40, Units: "mg/L"},
	}
	std := StandardsResult{Passing: records}

	got := SuccessReport(records, std)
	want := "Added 3 records with the following sample point IDs to database:\n" +
		"WL-0017\n" +
		"WL-0042\n" +
		reportSeparator + "\n" +
		"All records meet water quality standards"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuccessReportWithFailures(t *testing.T) {
	records := []DbRecord{
		{SamplePointID: "WL-0042", Analyte: "Fe", SampleValue: 0.5, Units: "mg/L"},
	}
	std := StandardsResult{Failing: records}

	got := SuccessReport(records, std)
	want := "Added 1 records with the following sample point IDs to database:\n" +
		"WL-0042\n" +
		reportSeparator + "\n" +
		"1 record(s) fail to meet water quality standards:\n" +
		"WL-0042 - Fe (0.5 mg/L)"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
