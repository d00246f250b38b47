package core

import (
	"errors"
	"testing"
)

func batchRecord(point, analyte string, priority int) DbRecord {
	return DbRecord{
		SamplePointID: point,
		Analyte:       analyte,
		Priority:      priority,
		SampleValue:   1.0,
		Table:         "major_chemistry",
	}
}

func TestBatchResultDedupKeepsLowestPriority(t *testing.T) {
	// The winner must not depend on arrival order.
	orders := map[string][]DbRecord{
		"low first": {
			batchRecord("WL-1", "Fe", 0),
			batchRecord("WL-1", "Fe", 2),
		},
		"high first": {
			batchRecord("WL-1", "Fe", 2),
			batchRecord("WL-1", "Fe", 0),
		},
	}

	for name, recs := range orders {
		t.Run(name, func(t *testing.T) {
			b := NewBatchResult()
			for _, r := range recs {
				b.AddRecord(r)
			}
			got := b.Records()
			if len(got) != 1 {
				t.Fatalf("expected one deduplicated record, got %d", len(got))
			}
			if got[0].Priority != 0 {
				t.Errorf("kept priority %d, want 0", got[0].Priority)
			}
		})
	}
}

func TestBatchResultEqualPriorityKeepsFirst(t *testing.T) {
	b := NewBatchResult()
	first := batchRecord("WL-1", "Fe", 1)
	first.SampleValue = 5.0
	second := batchRecord("WL-1", "Fe", 1)
	second.SampleValue = 9.0
	b.AddRecord(first)
	b.AddRecord(second)

	got := b.Records()
	if len(got) != 1 || got[0].SampleValue != 5.0 {
		t.Fatalf("ties should keep the earlier record, got %+v", got)
	}
}

func TestBatchResultErrorsDiscardRecords(t *testing.T) {
	b := NewBatchResult()
	b.AddRecord(batchRecord("WL-1", "Fe", 0))
	b.AddErrors(4, []error{errors.New("bad cell")})
	b.AddRecord(batchRecord("WL-2", "Cl", 0))

	if !b.Failed() {
		t.Fatal("batch should be failed")
	}
	if got := b.Records(); got != nil {
		t.Errorf("failed batch returned records: %v", got)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
	errs := b.Errors()
	if len(errs) != 1 || errs[0].Row != 4 {
		t.Errorf("errors = %v", errs)
	}
}

func TestBatchResultErrorsSortedByRow(t *testing.T) {
	b := NewBatchResult()
	b.AddErrors(9, []error{errors.New("late")})
	b.AddErrors(2, []error{errors.New("early"), errors.New("also early")})

	errs := b.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	if errs[0].Row != 2 || errs[1].Row != 2 || errs[2].Row != 9 {
		t.Errorf("rows = [%d %d %d], want [2 2 9]", errs[0].Row, errs[1].Row, errs[2].Row)
	}
	if errs[0].Err.Error() != "early" {
		t.Errorf("same-row errors should keep insertion order, got %v", errs[0].Err)
	}
}

func TestBatchResultRecordsSorted(t *testing.T) {
	b := NewBatchResult()
	b.AddRecord(batchRecord("WL-2", "Fe", 0))
	b.AddRecord(batchRecord("WL-1", "Na", 0))
	b.AddRecord(batchRecord("WL-1", "Cl", 0))

	got := b.Records()
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	wantOrder := []ResultKey{
		{SamplePointID: "WL-1", Analyte: "Cl"},
		{SamplePointID: "WL-1", Analyte: "Na"},
		{SamplePointID: "WL-2", Analyte: "Fe"},
	}
	for i, want := range wantOrder {
		if got[i].Key() != want {
			t.Errorf("record %d = %v, want %v", i, got[i].Key(), want)
		}
	}
}
