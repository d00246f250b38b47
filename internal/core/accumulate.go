package core

import "sort"

// accumulate.go folds the per-row conversion results into the batch
// outcome. The policy is all-or-nothing: one failed row anywhere discards
// every successfully converted record and the run reports only errors.
// While the batch is still clean, records deduplicate by result key with
// the lowest priority number winning regardless of arrival order.

// BatchResult accumulates the outcome of one run. It is either "all
// records so far" or, once any error has been seen, "all errors so far";
// records arriving after the first error are ignored.
type BatchResult struct {
	records map[ResultKey]DbRecord
	errs    []RowError
}

// NewBatchResult returns an empty accumulator.
func NewBatchResult() *BatchResult {
	return &BatchResult{records: make(map[ResultKey]DbRecord)}
}

// Failed reports whether any row error has been recorded.
func (b *BatchResult) Failed() bool { return len(b.errs) > 0 }

// AddErrors records a row's errors. The first call flips the batch into
// the error state permanently.
func (b *BatchResult) AddErrors(row int, errs []error) {
	for _, err := range errs {
		b.errs = append(b.errs, RowError{Row: row, Err: err})
	}
}

// AddRecord folds one converted record into the batch. In the error state
// the record is dropped. Otherwise a record with an unseen key is kept,
// and a key collision keeps whichever record has the lower priority
// number; the superseded record is discarded silently.
func (b *BatchResult) AddRecord(rec DbRecord) {
	if b.Failed() {
		return
	}
	key := rec.Key()
	if prev, ok := b.records[key]; ok && prev.Priority <= rec.Priority {
		return
	}
	b.records[key] = rec
}

// Errors returns the accumulated row errors in row order.
func (b *BatchResult) Errors() []RowError {
	errs := make([]RowError, len(b.errs))
	copy(errs, b.errs)
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Row < errs[j].Row })
	return errs
}

// Records returns the deduplicated records sorted by result key. The
// slice is empty when the batch failed.
func (b *BatchResult) Records() []DbRecord {
	if b.Failed() {
		return nil
	}
	recs := make([]DbRecord, 0, len(b.records))
	for _, r := range b.records {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].SamplePointID != recs[j].SamplePointID {
			return recs[i].SamplePointID < recs[j].SamplePointID
		}
		return recs[i].Analyte < recs[j].Analyte
	})
	return recs
}

// Len returns the number of retained records (0 when failed).
func (b *BatchResult) Len() int {
	if b.Failed() {
		return 0
	}
	return len(b.records)
}
