package core

import "log/slog"

// pipeline.go wires the stages together: rows are pulled one at a time
// from the source, pass through the table reader, record builder, domain
// validator and converter, and fold into the batch accumulator. The whole
// pass is synchronous; the only cross-row state is the reader's column
// templates and the accumulator itself.

// Run drives a full validation/conversion pass over src and returns the
// accumulated batch. A row failing one stage does not reach the next, but
// the run keeps reading rows until the source is exhausted or the reader
// hits a structural error.
func Run(src RowSource, conv *Converter) *BatchResult {
	batch := NewBatchResult()
	reader := NewTableReader(src)
	rows := 0

	for {
		res, ok := reader.Next()
		if !ok {
			break
		}
		rows++

		if !res.Valid() {
			batch.AddErrors(res.Index, res.Errs)
			continue
		}

		rec, errs := BuildRecord(res.Columns)
		if len(errs) > 0 {
			batch.AddErrors(res.Index, errs)
			continue
		}

		if errs := ValidateRecord(rec, conv.Domain); len(errs) > 0 {
			batch.AddErrors(res.Index, errs)
			continue
		}

		db, errs := conv.Convert(rec)
		if len(errs) > 0 {
			batch.AddErrors(res.Index, errs)
			continue
		}

		batch.AddRecord(db)
	}

	slog.Debug("pipeline pass complete",
		"rows", rows,
		"records", batch.Len(),
		"failed", batch.Failed(),
	)
	return batch
}
