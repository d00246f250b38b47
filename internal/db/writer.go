package db

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"chemload/internal/core"
)

// DbError wraps a failed store write. Rows already written to earlier
// tables in the same run stay committed; this layer does not roll back
// across tables.
type DbError struct {
	Table string
	Err   error
}

func (e *DbError) Error() string {
	return fmt.Sprintf("insert into %s failed: %v", e.Table, e.Err)
}

func (e *DbError) Unwrap() error { return e.Err }

// insertColumns are the ten destination columns, in bind order.
var insertColumns = []string{
	"analyses_agency",
	"analysis_date",
	"analysis_method",
	"analyte",
	"lab_id",
	"sample_point_guid",
	"sample_point_id",
	"sample_value",
	"symbol",
	"units",
}

// Writer batch-inserts converted records into their destination tables.
type Writer struct {
	dbtx DBTX
}

// NewWriter returns a writer over the given connection or transaction.
func NewWriter(dbtx DBTX) *Writer {
	return &Writer{dbtx: dbtx}
}

// Write groups records by destination table and issues one parameterized
// batch insert per table. The first failure aborts remaining writes and
// is returned as a single DbError; earlier tables are not rolled back.
// Returns the number of rows inserted.
func (w *Writer) Write(ctx context.Context, records []core.DbRecord) (int, error) {
	groups := make(map[string][]core.DbRecord)
	for _, rec := range records {
		groups[rec.Table] = append(groups[rec.Table], rec)
	}

	tables := make([]string, 0, len(groups))
	for t := range groups {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	inserted := 0
	for _, table := range tables {
		recs := groups[table]
		if err := w.writeTable(ctx, table, recs); err != nil {
			return inserted, err
		}
		inserted += len(recs)
		slog.Info("inserted records", "table", table, "rows", len(recs))
	}
	return inserted, nil
}

func (w *Writer) writeTable(ctx context.Context, table string, records []core.DbRecord) error {
	sql := insertSQL(table)
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(sql,
			rec.AnalysesAgency,
			pgTimestamp(rec.AnalysisDate),
			rec.AnalysisMethod,
			rec.Analyte,
			rec.LabID,
			pgUUID(rec.SamplePointGUID),
			rec.SamplePointID,
			rec.SampleValue,
			pgText(rec.Symbol),
			rec.Units,
		)
	}

	br := w.dbtx.SendBatch(ctx, batch)
	defer br.Close()
	for range records {
		if _, err := br.Exec(); err != nil {
			return &DbError{Table: table, Err: err}
		}
	}
	return nil
}

func insertSQL(table string) string {
	binds := make([]string, len(insertColumns))
	for i := range insertColumns {
		binds[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(insertColumns, ", "), strings.Join(binds, ", "))
}
