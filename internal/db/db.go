// Package db talks to the destination store: it verifies the required
// tables exist, snapshots the reference data the pipeline needs before a
// run, and batch-inserts converted records. Everything runs through the
// DBTX interface so callers can hand in a pool or a transaction.
package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// Destination table names the loader depends on.
const (
	TableSampleInfo     = "sample_information"
	TableMajorChemistry = "major_chemistry"
	TableMinorChemistry = "minor_chemistry"
)

// pgText converts a string to pgtype.Text, NULL for empty.
func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// pgTimestamp converts an optional time to pgtype.Timestamp, NULL for nil.
func pgTimestamp(t *time.Time) pgtype.Timestamp {
	if t == nil {
		return pgtype.Timestamp{Valid: false}
	}
	return pgtype.Timestamp{Time: *t, Valid: true}
}

// pgUUID converts a uuid.UUID to pgtype.UUID.
func pgUUID(u uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: u, Valid: true}
}

// uuidFromPg converts a pgtype.UUID back to uuid.UUID (zero when NULL).
func uuidFromPg(u pgtype.UUID) uuid.UUID {
	if !u.Valid {
		return uuid.UUID{}
	}
	return uuid.UUID(u.Bytes)
}
