package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"chemload/internal/core"
)

// CheckTables verifies that every table the loader depends on exists.
// All missing tables are reported together so one failed startup names
// the whole problem.
func CheckTables(ctx context.Context, dbtx DBTX) error {
	required := []string{TableSampleInfo, TableMajorChemistry, TableMinorChemistry}
	var missing []string
	for _, name := range required {
		var reg *string
		if err := dbtx.QueryRow(ctx, "SELECT to_regclass($1)::text", name).Scan(&reg); err != nil {
			return fmt.Errorf("check table %s: %w", name, err)
		}
		if reg == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required tables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Reference is the read-only snapshot of destination data taken before a
// run: sample-point GUIDs and the result keys already present in the
// chemistry tables.
type Reference struct {
	GUIDs    map[string]uuid.UUID
	Existing map[core.ResultKey]bool
}

// LoadReference snapshots the reference data from the destination.
func LoadReference(ctx context.Context, dbtx DBTX) (*Reference, error) {
	ref := &Reference{
		GUIDs:    make(map[string]uuid.UUID),
		Existing: make(map[core.ResultKey]bool),
	}

	rows, err := dbtx.Query(ctx,
		fmt.Sprintf("SELECT sample_point_id, sample_point_guid FROM %s", TableSampleInfo))
	if err != nil {
		return nil, fmt.Errorf("load sample information: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var guid pgtype.UUID
		if err := rows.Scan(&id, &guid); err != nil {
			return nil, fmt.Errorf("scan sample information: %w", err)
		}
		ref.GUIDs[id] = uuidFromPg(guid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load sample information: %w", err)
	}
	rows.Close()

	for _, table := range []string{TableMajorChemistry, TableMinorChemistry} {
		if err := loadExistingKeys(ctx, dbtx, table, ref.Existing); err != nil {
			return nil, err
		}
	}

	slog.Debug("reference data loaded",
		"sample_points", len(ref.GUIDs),
		"existing_results", len(ref.Existing),
	)
	return ref, nil
}

func loadExistingKeys(ctx context.Context, dbtx DBTX, table string, into map[core.ResultKey]bool) error {
	rows, err := dbtx.Query(ctx,
		fmt.Sprintf("SELECT analyte, sample_point_id FROM %s", table))
	if err != nil {
		return fmt.Errorf("load existing results from %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var analyte, samplePoint string
		if err := rows.Scan(&analyte, &samplePoint); err != nil {
			return fmt.Errorf("scan existing results from %s: %w", table, err)
		}
		into[core.ResultKey{SamplePointID: samplePoint, Analyte: analyte}] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load existing results from %s: %w", table, err)
	}
	return nil
}
