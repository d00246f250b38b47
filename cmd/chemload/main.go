// chemload validates water-chemistry lab reports and loads them into the
// groundwater database. It reads a spreadsheet, runs the row validation
// pipeline, inserts the surviving records and prints a single textual
// report: either every problem found, or a success summary with the
// water-quality standards check.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"chemload/internal/config"
	"chemload/internal/core"
	"chemload/internal/core/tables"
	"chemload/internal/db"
	"chemload/internal/excel"
	"chemload/internal/logging"
)

var (
	flagSheet         string
	flagDryRun        bool
	flagSkipStandards bool
)

var rootCmd = &cobra.Command{
	Use:   "chemload",
	Short: "Load water-chemistry lab reports into the groundwater database",
}

var loadCmd = &cobra.Command{
	Use:          "load <report.xlsx|report.csv>",
	Short:        "Validate a lab report and insert its records",
	Args:         cobra.ExactArgs(1),
	RunE:         runLoad,
	SilenceUsage: true,
}

func init() {
	loadCmd.Flags().StringVar(&flagSheet, "sheet", "", "worksheet to read (default from LOAD_SHEET)")
	loadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "validate and convert without writing to the database")
	loadCmd.Flags().BoolVar(&flagSkipStandards, "skip-standards", false, "skip the water quality standards check")
	rootCmd.AddCommand(loadCmd)
}

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	sheet := cfg.Load.Sheet
	if flagSheet != "" {
		sheet = flagSheet
	}

	ctx := cmd.Context()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxConns)
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := db.CheckTables(ctx, pool); err != nil {
		return err
	}
	ref, err := db.LoadReference(ctx, pool)
	if err != nil {
		return err
	}

	src, err := excel.NewSource(args[0], sheet)
	if err != nil {
		return err
	}
	slog.Info("processing report", "file", src.Name(), "sheet", sheet)

	conv := &core.Converter{
		Agency:   cfg.Load.Agency,
		Domain:   tables.Default(),
		GUIDs:    ref.GUIDs,
		Existing: ref.Existing,
	}
	batch := core.Run(src, conv)

	out := cmd.OutOrStdout()
	if batch.Failed() {
		errs := batch.Errors()
		fmt.Fprintln(out, core.ErrorReport(src.Name(), errs))
		return fmt.Errorf("report contains %d invalid row value(s), nothing was loaded", len(errs))
	}

	records := batch.Records()
	if flagDryRun {
		slog.Info("dry run, skipping database write", "records", len(records))
	} else {
		if _, err := db.NewWriter(pool).Write(ctx, records); err != nil {
			return err
		}
	}

	std := core.StandardsResult{Passing: records}
	if !flagSkipStandards {
		std = core.CheckStandards(records, conv.Domain.Standards)
	}
	fmt.Fprintln(out, core.SuccessReport(records, std))
	return nil
}
