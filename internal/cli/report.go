package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/reporting"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

func newReportCmd() *cobra.Command {
	var (
		runID  string
		outDir string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Regenerate JSON and HTML reports for a stored run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Reporting.OutDir
			}
			if dbPath == "" {
				dbPath = cfg.Database.DSN
			}
			if runID == "" {
				return fmt.Errorf("report: --run is required")
			}

			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer db.Close()

			ok, err := db.HasRun(runID)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			if !ok {
				return fmt.Errorf("report: run %s not found", runID)
			}
			run, err := db.LoadRun(runID)
			if err != nil {
				return fmt.Errorf("load run %s: %w", runID, err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("report: cannot create out dir: %w", err)
			}
			jsonPath, err := reporting.WriteJSON(run.ID, outDir, &run)
			if err != nil {
				return fmt.Errorf("write json report: %w", err)
			}
			htmlPath, err := reporting.WriteHTML(run.ID, outDir, &run)
			if err != nil {
				return fmt.Errorf("write html report: %w", err)
			}
			fmt.Printf("Report OK\n  Run: %s\n  JSON: %s\n  HTML: %s\n", run.ID, jsonPath, htmlPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&runID, "run", "", "Run ID")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
