package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/input"
	"github.com/LalaSkye/policy-lint/internal/reporting"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file   string
		outDir string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Lint a statement file, persist the run, and write reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			// precedence: flags > config > defaults
			if outDir == "" {
				outDir = cfg.Reporting.OutDir
			}
			if dbPath == "" {
				dbPath = cfg.Database.DSN
			}
			if file == "" {
				return fmt.Errorf("analyze: --file is required")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("analyze: cannot create out dir: %w", err)
			}

			statements, err := input.ReadStatements(file)
			if err != nil {
				return err
			}
			run := input.NewRun(statements, file)
			run.Context.MinSeverity = cfg.Analysis.MinSeverity
			run.Context.RulePacks = cfg.Analysis.RulePacks

			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer db.Close()
			if err := db.CreateSchema(); err != nil {
				return fmt.Errorf("db schema: %w", err)
			}
			if err := db.SaveRun(&run); err != nil {
				return fmt.Errorf("db save run: %w", err)
			}

			jsonPath, err := reporting.WriteJSON(run.ID, outDir, &run)
			if err != nil {
				return fmt.Errorf("write json report: %w", err)
			}
			htmlPath, err := reporting.WriteHTML(run.ID, outDir, &run)
			if err != nil {
				return fmt.Errorf("write html report: %w", err)
			}
			slog.Info("analyze complete",
				"run", run.ID,
				"statements", run.Summary.Statements,
				"warnings", run.Summary.WarningCount,
				"json", jsonPath,
				"html", htmlPath,
				"db", filepath.Clean(dbPath),
			)
			fmt.Printf("Analyze OK\n  Run: %s\n  Statements: %d\n  Warnings: %d\n  JSON: %s\n  HTML: %s\n  DB: %s\n",
				run.ID, run.Summary.Statements, run.Summary.WarningCount, jsonPath, htmlPath, filepath.Clean(dbPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "File of statements (one per line)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for reports")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
