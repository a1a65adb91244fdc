package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/reporting"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

func newDiffCmd() *cobra.Command {
	var (
		base   string
		head   string
		outDir string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare two stored runs and report posture/score drift",
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
			if base == "" || head == "" {
				return fmt.Errorf("diff: --base and --head are required")
			}

			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer db.Close()

			for _, id := range []string{base, head} {
				ok, err := db.HasRun(id)
				if err != nil {
					return fmt.Errorf("diff: %w", err)
				}
				if !ok {
					return fmt.Errorf("diff: run %s not found", id)
				}
			}

			br, err := db.LoadRun(base)
			if err != nil {
				return fmt.Errorf("load base run %s: %w", base, err)
			}
			hr, err := db.LoadRun(head)
			if err != nil {
				return fmt.Errorf("load head run %s: %w", head, err)
			}
			path, err := reporting.WriteDiffJSON(base, head, outDir, &br, &hr)
			if err != nil {
				return err
			}
			fmt.Printf("Diff OK\n  %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base run ID")
	cmd.Flags().StringVar(&head, "head", "", "Head run ID")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
