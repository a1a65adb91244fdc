package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/security"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var (
		username string
		role     string
		dbPath   string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an API user (password from POLICY_LINT_PASSWORD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Database.DSN
			}
			if username == "" {
				return fmt.Errorf("user add: --username is required")
			}
			password := os.Getenv("POLICY_LINT_PASSWORD")
			if password == "" {
				return fmt.Errorf("user add: set POLICY_LINT_PASSWORD")
			}
			hash, err := security.HashPassword(password)
			if err != nil {
				return err
			}

			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer db.Close()
			if err := db.CreateSchema(); err != nil {
				return fmt.Errorf("db schema: %w", err)
			}
			id, err := db.CreateUser(username, hash, role)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Printf("User OK\n  ID: %d\n  Username: %s\n  Role: %s\n", id, username, role)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&role, "role", "viewer", "Role (viewer|admin)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
