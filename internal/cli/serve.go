package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/api"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API over stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if dbPath == "" {
				dbPath = cfg.Database.DSN
			}

			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer db.Close()
			if err := db.CreateSchema(); err != nil {
				return fmt.Errorf("db schema: %w", err)
			}

			srv := &api.Server{
				DB:              db,
				UserStore:       db,
				Logger:          slog.Default(),
				AllowedOrigins:  cfg.Server.AllowedOrigins,
				SessionDuration: time.Duration(cfg.Server.SessionHours) * time.Hour,
			}
			slog.Info("serving", "addr", addr, "db", dbPath)
			return http.ListenAndServe(addr, srv.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
