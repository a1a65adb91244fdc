package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/ir"
	"github.com/LalaSkye/policy-lint/internal/rulesdsl"
	"github.com/LalaSkye/policy-lint/internal/shared"
)

const Version = "0.1.0"

// NewRootCommand assembles the policy-lint command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy-lint",
		Short: "Deterministic governance statement linter. No AI. No ML.",
		Long: `policy-lint evaluates short governance/compliance statements with a fixed
set of deterministic lexical rules and classifies how falsifiable each
statement is. No learned models, no network calls, no randomness.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", "", "Path to YAML config (optional)")

	cmd.AddCommand(
		newLintCmd(),
		newAnalyzeCmd(),
		newReportCmd(),
		newDiffCmd(),
		newServeCmd(),
		newUserCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads config, initializes logging, and registers any configured rule
// packs. Packs must register before the first lint call.
func setup(cmd *cobra.Command) (shared.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, _ := shared.LoadConfig(configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)
	for _, pack := range cfg.Analysis.RulePacks {
		if _, err := rulesdsl.LoadAndRegister(pack); err != nil {
			return cfg, fmt.Errorf("rule pack %s: %w", pack, err)
		}
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("policy-lint %s IR: %s\n", Version, ir.Version)
		},
	}
}
