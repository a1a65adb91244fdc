package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/LalaSkye/policy-lint/internal/input"
	"github.com/LalaSkye/policy-lint/internal/reporting"
)

func newLintCmd() *cobra.Command {
	var (
		file    string
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "lint [statement]",
		Short: "Lint one or more governance statements",
		Long: `Lint an inline statement, a file of statements (one per line), or
line-delimited standard input. Emits one result per statement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}

			var (
				statements []string
				source     string
				err        error
			)
			switch {
			case file != "":
				source = file
				statements, err = input.ReadStatements(file)
				if err != nil {
					return err
				}
			case len(args) == 1:
				source = "inline"
				statements = []string{args[0]}
			case !isatty.IsTerminal(os.Stdin.Fd()):
				source = "stdin"
				statements, err = input.ReadLines(os.Stdin)
				if err != nil {
					return err
				}
			default:
				return cmd.Help()
			}

			run := input.NewRun(statements, source)
			out := cmd.OutOrStdout()
			if jsonOut {
				b, err := json.Marshal(run.Results)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
				return nil
			}
			return reporting.WriteText(out, &run)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "File of statements (one per line)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "JSON output")
	return cmd
}
