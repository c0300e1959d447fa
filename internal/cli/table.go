package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/fixture"
)

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table <fixture.csv>",
		Short: "Run an age classification table",
		Long: `Run an age-to-classification CSV table (rows of "age,label") against
the classifier. The label "error" expects the age to be rejected.

Exit codes:
  0 - All rows matched
  1 - One or more rows did not match
  2 - Command error (file not found, malformed table, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, args[0], cmd)
		},
	}
}

func runTable(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	rows, err := fixture.LoadClassificationTable(path)
	if err != nil {
		return failLoad(f, err, nil)
	}
	f.VerboseLog("Loaded %d row(s) from %s", len(rows), path)

	rep := fixture.RunClassificationTable(rows)
	failed := fmt.Sprintf("%d of %d row(s) did not match", rep.Failed, rep.Total)

	if f.Format == "json" {
		if rep.Failed > 0 {
			if err := f.Report(rep, ErrCodeTableMismatch, failed); err != nil {
				return err
			}
			return NewExitError(ExitFailure, failed)
		}
		return f.Success("", rep)
	}

	for _, row := range rep.Rows {
		if row.Pass {
			if f.Verbose {
				fmt.Fprintf(f.Writer, "✓ line %d: age %d is %s\n", row.Line, row.Age, row.Got)
			}
			continue
		}
		fmt.Fprintf(f.Writer, "✗ line %d: age %d expected %s, got %s\n", row.Line, row.Age, row.Expected, row.Got)
	}
	fmt.Fprintf(f.Writer, "%d passed, %d failed, %d total\n", rep.Passed, rep.Failed, rep.Total)

	if rep.Failed > 0 {
		return NewExitError(ExitFailure, failed)
	}
	return nil
}
