package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/clock"
	"github.com/roach88/padron/internal/record"
	"github.com/roach88/padron/internal/report"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <records-file>",
		Short: "Validate a YAML or CUE record file",
		Long: `Validate every record of a YAML (.yaml, .yml) or CUE (.cue) file.

CUE files are first checked against the record schema. Each record is then
run through the person and citizen rules; all rule violations of a record
are reported, not only the first.

Exit codes:
  0 - All records valid
  1 - One or more records invalid, or the CUE schema was violated
  2 - Command error (file not found, unreadable file, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	today, err := opts.today()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --today", err)
	}

	records, err := record.Load(path)
	if err != nil {
		var se *record.SchemaError
		if errors.As(err, &se) {
			_ = f.Error(ErrCodeLoadFailed, "record file violates the schema", se.Issues)
			if f.Format != "json" {
				for _, is := range se.Issues {
					writeIssue(f.Writer, is)
				}
			}
			return WrapExitError(ExitFailure, ErrCodeLoadFailed, err)
		}
		return failLoad(f, err, nil)
	}
	f.VerboseLog("Loaded %d record(s) from %s", len(records), path)
	f.VerboseLog("Reference date: %s", today.Format(clock.DateLayout))

	rep := record.Check(records, today)

	if f.Format == "json" {
		if rep.Invalid > 0 {
			if err := f.Report(rep, ErrCodeCheckFailed, checkFailedMessage(rep)); err != nil {
				return err
			}
			return NewExitError(ExitFailure, checkFailedMessage(rep))
		}
		return f.Success("", rep)
	}

	for _, res := range rep.Results {
		if res.Valid {
			fmt.Fprintf(f.Writer, "✓ [%d] %s: %s\n", res.Index, res.Name, summary(res.Profile))
			continue
		}
		fmt.Fprintf(f.Writer, "✗ [%d] %s\n", res.Index, res.Name)
		for _, msg := range res.Errors {
			fmt.Fprintf(f.Writer, "    %s\n", msg)
		}
	}
	fmt.Fprintf(f.Writer, "\n%d valid, %d invalid, %d total\n", rep.Valid, rep.Invalid, rep.Total)

	if rep.Invalid > 0 {
		return NewExitError(ExitFailure, checkFailedMessage(rep))
	}
	return nil
}

func checkFailedMessage(rep record.CheckReport) string {
	return fmt.Sprintf("check failed: %d of %d record(s) invalid", rep.Invalid, rep.Total)
}

// summary renders the one-line description of a valid record.
func summary(p *report.Profile) string {
	s := p.Classification.String()
	if p.BMI != nil {
		s += fmt.Sprintf(", BMI %.2f", *p.BMI)
	} else {
		s += ", BMI n/a"
	}
	if p.DaysLived != nil {
		s += fmt.Sprintf(", %d days lived", *p.DaysLived)
	}
	return s
}

func writeIssue(w io.Writer, is record.Issue) {
	if is.Line > 0 {
		fmt.Fprintf(w, "line %d\n", is.Line)
	}
	fmt.Fprintf(w, "  %s\n", is.Message)
}
