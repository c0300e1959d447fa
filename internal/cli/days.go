package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/clock"
	"github.com/roach88/padron/internal/person"
)

// DaysResult is the JSON payload of the days command.
type DaysResult struct {
	BirthDate string `json:"birth_date"`
	Today     string `json:"today"`
	DaysLived int    `json:"days_lived"`
}

// NewDaysCommand creates the days command.
func NewDaysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "days <dd/mm/yyyy>",
		Short: "Count the days lived since a birth date",
		Long: `Count calendar days between a birth date and the reference date
(--today, or the system date). Future birth dates are rejected.

Examples:
  padron days 12/02/1994
  padron days 12/02/1994 --today 16/10/2026`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDays(rootOpts, args[0], cmd)
		},
	}
}

func runDays(opts *RootOptions, birthDate string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	today, err := opts.today()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --today", err)
	}

	var p person.Person
	days, err := p.DaysLivedSince(birthDate, today)
	if err != nil {
		return failDomain(f, err)
	}

	return f.Success(strconv.Itoa(days), DaysResult{
		BirthDate: birthDate,
		Today:     today.Format(clock.DateLayout),
		DaysLived: days,
	})
}
