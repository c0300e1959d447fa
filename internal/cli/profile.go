package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/citizen"
	"github.com/roach88/padron/internal/clock"
	"github.com/roach88/padron/internal/report"
)

// ProfileOptions holds flags for the profile command.
type ProfileOptions struct {
	*RootOptions
	Name      string
	Age       int
	Height    float64
	Weight    float64
	BirthDate string
	Residence string
	CURP      string
	RFC       string
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Validate a citizen and print its derived values",
		Long: `Build a citizen from flags, running every field through its validation
rule, then print days lived, body mass index and age bracket.

Examples:
  padron profile --name "Raul Hernandez" --age 32 --height 1.63 --weight 72.6
  padron profile --name "Raul Hernandez" --age 32 --height 1.63 --weight 72.6 \
    --birth 12/02/1994 --curp HERR940212HGRRNL07 --rfc HERR940212AB1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "full name, capitalized words")
	cmd.Flags().IntVar(&opts.Age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "height in meters")
	cmd.Flags().Float64Var(&opts.Weight, "weight", 0, "weight in kilograms")
	cmd.Flags().StringVar(&opts.BirthDate, "birth", "", "birth date dd/mm/yyyy")
	cmd.Flags().StringVar(&opts.Residence, "residence", "", "place of residence")
	cmd.Flags().StringVar(&opts.CURP, "curp", "", "18 character CURP")
	cmd.Flags().StringVar(&opts.RFC, "rfc", "", "13 character RFC")
	for _, name := range []string{"name", "age", "height", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runProfile(opts *ProfileOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	today, err := opts.today()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --today", err)
	}
	f.VerboseLog("Reference date: %s", today.Format(clock.DateLayout))

	c, err := citizen.New(opts.Name, opts.Age, opts.Height, opts.Weight)
	if err != nil {
		return failDomain(f, err)
	}
	c.SetResidencePlace(opts.Residence)
	if opts.CURP != "" {
		if err := c.SetCURP(opts.CURP); err != nil {
			return failDomain(f, err)
		}
	}
	if opts.RFC != "" {
		if err := c.SetRFC(opts.RFC); err != nil {
			return failDomain(f, err)
		}
	}

	p, err := report.Build(c, opts.BirthDate, today)
	if err != nil {
		return failDomain(f, err)
	}

	if f.Format == "json" {
		return f.Success("", p)
	}
	return p.WriteText(f.Writer)
}
