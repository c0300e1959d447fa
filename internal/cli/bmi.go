package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/person"
)

// BMIOptions holds flags for the bmi command.
type BMIOptions struct {
	*RootOptions
	Height float64
	Weight float64
}

// BMIResult is the JSON payload of the bmi command.
type BMIResult struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	BMI    float64 `json:"bmi"`
}

// NewBMICommand creates the bmi command.
func NewBMICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BMIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Compute a body mass index",
		Long: `Compute weight / height² after validating both values.

A zero height passes validation but cannot be divided by; the command
then fails with an arithmetic error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBMI(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Height, "height", 0, "height in meters")
	cmd.Flags().Float64Var(&opts.Weight, "weight", 0, "weight in kilograms")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func runBMI(opts *BMIOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	var p person.Person
	if err := p.SetHeight(opts.Height); err != nil {
		return failDomain(f, err)
	}
	if err := p.SetWeight(opts.Weight); err != nil {
		return failDomain(f, err)
	}

	bmi, err := p.BodyMassIndex()
	if err != nil {
		return failDomain(f, err)
	}

	return f.Success(fmt.Sprintf("%.2f", bmi), BMIResult{Height: p.Height(), Weight: p.Weight(), BMI: bmi})
}
