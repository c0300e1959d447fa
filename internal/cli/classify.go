package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/citizen"
)

// ClassifyResult is the JSON payload of the classify command.
type ClassifyResult struct {
	Age            int                `json:"age"`
	Classification citizen.AgeBracket `json:"classification"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <age>",
		Short: "Print the age bracket for an age",
		Long: `Print the age bracket for an age: minor (0-17), adult (18-64) or
senior adult (65 and over). Negative ages are rejected; pass them after
"--", as in "padron classify -- -3".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(rootOpts, args[0], cmd)
		},
	}
}

func runClassify(opts *RootOptions, arg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	age, err := strconv.Atoi(arg)
	if err != nil {
		_ = f.Error(ErrCodeGeneric, fmt.Sprintf("age %q is not an integer", arg), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("age %q is not an integer", arg))
	}

	bracket, err := citizen.Classify(age)
	if err != nil {
		return failDomain(f, err)
	}

	return f.Success(bracket.String(), ClassifyResult{Age: age, Classification: bracket})
}
