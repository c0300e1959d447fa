package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/padron/internal/clock"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Today   string // dd/mm/yyyy reference date; empty means the clock

	// Clock supplies the reference date when Today is empty.
	Clock clock.Clock

	// TraceIDs stamps JSON responses.
	TraceIDs TraceIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the padron CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{
		Clock:    clock.System{},
		TraceIDs: UUIDv7Generator{},
	})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "padron",
		Short: "padron - person and citizen records",
		Long: `Validate person and Mexican citizen records and compute derived values:
days lived, body mass index and age bracket.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := opts.today(); err != nil {
				return WrapExitError(ExitCommandError, "invalid --today", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Today, "today", "", "reference date dd/mm/yyyy (default: system date)")

	// Add subcommands
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewBMICommand(opts))
	cmd.AddCommand(NewDaysCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))

	return cmd
}

// today returns the reference date for date computations.
func (o *RootOptions) today() (time.Time, error) {
	if o.Today != "" {
		return clock.ParseDate(o.Today, time.Local)
	}
	c := o.Clock
	if c == nil {
		c = clock.System{}
	}
	return c.Now(), nil
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	f := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
	if o.Format == "json" {
		gen := o.TraceIDs
		if gen == nil {
			gen = UUIDv7Generator{}
		}
		f.TraceID = gen.Generate()
	}
	return f
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
