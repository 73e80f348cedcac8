// Tool options: the flags and the one positional subcommand that
// precede the first "--".
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options is the parsed tool-options group.
type Options struct {
	Subcommand  string // cargo subcommand to invoke, default "build"
	Debugger    string
	CommandFile string
	Filter      string
	NoRun       bool
	LogLevel    logrus.Level
}

// ParseOptions parses the tool-options group (program name at index 0).
// A nil Options with a nil error means help was requested and printed.
func ParseOptions(tool []string) (*Options, error) {
	opts := &Options{Subcommand: "build"}
	level := "info"
	ran := false

	cmd := &cobra.Command{
		Use:           "cargo debug [subcommand] [flags] [-- cargo-args [-- child-args]]",
		Short:         "Wraps a cargo invocation and launches a debugger on the built binary",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			if len(args) == 1 {
				opts.Subcommand = args[0]
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Debugger, "debugger", "gdb", "debugger to launch as a subprocess (gdb, lldb, or dlv)")
	cmd.Flags().StringVar(&opts.CommandFile, "command-file", "", "command file passed to the debugger")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "prefix selecting one executable when the build produces several")
	cmd.Flags().BoolVar(&opts.NoRun, "no-run", false, "print the debug command instead of running it")
	cmd.Flags().StringVar(&level, "log-level", "info", "log verbosity (trace, debug, info, warn, error)")

	cmd.SetArgs(tool[1:])
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if !ran {
		// Cobra handled --help itself and never reached RunE.
		return nil, nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts.LogLevel = lvl
	return opts, nil
}
