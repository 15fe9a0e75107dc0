// Package cmd contains the cobra commands shared by every binary of this module
// and the helpers to test them.
package cmd

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-arrower/users/alog"
)

const (
	FlagConfig       = "config"
	FlagVerbose      = "verbose"
	FlagPrintMetrics = "print-metrics"
)

// NewRootCmd returns the root command of a binary called name.
// Its persistent flags are available on all sub commands:
// --verbose lowers the level of logger to debug,
// --print-metrics writes everything gatherer collected after a successful sub command.
// Add the sub commands to it.
func NewRootCmd(name string, logger alog.Logger, gatherer prometheus.Gatherer) *cobra.Command {
	root := &cobra.Command{
		Use:           name,
		Short:         name + " manages the users known to the application",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool(FlagVerbose)
			if !verbose {
				return
			}

			if lc := alog.Unwrap(logger); lc != nil {
				lc.SetLevel(slog.LevelDebug)
			}
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			printMetrics, _ := cmd.Flags().GetBool(FlagPrintMetrics)
			if !printMetrics || gatherer == nil {
				return nil
			}

			return WriteMetrics(cmd.OutOrStdout(), gatherer)
		},
	}

	root.PersistentFlags().String(FlagConfig, "", "config file (default: built-in defaults and USERS_* environment variables)")
	root.PersistentFlags().BoolP(FlagVerbose, "v", false, "log debug messages")
	root.PersistentFlags().Bool(FlagPrintMetrics, false, "print the collected metrics after the command ran")

	root.AddCommand(Version(name))

	return root
}

// ConfigFile returns the value of the --config flag in args.
// All other flags are ignored, so it can be called before any
// command exists, e.g. to load the configuration the commands depend on.
func ConfigFile(args []string) string {
	flags := pflag.NewFlagSet(FlagConfig, pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	file := flags.String(FlagConfig, "", "")

	_ = flags.Parse(args)

	return *file
}
