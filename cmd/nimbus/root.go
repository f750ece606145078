package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nimbusctl/nimbus/internal/config"
	"github.com/nimbusctl/nimbus/internal/telemetry"
)

// lastCommandPath tracks the resolved command for the error event emitted
// from main when execution fails.
var lastCommandPath = "unknown"

func newRootCommand(argv []string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "nimbus",
		Short:         "Command-line tool for the Nimbus cloud platform",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			lastCommandPath = commandPath(cmd)
			telemetry.Loaded()
			telemetry.Commands(lastCommandPath, config.Version)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			telemetry.Ran()
		},
	}
	configureRootFlags(root.PersistentFlags(), &verbose)
	root.SetArgs(argv)

	root.AddCommand(
		newVersionCommand(),
		newConfigCommand(),
		newReportCommand(),
	)

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		telemetry.Help(commandPath(cmd), helpMode(argv))
		defaultHelp(cmd, args)
	})

	return root
}

// configureRootFlags registers the persistent flags shared by every
// subcommand.
func configureRootFlags(flags *pflag.FlagSet, verbose *bool) {
	flags.BoolVar(verbose, "verbose", false, "Enable debug logging")
}

// helpMode reports how help was requested: the -h shorthand, the --help
// flag, or the help command.
func helpMode(argv []string) string {
	for _, arg := range argv {
		switch arg {
		case "-h":
			return "-h"
		case "--help":
			return "--help"
		}
	}
	return "help"
}

// commandPath renders a command's place in the tree as a dot-separated
// path without the binary name, e.g. "config.list".
func commandPath(cmd *cobra.Command) string {
	path := strings.TrimSpace(strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()))
	if path == "" {
		return cmd.Root().Name()
	}
	return strings.ReplaceAll(path, " ", ".")
}
