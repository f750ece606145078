package main

import (
	"github.com/spf13/cobra"

	"github.com/nimbusctl/nimbus/internal/report"
	"github.com/nimbusctl/nimbus/internal/telemetry"
)

// newReportCommand is the hidden subcommand run by the detached child the
// collector launches at shutdown. It is not part of the user-facing CLI.
func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:    telemetry.ReportCommandName + " <file>",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return report.New().Deliver(args[0])
		},
	}
}
