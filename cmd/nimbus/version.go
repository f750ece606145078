package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbusctl/nimbus/internal/config"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Nimbus CLI %s\n", config.Version)
		},
	}
}
