package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbusctl/nimbus/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
	}
	cmd.AddCommand(newConfigListCommand())
	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the effective configuration properties",
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := config.DefaultPaths()
			if err != nil {
				return err
			}
			props := config.LoadProperties(paths.PropertiesFile())
			install := config.LoadInstallConfig(paths.InstallConfigFile())

			out := cmd.OutOrStdout()
			for _, key := range []string{config.KeyProject, config.KeyEnvironment} {
				if val := props.GetString(key); val != "" {
					fmt.Fprintf(out, "%s: %s\n", key, val)
				}
			}
			if disabled, set := props.GetBool(config.KeyDisableUsageReporting); set {
				fmt.Fprintf(out, "%s: %t\n", config.KeyDisableUsageReporting, disabled)
			} else {
				fmt.Fprintf(out, "%s: %t (installation default)\n",
					config.KeyDisableUsageReporting, install.DisableUsageReporting)
			}
			fmt.Fprintf(out, "release_channel: %s\n", install.ReleaseChannel)
			return nil
		},
	}
}
