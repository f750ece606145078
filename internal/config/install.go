package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// InstallConfig carries installation-wide defaults. It is written once by
// the installer and never modified by the CLI itself.
type InstallConfig struct {
	ReleaseChannel        string `yaml:"release_channel"`
	DisableUsageReporting bool   `yaml:"disable_usage_reporting"`
}

func defaultInstallConfig() InstallConfig {
	return InstallConfig{ReleaseChannel: "stable"}
}

// LoadInstallConfig reads the installation config file at path. A missing
// or malformed file yields the built-in defaults.
func LoadInstallConfig(path string) InstallConfig {
	cfg := defaultInstallConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultInstallConfig()
	}
	if cfg.ReleaseChannel == "" {
		cfg.ReleaseChannel = "stable"
	}
	return cfg
}
