package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstallConfigDefaultsWhenMissing(t *testing.T) {
	cfg := LoadInstallConfig(filepath.Join(t.TempDir(), "install.yaml"))

	if cfg.ReleaseChannel != "stable" {
		t.Errorf("expected stable channel, got %q", cfg.ReleaseChannel)
	}
	if cfg.DisableUsageReporting {
		t.Error("expected usage reporting enabled by default")
	}
}

func TestInstallConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	contents := "release_channel: beta\ndisable_usage_reporting: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := LoadInstallConfig(path)
	if cfg.ReleaseChannel != "beta" {
		t.Errorf("expected beta channel, got %q", cfg.ReleaseChannel)
	}
	if !cfg.DisableUsageReporting {
		t.Error("expected usage reporting disabled")
	}
}

func TestInstallConfigMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := LoadInstallConfig(path)
	if cfg.ReleaseChannel != "stable" || cfg.DisableUsageReporting {
		t.Errorf("expected defaults for malformed file, got %+v", cfg)
	}
}
