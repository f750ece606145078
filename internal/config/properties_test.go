package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProperties(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPropertiesFromFile(t *testing.T) {
	path := writeProperties(t, `
core:
  project: acme-staging
  disable_usage_reporting: true
metrics:
  environment: devshell
`)
	props := LoadProperties(path)

	if got := props.GetString(KeyProject); got != "acme-staging" {
		t.Errorf("expected project acme-staging, got %q", got)
	}
	if got := props.GetString(KeyEnvironment); got != "devshell" {
		t.Errorf("expected environment devshell, got %q", got)
	}
	disabled, set := props.GetBool(KeyDisableUsageReporting)
	if !set || !disabled {
		t.Errorf("expected disable_usage_reporting true/set, got %t/%t", disabled, set)
	}
}

func TestPropertiesMissingFileMeansUnset(t *testing.T) {
	props := LoadProperties(filepath.Join(t.TempDir(), "nope.yaml"))

	if got := props.GetString(KeyProject); got != "" {
		t.Errorf("expected no project, got %q", got)
	}
	if _, set := props.GetBool(KeyDisableUsageReporting); set {
		t.Error("expected the preference to be unset")
	}
}

func TestPropertiesEnvOverridesFile(t *testing.T) {
	path := writeProperties(t, "core:\n  project: from-file\n")
	t.Setenv("NIMBUS_CORE_PROJECT", "from-env")

	props := LoadProperties(path)
	if got := props.GetString(KeyProject); got != "from-env" {
		t.Errorf("expected env to win, got %q", got)
	}
}

func TestPropertiesUnparsableBoolCountsAsUnset(t *testing.T) {
	path := writeProperties(t, "core:\n  disable_usage_reporting: maybe\n")

	props := LoadProperties(path)
	if _, set := props.GetBool(KeyDisableUsageReporting); set {
		t.Error("expected an unparsable bool to count as unset")
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName(KeyDisableUsageReporting); got != "NIMBUS_CORE_DISABLE_USAGE_REPORTING" {
		t.Errorf("unexpected env name %q", got)
	}
}
