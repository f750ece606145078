package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Property keys understood by the CLI. Environment variables override the
// properties file: core.project becomes NIMBUS_CORE_PROJECT and so on.
const (
	KeyDisableUsageReporting = "core.disable_usage_reporting"
	KeyProject               = "core.project"
	KeyEnvironment           = "metrics.environment"
)

const envPrefix = "NIMBUS"

// Properties is a read-only view of the user's configuration, merged from
// the properties file and NIMBUS_* environment variables.
type Properties struct {
	v *viper.Viper
}

// LoadProperties reads the properties file at path. A missing or unreadable
// file is not an error: it behaves as if no preferences were set.
func LoadProperties(path string) *Properties {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Ignore read errors: absent preferences fall through to defaults.
	_ = v.ReadInConfig()

	return &Properties{v: v}
}

// EnvName returns the environment variable that overrides the given key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (p *Properties) lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(EnvName(key)); ok && val != "" {
		return val, true
	}
	if p.v.IsSet(key) {
		return p.v.GetString(key), true
	}
	return "", false
}

// GetString returns the value for key, or "" when it is not set anywhere.
func (p *Properties) GetString(key string) string {
	val, _ := p.lookup(key)
	return val
}

// GetBool returns the value for key and whether it was explicitly set.
// Values that are set but do not parse as a bool count as unset.
func (p *Properties) GetBool(key string) (value, set bool) {
	raw, ok := p.lookup(key)
	if !ok {
		return false, false
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return parsed, true
}
