package config

import (
	"os"
	"path/filepath"
)

// Paths resolves the filesystem locations the CLI reads and writes.
type Paths struct {
	// ConfigDir holds per-user state: the properties file and the
	// anonymous client id.
	ConfigDir string

	// InstallRoot is the directory the CLI binary was installed into.
	InstallRoot string
}

// DefaultPaths resolves the standard per-user and installation locations.
func DefaultPaths() (Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, err
	}

	exe, err := os.Executable()
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		ConfigDir:   filepath.Join(base, "nimbus"),
		InstallRoot: filepath.Dir(exe),
	}, nil
}

// PropertiesFile returns the path of the user properties file.
func (p Paths) PropertiesFile() string {
	return filepath.Join(p.ConfigDir, "properties.yaml")
}

// ClientIDFile returns the path of the anonymous analytics client id file.
func (p Paths) ClientIDFile() string {
	return filepath.Join(p.ConfigDir, "analytics_cid")
}

// InstallConfigFile returns the path of the installation-wide config file.
func (p Paths) InstallConfigFile() string {
	return filepath.Join(p.InstallRoot, "install.yaml")
}
