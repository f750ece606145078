// Package platform probes the environment the CLI is running in: operating
// system fingerprint, hostname-derived install class, and whether the
// invocation is interactive.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Install classes reported as the cd2 analytics dimension.
const (
	InstallClassInternal = "Internal"
	InstallClassExternal = "External"
)

// internalHostSuffix marks machines inside the Nimbus corp network.
const internalHostSuffix = ".nimbus.dev"

// Platform describes the host environment of the current process.
type Platform struct {
	OS          string
	Arch        string
	Hostname    string
	Interactive bool
}

// Current probes the running process's environment.
func Current() Platform {
	hostname, _ := os.Hostname()
	return Platform{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		Hostname:    hostname,
		Interactive: stderrIsTerminal(),
	}
}

// UserAgentFragment renders the platform portion of the User-Agent string,
// e.g. "(linux; amd64)".
func (p Platform) UserAgentFragment() string {
	return fmt.Sprintf("(%s; %s)", p.OS, p.Arch)
}

// InstallClass classifies the installation by hostname suffix.
func (p Platform) InstallClass() string {
	if strings.HasSuffix(strings.ToLower(p.Hostname), internalHostSuffix) {
		return InstallClassInternal
	}
	return InstallClassExternal
}

// stderrIsTerminal reports whether stderr is attached to a character
// device. Stderr is probed rather than stdout so that piping command
// output does not flip the interactivity dimension.
func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
