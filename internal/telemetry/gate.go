package telemetry

import (
	"os"
	"sync"
	"time"

	"github.com/nimbusctl/nimbus/internal/config"
	"github.com/nimbusctl/nimbus/internal/platform"
)

// Process-wide collector state. The decision whether to collect is made at
// most once per process; the memoized outcome is authoritative even if the
// underlying preferences change afterwards.
var (
	procMu      sync.Mutex
	procDecided bool
	procState   *Collector
)

// activeCollector returns the process collector, constructing it on first
// use, or nil when collection is disabled for this process.
func activeCollector() *Collector {
	procMu.Lock()
	defer procMu.Unlock()

	if procDecided {
		return procState
	}
	procDecided = true

	c, err := newProcessCollector()
	if err != nil {
		// Construction failure (for example an unwritable client id
		// file) disables collection rather than breaking the command.
		diagLog().WithError(err).Debug("metrics collection disabled")
		return nil
	}
	procState = c
	return procState
}

// currentCollector returns the collector only if one was already
// constructed. Shutdown uses it so that a process which never recorded
// anything does not build a collector just to flush nothing.
func currentCollector() *Collector {
	procMu.Lock()
	defer procMu.Unlock()
	return procState
}

// newProcessCollector evaluates the disable policy and, when collection is
// enabled, builds the real collector. Returns (nil, nil) when disabled.
//
// Policy precedence, first match wins: shell-completion marker, explicit
// user preference, installation default.
func newProcessCollector() (*Collector, error) {
	if _, completing := os.LookupEnv(CompletionMarkerEnv); completing {
		return nil, nil
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}

	props := config.LoadProperties(paths.PropertiesFile())
	install := config.LoadInstallConfig(paths.InstallConfigFile())

	disabled, set := props.GetBool(config.KeyDisableUsageReporting)
	if !set {
		disabled = install.DisableUsageReporting
	}
	if disabled {
		return nil, nil
	}

	clientID, err := loadOrCreateClientID(paths.ClientIDFile())
	if err != nil {
		return nil, err
	}

	plat := platform.Current()
	return New(Options{
		Version:           config.Version,
		Channel:           install.ReleaseChannel,
		Environment:       props.GetString(config.KeyEnvironment),
		InstallClass:      plat.InstallClass(),
		Interactive:       plat.Interactive,
		ClientID:          clientID,
		UserAgentFragment: plat.UserAgentFragment(),
		Project: func() string {
			return props.GetString(config.KeyProject)
		},
		Now: time.Now,
	}), nil
}

// resetProcessState clears the memoized gate decision. Tests only.
func resetProcessState() {
	procMu.Lock()
	defer procMu.Unlock()
	procDecided = false
	procState = nil
}
