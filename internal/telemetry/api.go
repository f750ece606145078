package telemetry

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// diagLog returns the logger used for telemetry diagnostics. Telemetry
// never logs above debug: failures here must stay invisible unless the
// user asked for verbose output.
func diagLog() logrus.FieldLogger {
	return logrus.StandardLogger().WithField("component", "telemetry")
}

// capture runs fn and converts any error or panic into a debug log line.
// Every public entry point goes through it: metrics must never break the
// command that is being measured.
func capture(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			diagLog().WithField("op", op).Debugf("recovered: %v", r)
		}
	}()
	if err := fn(); err != nil {
		diagLog().WithField("op", op).WithError(err).Debug("telemetry call failed")
	}
}

// recordEvent queues a usage event and derives the timer action from it.
// Commands and Executions name the timer after category and action;
// Error and Help include the label as well; Installs never touches the
// timer since several installs can happen in one invocation.
func recordEvent(category Category, action, label string, value int) error {
	c := activeCollector()
	if c == nil {
		return nil
	}

	c.EnqueueEvent(Event{Category: category, Action: action, Label: label, Value: value})

	switch category {
	case CategoryCommands, CategoryExecutions:
		c.setTimerActionParts(string(category), action)
	case CategoryError, CategoryHelp:
		c.setTimerActionParts(string(category), action, label)
	}
	return nil
}

// Installs records that a component was installed.
func Installs(componentID, version string) {
	capture("Installs", func() error {
		return recordEvent(CategoryInstalls, componentID, version, 0)
	})
}

// Commands records that a CLI command was run. commandPath is the
// dot-separated command name.
func Commands(commandPath, version string) {
	capture("Commands", func() error {
		if version == "" {
			version = "unknown"
		}
		return recordEvent(CategoryCommands, commandPath, version, 0)
	})
}

// Help records that help for a command was viewed. mode is how help was
// requested (-h, --help, help).
func Help(commandPath, mode string) {
	capture("Help", func() error {
		return recordEvent(CategoryHelp, commandPath, mode, 0)
	})
}

// Error records that a command failed with err. The label is the error's
// Go type, so no user data leaks into the event.
func Error(commandPath string, err error) {
	capture("Error", func() error {
		label := "unknown"
		if err != nil {
			label = fmt.Sprintf("%T", err)
		}
		return recordEvent(CategoryError, commandPath, label, 0)
	})
}

// Executions records that a top-level wrapper script was run.
func Executions(scriptName, version string) {
	capture("Executions", func() error {
		if version == "" {
			version = "unknown"
		}
		return recordEvent(CategoryExecutions, scriptName, version, 0)
	})
}

// Started re-anchors the command timer at start, refining the rough
// anchor taken when the collector was constructed.
func Started(start time.Time) {
	capture("Started", func() error {
		if c := activeCollector(); c != nil {
			c.RestartTimer(start)
		}
		return nil
	})
}

// Loaded records that command loading completed.
func Loaded() {
	capture("Loaded", func() error {
		if c := activeCollector(); c != nil {
			c.Checkpoint(checkpointLoad)
		}
		return nil
	})
}

// Ran records that command execution completed.
func Ran() {
	capture("Ran", func() error {
		if c := activeCollector(); c != nil {
			c.Checkpoint(checkpointRun)
		}
		return nil
	})
}

// Shutdown finalizes the timing event and hands the queued requests to the
// detached reporter. Call it exactly once, at normal process exit.
func Shutdown() {
	capture("Shutdown", func() error {
		c := currentCollector()
		if c == nil {
			return nil
		}
		c.Checkpoint(checkpointTotal)
		c.EnqueueLatencyReport()
		return c.Flush()
	})
}
