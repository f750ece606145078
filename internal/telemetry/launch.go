package telemetry

import (
	"fmt"
	"os"
	"os/exec"
)

// ReportCommandName is the hidden subcommand the detached child runs to
// deliver a handoff file.
const ReportCommandName = "metrics-report"

// launchReporter starts the current executable as a detached child that
// delivers the handoff file at path, then returns immediately. The parent
// never waits for the child and never learns how delivery went.
func launchReporter(path string, env []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	cmd := exec.Command(exe, ReportCommandName, path)
	cmd.Env = env
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
