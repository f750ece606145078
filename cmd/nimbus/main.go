package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbusctl/nimbus/internal/telemetry"
)

func main() {
	os.Exit(run(time.Now(), os.Args[1:]))
}

func run(start time.Time, args []string) int {
	// Completion requests must stay invisible to usage reporting, so the
	// marker is set before the first telemetry call decides the policy.
	if isCompletionRequest(args) {
		os.Setenv(telemetry.CompletionMarkerEnv, "1")
	}

	telemetry.Started(start)
	defer telemetry.Shutdown()

	root := newRootCommand(args)
	if err := root.Execute(); err != nil {
		telemetry.Error(lastCommandPath, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// isCompletionRequest reports whether the invocation is one of cobra's
// hidden completion entry points driven by the generated shell scripts.
func isCompletionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}
