package telemetry

// Category classifies a usage event. The set is closed: the analytics
// backend only understands these five.
type Category string

const (
	CategoryInstalls   Category = "Installs"
	CategoryCommands   Category = "Commands"
	CategoryHelp       Category = "Help"
	CategoryError      Category = "Error"
	CategoryExecutions Category = "Executions"
)

// Event is a single categorical usage event.
type Event struct {
	Category Category
	Action   string
	Label    string
	Value    int
}

// Analytics endpoints and fixed identifiers.
const (
	gaEndpoint   = "https://analytics.nimbus.dev/collect"
	gaTrackingID = "NB-74201-1"

	csiEndpoint  = "https://latency.nimbus.dev/submit"
	csiServiceID = "nimbus_cli"
)

// Checkpoint names recorded by the command lifecycle.
const (
	checkpointLoad  = "load"
	checkpointRun   = "run"
	checkpointTotal = "total"
)

// CompletionMarkerEnv is set before any recording happens when the CLI is
// invoked for shell completion; its presence disables collection for the
// process.
const CompletionMarkerEnv = "_NIMBUS_COMPLETE"
