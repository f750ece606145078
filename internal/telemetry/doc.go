// Package telemetry collects anonymous usage and latency metrics for a
// single CLI invocation and reports them without ever blocking the command.
//
// Recording is in-memory only: every public call appends to a pending
// request queue owned by a process-wide collector. At shutdown the queue is
// serialized to a private temporary file and handed to a detached child
// process (the hidden metrics-report subcommand) which performs the actual
// network delivery, so the parent can exit immediately.
//
// # Lifecycle
//
// The command shell drives the collector through the package-level API:
//
//	telemetry.Started(startTime)          // anchor the command timer
//	telemetry.Loaded()                    // checkpoint: dispatch resolved
//	telemetry.Commands("config.list", v)  // usage event + timer action
//	telemetry.Ran()                       // checkpoint: command finished
//	defer telemetry.Shutdown()            // final checkpoint, flush, handoff
//
// Every entry point is best-effort: failures are logged at debug level and
// never reach the caller, because metrics must never break the command.
//
// # Disable policy
//
// Whether collection happens is decided once per process, in order: a
// shell-completion marker in the environment disables it; otherwise an
// explicit core.disable_usage_reporting preference wins; otherwise the
// installation default applies. When disabled, no request is ever queued
// and no file or process is ever created.
//
// # Concurrency
//
// Recording calls are expected from the single command-execution goroutine.
// Only the collector's lazy construction is guarded, so a stray concurrent
// first call cannot build two collectors.
package telemetry
