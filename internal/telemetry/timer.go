package telemetry

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// actionSanitizer rewrites characters that are reserved as separators in
// the latency-report action field.
var actionSanitizer = strings.NewReplacer(".", ",", "-", "_")

type checkpoint struct {
	name         string
	offsetMillis int64
}

// commandTimer times one command invocation as a sequence of named
// checkpoints offset from a fixed start instant.
type commandTimer struct {
	startMillis int64
	action      string
	checkpoints []checkpoint
}

func newCommandTimer(start time.Time) *commandTimer {
	return &commandTimer{
		startMillis: start.UnixMilli(),
		action:      "unknown",
	}
}

// setAction replaces the timer's action name; the last write wins.
func (t *commandTimer) setAction(action string) {
	t.action = actionSanitizer.Replace(action)
}

// setActionParts sanitizes each part individually and joins them with
// dots, so the separators between category, action and label survive
// normalization while the parts themselves do not.
func (t *commandTimer) setActionParts(parts ...string) {
	clean := make([]string, len(parts))
	for i, part := range parts {
		clean[i] = actionSanitizer.Replace(part)
	}
	t.action = strings.Join(clean, ".")
}

// record appends a checkpoint at now, relative to the timer's start.
func (t *commandTimer) record(name string, now time.Time) {
	t.checkpoints = append(t.checkpoints, checkpoint{
		name:         name,
		offsetMillis: now.UnixMilli() - t.startMillis,
	})
}

// csiParams renders the timer as latency-report query parameters: the
// action name plus rt, a comma-joined list of name.offset pairs in
// recording order.
func (t *commandTimer) csiParams() url.Values {
	offsets := make([]string, 0, len(t.checkpoints))
	for _, cp := range t.checkpoints {
		offsets = append(offsets, fmt.Sprintf("%s.%d", cp.name, cp.offsetMillis))
	}

	params := url.Values{}
	params.Set("action", t.action)
	params.Set("rt", strings.Join(offsets, ","))
	return params
}
