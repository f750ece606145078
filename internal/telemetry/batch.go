package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// PendingRequest is one outbound analytics hit awaiting delivery. The four
// fields round-trip exactly through the handoff file; Body is nil for
// requests that carry their payload in the URL.
type PendingRequest struct {
	URL       string  `json:"url"`
	Method    string  `json:"method"`
	Body      *string `json:"body"`
	UserAgent string  `json:"user_agent"`
}

// writeHandoff serializes the drained queue to a fresh private file in dir
// and returns its path. File names embed a ULID so concurrent invocations
// never collide.
func writeHandoff(dir string, requests []PendingRequest) (string, error) {
	data, err := json.Marshal(requests)
	if err != nil {
		return "", fmt.Errorf("serialize pending requests: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("nimbus-metrics-%s.json", ulid.Make()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write handoff file: %w", err)
	}
	return path, nil
}

// ReadHandoff loads a handoff file written by writeHandoff. It is consumed
// by the detached reporter process.
func ReadHandoff(path string) ([]PendingRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read handoff file: %w", err)
	}

	var requests []PendingRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("parse handoff file: %w", err)
	}
	return requests, nil
}
