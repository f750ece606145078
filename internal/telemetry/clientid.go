package telemetry

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// loadOrCreateClientID returns the stable anonymous client id for this
// installation, generating and persisting a fresh one on first use.
//
// The id is 128 random bits rendered as 32 lowercase hex characters.
// Existing file contents are returned verbatim without format validation.
// Two processes racing on a fresh installation may still each write their
// own id; a best-effort lock narrows that window but nothing ever blocks
// or fails because of it.
func loadOrCreateClientID(path string) (string, error) {
	if id := readClientID(path); id != "" {
		return id, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	if locked, err := lock.TryLock(); err == nil && locked {
		defer func() { _ = lock.Unlock() }()
		// Another process may have won the race before the lock.
		if id := readClientID(path); id != "" {
			return id, nil
		}
	}

	id := newClientID()
	if err := os.WriteFile(path, []byte(id), 0o600); err != nil {
		return "", fmt.Errorf("persist client id: %w", err)
	}
	return id, nil
}

func readClientID(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func newClientID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
