package report_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nimbusctl/nimbus/internal/report"
	"github.com/nimbusctl/nimbus/internal/telemetry"
)

type recordedRequest struct {
	Method    string
	URI       string
	Body      string
	UserAgent string
}

type recordingHandler struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	h.mu.Lock()
	h.requests = append(h.requests, recordedRequest{
		Method:    r.Method,
		URI:       r.URL.RequestURI(),
		Body:      string(body),
		UserAgent: r.UserAgent(),
	})
	h.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func writeHandoffFile(t *testing.T, requests []telemetry.PendingRequest) string {
	t.Helper()
	data, err := json.Marshal(requests)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "nimbus-metrics-test.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDeliverReplaysRecordedRequests(t *testing.T) {
	handler := &recordingHandler{}
	server := httptest.NewServer(handler)
	defer server.Close()

	agent := "NimbusCLI/1.2.3 (linux; amd64)"
	body := "v=1&t=event&ec=Commands"
	path := writeHandoffFile(t, []telemetry.PendingRequest{
		{URL: server.URL + "/collect", Method: "POST", Body: &body, UserAgent: agent},
		{URL: server.URL + "/submit?s=nimbus_cli&rt=total.12", Method: "GET", UserAgent: agent},
	})

	if err := report.New().Deliver(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(handler.requests) != 2 {
		t.Fatalf("expected 2 delivered requests, got %d", len(handler.requests))
	}

	post := handler.requests[0]
	if post.Method != "POST" || post.URI != "/collect" {
		t.Errorf("unexpected first request: %+v", post)
	}
	if post.Body != body {
		t.Errorf("expected body %q, got %q", body, post.Body)
	}
	if post.UserAgent != agent {
		t.Errorf("expected user agent %q, got %q", agent, post.UserAgent)
	}

	get := handler.requests[1]
	if get.Method != "GET" || get.URI != "/submit?s=nimbus_cli&rt=total.12" {
		t.Errorf("unexpected second request: %+v", get)
	}
	if get.Body != "" {
		t.Errorf("expected an empty GET body, got %q", get.Body)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected the handoff file to be removed after delivery")
	}
}

func TestDeliverSkipsFailedRequests(t *testing.T) {
	handler := &recordingHandler{}
	server := httptest.NewServer(handler)
	defer server.Close()

	agent := "NimbusCLI/1.2.3 (linux; amd64)"
	path := writeHandoffFile(t, []telemetry.PendingRequest{
		{URL: "http://127.0.0.1:1/unreachable", Method: "GET", UserAgent: agent},
		{URL: server.URL + "/submit", Method: "GET", UserAgent: agent},
	})

	// One unreachable endpoint must not stop the rest, and delivery
	// failures are not errors.
	if err := report.New().Deliver(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(handler.requests) != 1 {
		t.Errorf("expected the reachable request to be delivered, got %d", len(handler.requests))
	}
}

func TestDeliverUnreadableFile(t *testing.T) {
	if err := report.New().Deliver(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing handoff file")
	}
}
