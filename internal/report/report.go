// Package report implements the detached delivery side of the metrics
// handoff: it replays the pending requests recorded in a handoff file and
// then discards the file. It runs in its own short-lived process, so
// failures here are logged and forgotten — there is no retry and nobody
// waiting on the result.
package report

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nimbusctl/nimbus/internal/telemetry"
)

const deliveryTimeout = 30 * time.Second

// Reporter delivers handoff files over HTTP.
type Reporter struct {
	client *http.Client
	log    logrus.FieldLogger
}

// New creates a Reporter with a client tuned for a handful of short
// requests to at most two hosts.
func New() *Reporter {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConnsPerHost: 2,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Reporter{
		client: &http.Client{Timeout: deliveryTimeout, Transport: transport},
		log:    logrus.StandardLogger().WithField("component", "report"),
	}
}

// Deliver replays every request recorded in the handoff file at path and
// removes the file. Individual delivery failures are logged and skipped;
// only an unreadable file is an error.
func (r *Reporter) Deliver(path string) error {
	requests, err := telemetry.ReadHandoff(path)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(path) }()

	for _, req := range requests {
		if err := r.send(req); err != nil {
			r.log.WithError(err).WithField("url", req.URL).Debug("delivery failed")
		}
	}
	return nil
}

func (r *Reporter) send(pending telemetry.PendingRequest) error {
	var body io.Reader
	if pending.Body != nil {
		body = strings.NewReader(*pending.Body)
	}

	req, err := http.NewRequest(pending.Method, pending.URL, body)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", pending.UserAgent)
	if pending.Body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
