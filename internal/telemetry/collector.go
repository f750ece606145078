package telemetry

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nimbusctl/nimbus/internal/config"
)

// LaunchFunc starts a detached process that delivers the handoff file at
// path using the given environment. It returns as soon as the process is
// started; the caller never waits for or inspects the child.
type LaunchFunc func(path string, env []string) error

// Options configures a Collector. Zero fields fall back to production
// defaults; tests inject clocks, launchers and suppliers here.
type Options struct {
	Version      string
	Channel      string
	Environment  string
	InstallClass string
	Interactive  bool
	ClientID     string

	// UserAgentFragment is the platform portion of the User-Agent,
	// e.g. "(linux; amd64)".
	UserAgentFragment string

	// Project supplies the currently configured project id, or "".
	Project func() string

	Now     func() time.Time
	Launch  LaunchFunc
	TempDir string
	Logger  logrus.FieldLogger
}

// Collector accumulates pending analytics requests for one process. It is
// built through New (tests) or the process-wide gate in gate.go, and owns
// the command timer and the pending-request queue exclusively.
type Collector struct {
	log       logrus.FieldLogger
	userAgent string
	gaFixed   url.Values
	csiFixed  url.Values

	project func() string
	hasher  *projectHasher

	timer   *commandTimer
	pending []PendingRequest
	csiSent bool

	now     func() time.Time
	launch  LaunchFunc
	tempDir string
}

// New constructs a Collector from opts. It performs no I/O.
func New(opts Options) *Collector {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Launch == nil {
		opts.Launch = launchReporter
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	if opts.Logger == nil {
		opts.Logger = diagLog()
	}
	if opts.Project == nil {
		opts.Project = func() string { return "" }
	}

	gaFixed := url.Values{}
	gaFixed.Set("v", "1")
	gaFixed.Set("tid", gaTrackingID)
	gaFixed.Set("cid", opts.ClientID)
	gaFixed.Set("t", "event")
	gaFixed.Set("cd1", opts.Channel)
	gaFixed.Set("cd2", opts.InstallClass)
	gaFixed.Set("cd3", opts.Environment)
	gaFixed.Set("cd4", strconv.FormatBool(opts.Interactive))

	csiFixed := url.Values{}
	csiFixed.Set("s", csiServiceID)
	csiFixed.Set("v", "2")
	csiFixed.Set("rls", opts.Version)

	c := &Collector{
		log:       opts.Logger,
		userAgent: fmt.Sprintf("%s/%s %s", config.UserAgentProduct, opts.Version, opts.UserAgentFragment),
		gaFixed:   gaFixed,
		csiFixed:  csiFixed,
		project:   opts.Project,
		hasher:    newProjectHasher(),
		now:       opts.Now,
		launch:    opts.Launch,
		tempDir:   opts.TempDir,
	}
	c.timer = newCommandTimer(c.now())

	c.log.Debug("metrics collector initialized")
	return c
}

// RestartTimer replaces the command timer, re-anchoring it at start. Used
// when the command framework refines its notion of when the invocation
// actually began.
func (c *Collector) RestartTimer(start time.Time) {
	c.timer = newCommandTimer(start)
}

// Checkpoint appends a named checkpoint at the current time.
func (c *Collector) Checkpoint(name string) {
	c.timer.record(name, c.now())
}

// SetTimerAction stores the timer's action name, sanitizing reserved
// separator characters. The last write wins.
func (c *Collector) SetTimerAction(action string) {
	c.timer.setAction(action)
}

// setTimerActionParts derives the action name from event fields, keeping
// the dots that separate the parts.
func (c *Collector) setTimerActionParts(parts ...string) {
	c.timer.setActionParts(parts...)
}

// EnqueueEvent queues one usage hit carrying the event fields, the fixed
// per-process dimensions and, when a project is configured, its one-way
// hash.
func (c *Collector) EnqueueEvent(ev Event) {
	params := url.Values{}
	params.Set("ec", string(ev.Category))
	params.Set("ea", ev.Action)
	params.Set("el", ev.Label)
	params.Set("ev", strconv.Itoa(ev.Value))
	if hash := c.hasher.hash(c.project()); hash != "" {
		params.Set("cd11", hash)
	}
	mergeValues(params, c.gaFixed)

	body := params.Encode()
	c.pending = append(c.pending, PendingRequest{
		URL:       gaEndpoint,
		Method:    http.MethodPost,
		Body:      &body,
		UserAgent: c.userAgent,
	})
}

// EnqueueLatencyReport queues the single latency hit summarizing the full
// checkpoint history. Repeat calls in one process are ignored.
func (c *Collector) EnqueueLatencyReport() {
	if c.csiSent {
		return
	}
	c.csiSent = true

	params := c.timer.csiParams()
	mergeValues(params, c.csiFixed)

	c.pending = append(c.pending, PendingRequest{
		URL:       csiEndpoint + "?" + params.Encode(),
		Method:    http.MethodGet,
		UserAgent: c.userAgent,
	})
}

// PendingCount reports how many requests are queued.
func (c *Collector) PendingCount() int {
	return len(c.pending)
}

// Flush drains the queue, serializes it to a private temporary file and
// hands the file to a detached reporter process. An empty queue is a
// no-op: no file is created and no process is launched.
func (c *Collector) Flush() error {
	if len(c.pending) == 0 {
		return nil
	}
	requests := c.pending
	c.pending = nil

	path, err := writeHandoff(c.tempDir, requests)
	if err != nil {
		return err
	}

	// The child must never collect metrics about itself.
	env := append(os.Environ(), config.EnvName(config.KeyDisableUsageReporting)+"=true")
	if err := c.launch(path, env); err != nil {
		return fmt.Errorf("launch reporter: %w", err)
	}

	c.log.WithField("requests", len(requests)).Debug("metrics reporting process started")
	return nil
}

func mergeValues(dst, src url.Values) {
	for key, vals := range src {
		for _, val := range vals {
			dst.Add(key, val)
		}
	}
}
