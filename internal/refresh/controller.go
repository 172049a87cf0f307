// Package refresh owns the widget's transient state and the
// loading -> delay -> resample -> idle refresh cycle.
//
// The Controller is host agnostic. An event-loop host (the bubbletea widget)
// drives it with BeginRefresh/CompleteRefresh and its own timer; hosts without
// an event loop call Refresh, which arms a controller-owned timer. Either way
// Close is the teardown guard: once closed, late completions never mutate state.
package refresh

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/workcheck/internal/catalog"
	"github.com/rileyhilliard/workcheck/internal/errors"
	"github.com/rileyhilliard/workcheck/internal/logger"
	"github.com/rileyhilliard/workcheck/internal/random"
	"github.com/rileyhilliard/workcheck/internal/util"
)

// Confidence bounds, inclusive.
const (
	MinConfidence = 15
	MaxConfidence = 99
)

// DefaultDelay is the simulated query time of one refresh.
const DefaultDelay = 400 * time.Millisecond

// State is everything a renderer needs to draw one frame.
type State struct {
	Status     catalog.Entry
	Confidence int
	Loading    bool
}

// Ticket identifies one armed refresh. Only the most recent ticket can complete.
type Ticket uint64

// OverlapPolicy decides what a refresh request does while one is pending.
type OverlapPolicy int

const (
	// OverlapRestart arms a new delay and supersedes the pending one.
	OverlapRestart OverlapPolicy = iota
	// OverlapIgnore drops requests that arrive while loading.
	OverlapIgnore
)

// String returns the config spelling of the policy.
func (p OverlapPolicy) String() string {
	switch p {
	case OverlapIgnore:
		return "ignore"
	default:
		return "restart"
	}
}

var overlapNames = []string{OverlapRestart.String(), OverlapIgnore.String()}

// ParseOverlap parses "restart" or "ignore" (case-insensitive).
func ParseOverlap(s string) (OverlapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restart":
		return OverlapRestart, nil
	case "ignore":
		return OverlapIgnore, nil
	default:
		suggestion := "Use 'restart' or 'ignore'"
		if near := util.SuggestSimilar(s, overlapNames, 1); len(near) > 0 {
			suggestion = fmt.Sprintf("Did you mean '%s'? %s", near[0], suggestion)
		}
		return OverlapRestart, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown overlap policy %q", s),
			suggestion)
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay overrides DefaultDelay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithOverlap sets the overlapping refresh policy.
func WithOverlap(p OverlapPolicy) Option {
	return func(c *Controller) { c.overlap = p }
}

// WithLogger sets the logger. Defaults to a "[refresh]" env logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnChange registers a callback invoked (outside the lock) after every
// state change made by Refresh and its timer.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	src      random.Source
	delay    time.Duration
	overlap  OverlapPolicy
	log      logger.Logger
	onChange func(State)

	state   State
	current Ticket
	closed  bool
	timer   *time.Timer
}

// New creates a controller over a non-empty catalog.
func New(cat *catalog.Catalog, src random.Source, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		src:     src,
		delay:   DefaultDelay,
		overlap: OverlapRestart,
		log:     logger.NewEnvLogger("[refresh]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize takes the first sample synchronously and clears Loading.
func (c *Controller) Initialize() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sampleLocked()
	c.state.Loading = false
	c.log.Debug("initialized: %s %d%%", c.state.Status.Answer(), c.state.Confidence)
	return c.state
}

// sampleLocked draws the entry first, then the confidence.
func (c *Controller) sampleLocked() {
	c.state.Status = c.catalog.At(random.Index(c.src, c.catalog.Len()))
	c.state.Confidence = random.IntRange(c.src, MinConfidence, MaxConfidence)
}

// BeginRefresh sets Loading immediately and arms a new ticket. It returns
// false when the controller is closed or when OverlapIgnore drops the request.
func (c *Controller) BeginRefresh() (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, false
	}
	if c.overlap == OverlapIgnore && c.state.Loading {
		c.log.Debug("refresh ignored: ticket %d still pending", c.current)
		return 0, false
	}
	c.current++
	c.state.Loading = true
	c.log.Debug("refresh armed: ticket %d", c.current)
	return c.current, true
}

// CompleteRefresh resamples and clears Loading in one step. Stale tickets and
// completions after Close are ignored and return false.
func (c *Controller) CompleteRefresh(t Ticket) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.log.Debug("completion for ticket %d after close dropped", t)
		return false
	}
	if t != c.current || !c.state.Loading {
		c.log.Debug("stale ticket %d (current %d)", t, c.current)
		return false
	}
	c.sampleLocked()
	c.state.Loading = false
	c.log.Debug("refreshed: %s %d%%", c.state.Status.Answer(), c.state.Confidence)
	return true
}

// Refresh begins a refresh and completes it on a controller-owned timer after
// Delay. Returns false if the request was not armed.
func (c *Controller) Refresh() bool {
	t, ok := c.BeginRefresh()
	if !ok {
		return false
	}
	c.notify()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	if t != c.current {
		// a newer request already owns the timer
		return true
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() {
		if c.CompleteRefresh(t) {
			c.notify()
		}
	})
	return true
}

func (c *Controller) notify() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.State())
}

// Close stops any pending controller-owned timer. After Close no operation
// changes state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.log.Debug("closed")
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Delay returns the simulated query time.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Overlap returns the active overlap policy.
func (c *Controller) Overlap() OverlapPolicy {
	return c.overlap
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
