package connector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// Connector errors.
var (
	ErrStopped = errors.New("connector stopped")
)

// State represents the connector state.
type State uint8

const (
	// StateIdle indicates Connect has not been called yet.
	StateIdle State = iota

	// StateConnecting indicates a bind attempt is in progress or pending.
	StateConnecting

	// StateConnected indicates a binding is live and fully set up.
	StateConnected

	// StateRetrying indicates a failed attempt is waiting out its backoff.
	StateRetrying

	// StateStopped indicates the connector has been shut down.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateRetrying:
		return "RETRYING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// BindFunc performs one bind attempt against the feature service and
// returns a manager for the fresh binding on success.
type BindFunc func(ctx context.Context) (ims.FeatureManager, error)

// Listener receives connection lifecycle events from a Connector.
// Callbacks are delivered sequentially from the connector's goroutine.
type Listener interface {
	// ConnectionReady is called with the manager for a fresh binding.
	// Returning an error rejects the binding: the connector discards it
	// and retries with backoff.
	ConnectionReady(manager ims.FeatureManager) error

	// ConnectionUnavailable is called when a previously ready connection
	// is lost. The connector retries on its own; the listener must not
	// use the manager after this call.
	ConnectionUnavailable(reason ims.UnavailableReason)
}

// Connector manages the asynchronous bind to the feature service for one
// slot and retries failed attempts with exponential backoff.
type Connector struct {
	mu sync.Mutex

	state    State
	bind     BindFunc
	listener Listener
	backoff  *Backoff

	// delivering is true while ConnectionReady is running, so a loss
	// reported from inside the callback is accepted even though the state
	// is not yet StateConnected.
	delivering bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Signals the run loop that an attempt should be made.
	attemptCh chan struct{}

	// Signals the run loop that the live connection was lost.
	lostCh chan ims.UnavailableReason
}

// Config configures a Connector.
type Config struct {
	// Bind performs a single bind attempt. Required.
	Bind BindFunc

	// Listener receives lifecycle events. Required.
	Listener Listener

	// Backoff tunes the retry delays. Zero values use defaults.
	Backoff BackoffConfig
}

// New creates a connector. Connect must be called to start it.
func New(cfg Config) *Connector {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connector{
		state:     StateIdle,
		bind:      cfg.Bind,
		listener:  cfg.Listener,
		backoff:   NewBackoffWithConfig(cfg.Backoff),
		ctx:       ctx,
		cancel:    cancel,
		attemptCh: make(chan struct{}, 1),
		lostCh:    make(chan ims.UnavailableReason, 1),
	}
}

// State returns the current connector state.
func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect starts connecting to the feature service. It returns immediately;
// the outcome is reported through the Listener. Calling Connect again while
// the connector is running is a no-op.
func (c *Connector) Connect() {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return
	}
	c.state = StateConnecting
	c.mu.Unlock()

	c.wg.Add(1)
	go c.run()
	c.triggerAttempt()
}

// Disconnect shuts the connector down. No further Listener callbacks are
// delivered after Disconnect returns; a live binding is abandoned without a
// ConnectionUnavailable callback since the owner initiated the teardown.
func (c *Connector) Disconnect() {
	c.mu.Lock()
	if c.state == StateStopped {
		c.mu.Unlock()
		return
	}
	c.state = StateStopped
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// NotifyLost reports that the live connection was lost. The connector
// delivers ConnectionUnavailable to the listener and re-enters the retry
// loop. Calls while not connected are ignored, except that a loss reported
// while ConnectionReady is still running is queued rather than dropped.
func (c *Connector) NotifyLost(reason ims.UnavailableReason) {
	c.mu.Lock()
	if c.state != StateConnected && !c.delivering {
		c.mu.Unlock()
		return
	}
	if c.state == StateConnected {
		c.state = StateConnecting
	}
	c.mu.Unlock()

	select {
	case c.lostCh <- reason:
	default:
	}
}

// BackoffAttempts returns the number of failed attempts since the last
// successful connection.
func (c *Connector) BackoffAttempts() int {
	return c.backoff.Attempts()
}

// triggerAttempt signals the run loop to make a bind attempt.
func (c *Connector) triggerAttempt() {
	select {
	case c.attemptCh <- struct{}{}:
	default:
	}
}

// run is the connector's goroutine. It serializes bind attempts, listener
// callbacks, and loss handling.
func (c *Connector) run() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		case reason := <-c.lostCh:
			c.mu.Lock()
			if c.state == StateConnected {
				c.state = StateConnecting
			}
			c.mu.Unlock()
			c.listener.ConnectionUnavailable(reason)
			c.triggerAttempt()
		case <-c.attemptCh:
			c.attempt()
		}
	}
}

// attempt performs one bind attempt and hands the result to the listener.
// Both a failed bind and a listener rejection schedule a retry.
func (c *Connector) attempt() {
	manager, err := c.bind(c.ctx)
	if err == nil {
		c.mu.Lock()
		c.delivering = true
		c.mu.Unlock()

		err = c.listener.ConnectionReady(manager)

		// The Connected transition happens atomically with the end of
		// delivery, so NotifyLost never sees a gap between the two.
		c.mu.Lock()
		c.delivering = false
		if err == nil && c.state != StateStopped {
			c.state = StateConnected
			c.mu.Unlock()
			c.backoff.Reset()
			return
		}
		stopped := c.state == StateStopped
		c.mu.Unlock()
		if stopped {
			return
		}
	}

	c.mu.Lock()
	if c.state == StateStopped {
		c.mu.Unlock()
		return
	}
	c.state = StateRetrying
	c.mu.Unlock()

	// A loss queued against a binding the listener rejected is stale; the
	// rejected binding was never installed.
	select {
	case <-c.lostCh:
	default:
	}

	c.scheduleRetry()
}

// scheduleRetry waits out the backoff delay, then triggers another attempt.
func (c *Connector) scheduleRetry() {
	delay := c.backoff.Next()

	select {
	case <-c.ctx.Done():
		return
	case <-time.After(delay):
	}

	c.mu.Lock()
	if c.state != StateRetrying {
		c.mu.Unlock()
		return
	}
	c.state = StateConnecting
	c.mu.Unlock()

	c.triggerAttempt()
}
