package connector

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// stubManager is a minimal ims.FeatureManager for connector tests. The
// connector never calls into it; it only hands it to the listener.
type stubManager struct{}

func (stubManager) OpenConnection() error                                 { return nil }
func (stubManager) ReleaseConnection()                                    {}
func (stubManager) UpdateCapabilities(int) error                          { return nil }
func (stubManager) RegisterRegistrationCallback(ims.RegistrationCallback) error { return nil }
func (stubManager) UnregisterRegistrationCallback(ims.RegistrationCallback)     {}
func (stubManager) RegisterAvailabilityCallback(int, ims.AvailabilityCallback) error { return nil }
func (stubManager) UnregisterAvailabilityCallback(int, ims.AvailabilityCallback)     {}
func (stubManager) IsCapable(ims.Capability, ims.RegistrationTech) (bool, error) {
	return false, nil
}
func (stubManager) IsAvailable(ims.Capability, ims.RegistrationTech) (bool, error) {
	return false, nil
}
func (stubManager) RegistrationTech() (ims.RegistrationTech, error) { return ims.TechNone, nil }
func (stubManager) SubscriptionID() int                             { return 1 }

// testListener records lifecycle callbacks on channels so tests can wait
// for them.
type testListener struct {
	readyCh chan ims.FeatureManager
	lostCh  chan ims.UnavailableReason

	// rejections is the number of ConnectionReady calls to reject before
	// accepting.
	rejections atomic.Int32

	// onReady, when set before Connect, runs inside ConnectionReady before
	// the binding is accepted.
	onReady func()
}

func newTestListener() *testListener {
	return &testListener{
		readyCh: make(chan ims.FeatureManager, 8),
		lostCh:  make(chan ims.UnavailableReason, 8),
	}
}

func (l *testListener) ConnectionReady(manager ims.FeatureManager) error {
	if l.rejections.Load() > 0 {
		l.rejections.Add(-1)
		return errors.New("rejected")
	}
	if l.onReady != nil {
		l.onReady()
	}
	l.readyCh <- manager
	return nil
}

func (l *testListener) ConnectionUnavailable(reason ims.UnavailableReason) {
	l.lostCh <- reason
}

func (l *testListener) waitReady(t *testing.T) ims.FeatureManager {
	t.Helper()
	select {
	case m := <-l.readyCh:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for ConnectionReady")
		return nil
	}
}

func (l *testListener) waitLost(t *testing.T) ims.UnavailableReason {
	t.Helper()
	select {
	case r := <-l.lostCh:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for ConnectionUnavailable")
		return 0
	}
}

// fastBackoff keeps retry delays negligible in tests.
var fastBackoff = BackoffConfig{
	Initial:    time.Millisecond,
	Max:        5 * time.Millisecond,
	Multiplier: 2.0,
	Jitter:     0,
}

func waitForState(t *testing.T, c *Connector, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("State() = %v, want %v", c.State(), want)
}

func TestConnector(t *testing.T) {
	t.Run("InitialState", func(t *testing.T) {
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: newTestListener(),
		})
		defer c.Disconnect()

		if c.State() != StateIdle {
			t.Errorf("Initial state = %v, want StateIdle", c.State())
		}
	})

	t.Run("SuccessfulConnect", func(t *testing.T) {
		listener := newTestListener()
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.Connect()

		if m := listener.waitReady(t); m == nil {
			t.Fatal("ConnectionReady got nil manager")
		}
		waitForState(t, c, StateConnected)
	})

	t.Run("ConnectIdempotent", func(t *testing.T) {
		var binds atomic.Int32
		listener := newTestListener()
		c := New(Config{
			Bind: func(ctx context.Context) (ims.FeatureManager, error) {
				binds.Add(1)
				return stubManager{}, nil
			},
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.Connect()
		listener.waitReady(t)
		waitForState(t, c, StateConnected)

		// Further Connect calls while running must not rebind.
		c.Connect()
		c.Connect()
		time.Sleep(20 * time.Millisecond)

		if got := binds.Load(); got != 1 {
			t.Errorf("Bind called %d times, want 1", got)
		}
	})

	t.Run("RetryAfterBindFailure", func(t *testing.T) {
		var binds atomic.Int32
		listener := newTestListener()
		c := New(Config{
			Bind: func(ctx context.Context) (ims.FeatureManager, error) {
				if binds.Add(1) < 3 {
					return nil, errors.New("service not running")
				}
				return stubManager{}, nil
			},
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.Connect()
		listener.waitReady(t)
		waitForState(t, c, StateConnected)

		if got := binds.Load(); got != 3 {
			t.Errorf("Bind called %d times, want 3", got)
		}
		// Backoff resets once the listener accepted the connection.
		if got := c.BackoffAttempts(); got != 0 {
			t.Errorf("BackoffAttempts() = %d after success, want 0", got)
		}
	})

	t.Run("RetryAfterListenerRejection", func(t *testing.T) {
		listener := newTestListener()
		listener.rejections.Store(2)
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.Connect()

		// The rejected bindings are discarded; the accepted one arrives.
		listener.waitReady(t)
		waitForState(t, c, StateConnected)
	})

	t.Run("NotifyLostReconnects", func(t *testing.T) {
		listener := newTestListener()
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.Connect()
		listener.waitReady(t)
		waitForState(t, c, StateConnected)

		c.NotifyLost(ims.ReasonNotReady)

		if reason := listener.waitLost(t); reason != ims.ReasonNotReady {
			t.Errorf("ConnectionUnavailable reason = %v, want %v", reason, ims.ReasonNotReady)
		}

		// The connector reconnects on its own.
		listener.waitReady(t)
		waitForState(t, c, StateConnected)
	})

	t.Run("NotifyLostDuringReadyCallback", func(t *testing.T) {
		// A loss reported from inside ConnectionReady lands before the
		// connector records the Connected state. It must still be
		// delivered and trigger a reconnect, not be silently dropped.
		listener := newTestListener()
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		var fired atomic.Bool
		listener.onReady = func() {
			if fired.CompareAndSwap(false, true) {
				c.NotifyLost(ims.ReasonDisconnected)
			}
		}

		c.Connect()
		listener.waitReady(t)

		if reason := listener.waitLost(t); reason != ims.ReasonDisconnected {
			t.Errorf("ConnectionUnavailable reason = %v, want %v", reason, ims.ReasonDisconnected)
		}

		// The connector reconnects on its own.
		listener.waitReady(t)
		waitForState(t, c, StateConnected)
	})

	t.Run("NotifyLostIgnoredWhileDisconnected", func(t *testing.T) {
		listener := newTestListener()
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})
		defer c.Disconnect()

		c.NotifyLost(ims.ReasonDisconnected)

		select {
		case <-listener.lostCh:
			t.Error("ConnectionUnavailable delivered while never connected")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("Disconnect", func(t *testing.T) {
		listener := newTestListener()
		c := New(Config{
			Bind:     func(ctx context.Context) (ims.FeatureManager, error) { return stubManager{}, nil },
			Listener: listener,
			Backoff:  fastBackoff,
		})

		c.Connect()
		listener.waitReady(t)

		c.Disconnect()

		if c.State() != StateStopped {
			t.Errorf("State() = %v after Disconnect, want StateStopped", c.State())
		}

		// Owner-initiated teardown: no ConnectionUnavailable.
		select {
		case <-listener.lostCh:
			t.Error("ConnectionUnavailable delivered on Disconnect")
		case <-time.After(20 * time.Millisecond):
		}

		// Disconnect is safe to repeat; Connect afterwards is a no-op.
		c.Disconnect()
		c.Connect()
		if c.State() != StateStopped {
			t.Errorf("State() = %v after Connect on stopped connector, want StateStopped", c.State())
		}
	})

	t.Run("DisconnectDuringRetry", func(t *testing.T) {
		listener := newTestListener()
		c := New(Config{
			Bind: func(ctx context.Context) (ims.FeatureManager, error) {
				return nil, errors.New("service not running")
			},
			Listener: listener,
			Backoff: BackoffConfig{
				Initial:    time.Hour, // Never fires during the test
				Max:        time.Hour,
				Multiplier: 2.0,
				Jitter:     0,
			},
		})

		c.Connect()
		waitForState(t, c, StateRetrying)

		// Disconnect must not wait out the backoff.
		done := make(chan struct{})
		go func() {
			c.Disconnect()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Disconnect blocked on a pending retry")
		}
	})

	t.Run("StateString", func(t *testing.T) {
		states := map[State]string{
			StateIdle:       "IDLE",
			StateConnecting: "CONNECTING",
			StateConnected:  "CONNECTED",
			StateRetrying:   "RETRYING",
			StateStopped:    "STOPPED",
			State(99):       "UNKNOWN",
		}
		for state, want := range states {
			if got := state.String(); got != want {
				t.Errorf("State(%d).String() = %q, want %q", state, got, want)
			}
		}
	})
}
