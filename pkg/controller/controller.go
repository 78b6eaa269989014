package controller

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rcslink-protocol/rcslink-go/pkg/connector"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
	"github.com/rcslink-protocol/rcslink-go/pkg/log"
	"github.com/rcslink-protocol/rcslink-go/pkg/registration"
)

// Connector is the subset of connector.Connector the controller drives.
// Satisfied by *connector.Connector; tests substitute fakes.
type Connector interface {
	// Connect starts connecting asynchronously.
	Connect()

	// Disconnect shuts the connector down.
	Disconnect()
}

// ConnectorFactory creates the connector bound to the controller's
// listener. Called once, on the first Start.
type ConnectorFactory func(listener connector.Listener) Connector

// StateNotifier announces connectivity changes beyond this controller,
// e.g. to a process-wide connection-state registry. Lifecycle is owned by
// the caller; the controller only invokes it at transition points, after a
// connection is fully set up and after one is torn down.
type StateNotifier interface {
	ConnectivityChanged(slot int, connected bool)
}

// Config configures a FeatureController.
type Config struct {
	// Slot is the logical endpoint this controller serves. Immutable.
	Slot int

	// SubscriptionID is the initially associated subscription.
	SubscriptionID int

	// ConnectorFactory creates the connector on Start. Required.
	ConnectorFactory ConnectorFactory

	// Tracker tracks registration state. A fresh tracker is created when
	// nil. The controller installs the tracker's update hook to log
	// registration transitions.
	Tracker *registration.Tracker

	// Notifier receives connectivity announcements. Optional.
	Notifier StateNotifier

	// Logger receives connection events. NoopLogger when nil.
	Logger log.Logger
}

// FeatureController owns the connection to the feature service for one
// slot and the features attached to it.
type FeatureController struct {
	mu sync.Mutex

	slot    int
	subID   int
	tracker *registration.Tracker

	factory  ConnectorFactory
	notifier StateNotifier
	logger   log.Logger

	// All nil/false until Start and between connections.
	conn      Connector
	manager   ims.FeatureManager
	connID    string
	destroyed bool

	features *Registry
}

// New creates a controller for the given slot. Call Start to begin
// connecting.
func New(cfg Config) *FeatureController {
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = registration.NewTracker()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	c := &FeatureController{
		slot:     cfg.Slot,
		subID:    cfg.SubscriptionID,
		tracker:  tracker,
		factory:  cfg.ConnectorFactory,
		notifier: cfg.Notifier,
		logger:   logger,
		features: NewRegistry(),
	}
	tracker.OnUpdate(c.logRegistration)
	return c
}

// Start begins connecting to the feature service. The first call creates
// the connector and triggers its connect; subsequent calls are no-ops.
// Start never blocks on the connection outcome.
func (c *FeatureController) Start() {
	c.mu.Lock()
	if c.conn != nil || c.destroyed {
		c.mu.Unlock()
		return
	}
	conn := c.factory(&connectorListener{c: c})
	c.conn = conn
	c.mu.Unlock()

	// Fire-and-forget trigger, never under the lock.
	conn.Connect()
}

// AddFeature registers feature under kind, replacing any prior
// registration. The feature immediately receives a synchronous OnConnected
// or OnDisconnected reflecting the current connection state, so a feature
// added after the connection was established is not left unaware of it.
func (c *FeatureController) AddFeature(kind FeatureKind, feature Feature) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.features.Add(kind, feature)
	if c.manager != nil {
		feature.OnConnected(c.manager)
	} else {
		feature.OnDisconnected()
	}
}

// GetFeature returns the feature registered under kind.
func (c *FeatureController) GetFeature(kind FeatureKind) (Feature, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.features.Get(kind)
}

// RemoveFeature unregisters kind and delivers OnDestroy to the removed
// feature. Removing a kind that was never registered is a no-op; callers
// must not rely on it.
func (c *FeatureController) RemoveFeature(kind FeatureKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if feature := c.features.Remove(kind); feature != nil {
		feature.OnDestroy()
	}
}

// HasActiveFeatures reports whether any features are registered.
func (c *FeatureController) HasActiveFeatures() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.features.Len() > 0
}

// UpdateAssociatedSubscription records the new associated subscription,
// pushes a best-effort capability refresh, and notifies every feature in
// registration order.
func (c *FeatureController) UpdateAssociatedSubscription(newSubID int) {
	c.mu.Lock()
	c.subID = newSubID
	manager := c.manager
	c.mu.Unlock()

	c.refreshCapabilities(manager, newSubID, "subscription change")

	c.mu.Lock()
	c.features.Each(func(_ FeatureKind, f Feature) {
		f.OnAssociatedSubscriptionUpdated(newSubID)
	})
	c.mu.Unlock()
}

// OnCarrierConfigChanged pushes a best-effort capability refresh for the
// associated subscription and notifies every feature in registration
// order.
func (c *FeatureController) OnCarrierConfigChanged() {
	c.mu.Lock()
	subID := c.subID
	manager := c.manager
	c.mu.Unlock()

	c.refreshCapabilities(manager, subID, "carrier config change")

	c.mu.Lock()
	c.features.Each(func(_ FeatureKind, f Feature) {
		f.OnCarrierConfigChanged()
	})
	c.mu.Unlock()
}

// Destroy tears the controller down: a live binding is released, the
// connector is disconnected, every feature receives OnDisconnected
// followed by OnDestroy, and the registry is cleared. A connect callback
// racing with Destroy is torn down instead
// of installed. Destroy must be called at most once.
func (c *FeatureController) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	conn := c.conn
	manager := c.manager
	c.manager = nil
	c.connID = ""
	c.features.Each(func(_ FeatureKind, f Feature) {
		f.OnDisconnected()
		f.OnDestroy()
	})
	c.features.Clear()
	c.mu.Unlock()

	if manager != nil {
		c.teardownConnection(manager)
	} else {
		c.tracker.Reset()
	}

	if conn != nil {
		// Fire-and-forget trigger, never under the lock.
		conn.Disconnect()
	}
}

// RegisterRegistrationCallback arms cb for registration events on the live
// connection. Returns ims.ErrServiceUnavailable while disconnected.
func (c *FeatureController) RegisterRegistrationCallback(cb ims.RegistrationCallback) error {
	manager := c.managerSnapshot()
	if manager == nil {
		return ims.ErrServiceUnavailable
	}
	return manager.RegisterRegistrationCallback(cb)
}

// UnregisterRegistrationCallback disarms cb. Unregistering from a
// connection that no longer exists is not an error.
func (c *FeatureController) UnregisterRegistrationCallback(cb ims.RegistrationCallback) {
	if manager := c.managerSnapshot(); manager != nil {
		manager.UnregisterRegistrationCallback(cb)
	}
}

// RegisterAvailabilityCallback arms cb for capability availability updates
// on the given subscription. Returns ims.ErrServiceUnavailable while
// disconnected.
func (c *FeatureController) RegisterAvailabilityCallback(subID int, cb ims.AvailabilityCallback) error {
	manager := c.managerSnapshot()
	if manager == nil {
		return ims.ErrServiceUnavailable
	}
	return manager.RegisterAvailabilityCallback(subID, cb)
}

// UnregisterAvailabilityCallback disarms cb. Unregistering from a
// connection that no longer exists is not an error.
func (c *FeatureController) UnregisterAvailabilityCallback(subID int, cb ims.AvailabilityCallback) {
	if manager := c.managerSnapshot(); manager != nil {
		manager.UnregisterAvailabilityCallback(subID, cb)
	}
}

// IsCapable reports whether the capability is supported over the given
// technology. Returns ims.ErrServiceUnavailable while disconnected.
func (c *FeatureController) IsCapable(capability ims.Capability, tech ims.RegistrationTech) (bool, error) {
	manager := c.managerSnapshot()
	if manager == nil {
		return false, ims.ErrServiceUnavailable
	}
	return manager.IsCapable(capability, tech)
}

// IsAvailable reports whether the capability is currently available over
// the given technology. Returns ims.ErrServiceUnavailable while
// disconnected.
func (c *FeatureController) IsAvailable(capability ims.Capability, tech ims.RegistrationTech) (bool, error) {
	manager := c.managerSnapshot()
	if manager == nil {
		return false, ims.ErrServiceUnavailable
	}
	return manager.IsAvailable(capability, tech)
}

// RegistrationTech returns the technology of the current registration, or
// TechNone while disconnected or on error.
func (c *FeatureController) RegistrationTech() ims.RegistrationTech {
	manager := c.managerSnapshot()
	if manager == nil {
		return ims.TechNone
	}
	tech, err := manager.RegistrationTech()
	if err != nil {
		return ims.TechNone
	}
	return tech
}

// RegistrationState returns the current registration state.
func (c *FeatureController) RegistrationState() ims.RegistrationState {
	return c.tracker.State()
}

// AssociatedSubID returns the subscription the live connection serves, or
// ims.InvalidSubscriptionID while disconnected.
func (c *FeatureController) AssociatedSubID() int {
	manager := c.managerSnapshot()
	if manager == nil {
		return ims.InvalidSubscriptionID
	}
	return manager.SubscriptionID()
}

// Connected reports whether a connection is currently live.
func (c *FeatureController) Connected() bool {
	return c.managerSnapshot() != nil
}

// Slot returns the slot this controller serves.
func (c *FeatureController) Slot() int {
	return c.slot
}

// Tracker returns the registration tracker.
func (c *FeatureController) Tracker() *registration.Tracker {
	return c.tracker
}

// connectionReady installs a fresh binding. The three setup steps (open
// the persistent listener, push a capability refresh, arm the registration
// callback) run before any feature can observe the binding; a failure in
// any of them aborts the transition and the error tells the connector to
// retry with backoff.
func (c *FeatureController) connectionReady(manager ims.FeatureManager) error {
	if manager == nil {
		c.logError("connection ready with nil manager", "connectionReady")
		return fmt.Errorf("connectionReady: %w", ims.ErrServiceDown)
	}

	c.mu.Lock()
	subID := c.subID
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed {
		return nil
	}

	if err := c.setupConnection(manager, subID); err != nil {
		c.logError(err.Error(), "setupConnection")
		return fmt.Errorf("connection setup: %w", ims.ErrServiceDown)
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		// Lost the race with Destroy: tear the fresh binding down instead
		// of installing it.
		c.teardownConnection(manager)
		return nil
	}
	c.manager = manager
	c.connID = uuid.NewString()
	connID := c.connID
	c.features.Each(func(_ FeatureKind, f Feature) {
		f.OnConnected(manager)
	})
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.ConnectivityChanged(c.slot, true)
	}
	c.logStateChange(connID, "DISCONNECTED", "CONNECTED", "")
	return nil
}

// connectionUnavailable tears down the live binding. Teardown calls run
// while the binding is still valid, before the handle is cleared and the
// features are told.
func (c *FeatureController) connectionUnavailable(reason ims.UnavailableReason) {
	if reason == ims.ReasonServerUnavailable {
		c.logError("unexpected - connection unavailable due to server unavailable", "connectionUnavailable")
	}

	manager := c.managerSnapshot()
	if manager != nil {
		c.teardownConnection(manager)
	}

	c.mu.Lock()
	connID := c.connID
	c.manager = nil
	c.connID = ""
	c.features.Each(func(_ FeatureKind, f Feature) {
		f.OnDisconnected()
	})
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.ConnectivityChanged(c.slot, false)
	}
	c.logStateChange(connID, "CONNECTED", "DISCONNECTED", reason.String())
}

// setupConnection performs the three-step setup against a fresh binding.
func (c *FeatureController) setupConnection(manager ims.FeatureManager, subID int) error {
	if err := manager.OpenConnection(); err != nil {
		return fmt.Errorf("open connection: %w", err)
	}
	if err := manager.UpdateCapabilities(subID); err != nil {
		return fmt.Errorf("update capabilities: %w", err)
	}
	if err := manager.RegisterRegistrationCallback(c.tracker.CallbackHandle()); err != nil {
		return fmt.Errorf("register registration callback: %w", err)
	}
	return nil
}

// teardownConnection disarms the registration callback and releases the
// persistent listener, then resets tracked registration state.
func (c *FeatureController) teardownConnection(manager ims.FeatureManager) {
	manager.UnregisterRegistrationCallback(c.tracker.CallbackHandle())
	manager.ReleaseConnection()
	c.tracker.Reset()
}

// refreshCapabilities pushes a capability refresh. Best effort: failures
// are logged, never surfaced or retried.
func (c *FeatureController) refreshCapabilities(manager ims.FeatureManager, subID int, trigger string) {
	if manager == nil {
		return
	}
	if err := manager.UpdateCapabilities(subID); err != nil {
		c.logError(fmt.Sprintf("capability refresh failed: %v", err), "refreshCapabilities")
		return
	}
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connIDSnapshot(),
		Slot:         c.slot,
		Category:     log.CategoryCapability,
		Capability: &log.CapabilityEvent{
			SubscriptionID: subID,
			Trigger:        trigger,
		},
	})
}

// managerSnapshot returns the live binding, or nil.
func (c *FeatureController) managerSnapshot() ims.FeatureManager {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manager
}

// connIDSnapshot returns the current connect-cycle ID, or "".
func (c *FeatureController) connIDSnapshot() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connID
}

func (c *FeatureController) logStateChange(connID, from, to, reason string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Slot:         c.slot,
		Category:     log.CategoryStateChange,
		StateChange: &log.StateChangeEvent{
			From:   from,
			To:     to,
			Reason: reason,
		},
	})
}

// logRegistration records a registration transition absorbed by the
// tracker. Runs on the callback delivery goroutine.
func (c *FeatureController) logRegistration(state ims.RegistrationState, tech ims.RegistrationTech) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connIDSnapshot(),
		Slot:         c.slot,
		Category:     log.CategoryRegistration,
		Registration: &log.RegistrationEvent{
			State: state.String(),
			Tech:  tech.String(),
		},
	})
}

func (c *FeatureController) logError(message, op string) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connIDSnapshot(),
		Slot:         c.slot,
		Category:     log.CategoryError,
		Error: &log.ErrorEvent{
			Message: message,
			Op:      op,
		},
	})
}

// connectorListener adapts connector callbacks onto the controller. A
// named type rather than inline closures so it can be exercised directly
// in tests.
type connectorListener struct {
	c *FeatureController
}

func (l *connectorListener) ConnectionReady(manager ims.FeatureManager) error {
	return l.c.connectionReady(manager)
}

func (l *connectorListener) ConnectionUnavailable(reason ims.UnavailableReason) {
	l.c.connectionUnavailable(reason)
}

// Compile-time interface satisfaction checks.
var (
	_ connector.Listener = (*connectorListener)(nil)
	_ Connector          = (*connector.Connector)(nil)
)
