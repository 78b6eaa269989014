package rcslink_test

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rcslink-protocol/rcslink-go/internal/simulator"
	"github.com/rcslink-protocol/rcslink-go/pkg/connector"
	"github.com/rcslink-protocol/rcslink-go/pkg/controller"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// chanNotifier forwards connectivity transitions onto a channel so the
// test can wait for them without polling.
type chanNotifier struct {
	ch chan bool
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{ch: make(chan bool, 16)}
}

func (n *chanNotifier) ConnectivityChanged(_ int, connected bool) {
	n.ch <- connected
}

func (n *chanNotifier) wait(t *testing.T, want bool) {
	t.Helper()
	select {
	case got := <-n.ch:
		if got != want {
			t.Fatalf("connectivity transition = %v, want %v", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for connectivity transition to %v", want)
	}
}

// chanFeature records lifecycle callbacks. Callbacks run under the
// controller's lock, so they only append and signal.
type chanFeature struct {
	mu     sync.Mutex
	events []string

	connectedCh chan struct{}
}

func newChanFeature() *chanFeature {
	return &chanFeature{connectedCh: make(chan struct{}, 16)}
}

func (f *chanFeature) record(event string) {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
}

func (f *chanFeature) OnConnected(_ ims.FeatureManager) {
	f.record("connected")
	select {
	case f.connectedCh <- struct{}{}:
	default:
	}
}

func (f *chanFeature) OnDisconnected() { f.record("disconnected") }

func (f *chanFeature) OnAssociatedSubscriptionUpdated(subID int) {
	f.record(fmt.Sprintf("sub:%d", subID))
}

func (f *chanFeature) OnCarrierConfigChanged() { f.record("carrier") }

func (f *chanFeature) OnDestroy() { f.record("destroy") }

func (f *chanFeature) Dump(w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(w, "events=%d\n", len(f.events))
}

func (f *chanFeature) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	copy(out, f.events)
	return out
}

func (f *chanFeature) waitConnected(t *testing.T) {
	t.Helper()
	select {
	case <-f.connectedCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for feature OnConnected")
	}
}

// newStack wires a controller to a real connector backed by the
// simulator, with fast backoff so retry paths run in test time.
func newStack(t *testing.T, subID int) (*controller.FeatureController, *simulator.Binder, *simulator.Service, *chanNotifier) {
	t.Helper()

	service := simulator.NewService(subID)
	binder := simulator.NewBinder(service)
	notifier := newChanNotifier()

	ctrl := controller.New(controller.Config{
		Slot:           0,
		SubscriptionID: subID,
		ConnectorFactory: func(listener connector.Listener) controller.Connector {
			conn := connector.New(connector.Config{
				Bind:     binder.Bind,
				Listener: listener,
				Backoff: connector.BackoffConfig{
					Initial:    time.Millisecond,
					Max:        10 * time.Millisecond,
					Multiplier: 2.0,
					Jitter:     0,
				},
			})
			binder.Attach(conn)
			return conn
		},
		Notifier: notifier,
	})
	return ctrl, binder, service, notifier
}

// TestE2E_ConnectAndRegister drives a full connect: the feature added
// before Start sees OnConnected once the bind lands, and registration
// events from the service flow into the controller's tracker.
func TestE2E_ConnectAndRegister(t *testing.T) {
	ctrl, _, service, notifier := newStack(t, 42)
	defer ctrl.Destroy()

	feature := newChanFeature()
	ctrl.AddFeature("mmtel", feature)

	ctrl.Start()
	notifier.wait(t, true)
	feature.waitConnected(t)

	if !ctrl.Connected() {
		t.Fatal("Connected() = false after connect")
	}
	if !service.Opened() {
		t.Error("service connection not opened during setup")
	}
	if got := ctrl.AssociatedSubID(); got != 42 {
		t.Errorf("AssociatedSubID() = %d, want 42", got)
	}

	// Setup pushed one capability refresh for the configured subscription.
	pushes := service.CapabilityPushes()
	if len(pushes) != 1 || pushes[0] != 42 {
		t.Errorf("CapabilityPushes() = %v, want [42]", pushes)
	}

	service.EmitRegistered(ims.RegistrationAttributes{
		Tech:           ims.TechLTE,
		AssociatedURIs: []string{"sip:user@example.com"},
	})
	if got := ctrl.RegistrationState(); got != ims.RegistrationStateRegistered {
		t.Errorf("RegistrationState() = %v, want REGISTERED", got)
	}
	if got := ctrl.RegistrationTech(); got != ims.TechLTE {
		t.Errorf("RegistrationTech() = %v, want LTE", got)
	}
}

// TestE2E_RetryUntilServiceUp starts the controller while the service is
// down and verifies the connector keeps retrying until a bind succeeds.
func TestE2E_RetryUntilServiceUp(t *testing.T) {
	ctrl, binder, _, notifier := newStack(t, 1)
	defer ctrl.Destroy()

	binder.SetUp(false)
	ctrl.Start()

	// Let a few attempts fail against the downed service.
	deadline := time.Now().Add(2 * time.Second)
	for {
		select {
		case <-notifier.ch:
			t.Fatal("connected while service was down")
		default:
		}
		if time.Now().After(deadline) {
			t.Fatal("no retry activity observed")
		}
		time.Sleep(5 * time.Millisecond)
		if !ctrl.Connected() {
			break
		}
	}

	binder.SetUp(true)
	notifier.wait(t, true)

	if !ctrl.Connected() {
		t.Fatal("Connected() = false after service came up")
	}
}

// TestE2E_DropAndReconnect drops a live connection and verifies the
// teardown-reconnect cycle: features see disconnected then connected
// again, registration state resets, and queries fail in between.
func TestE2E_DropAndReconnect(t *testing.T) {
	ctrl, binder, service, notifier := newStack(t, 7)
	defer ctrl.Destroy()

	feature := newChanFeature()
	ctrl.AddFeature("mmtel", feature)
	ctrl.Start()
	notifier.wait(t, true)
	feature.waitConnected(t)

	service.EmitRegistered(ims.RegistrationAttributes{Tech: ims.TechIWLAN})

	binder.Drop(ims.ReasonDisconnected)
	notifier.wait(t, false)

	if got := ctrl.RegistrationState(); got != ims.RegistrationStateNotRegistered {
		t.Errorf("RegistrationState() after drop = %v, want NOT_REGISTERED", got)
	}

	// The connector reconnects on its own.
	notifier.wait(t, true)
	feature.waitConnected(t)

	if !ctrl.Connected() {
		t.Fatal("Connected() = false after reconnect")
	}

	events := feature.snapshot()
	var connects, disconnects int
	for _, e := range events {
		switch e {
		case "connected":
			connects++
		case "disconnected":
			disconnects++
		}
	}
	if connects < 2 || disconnects < 1 {
		t.Errorf("feature events = %v, want at least 2 connects and 1 disconnect", events)
	}
}

// TestE2E_SubscriptionChange verifies a subscription change pushes a
// capability refresh over the live connection and fans out to features.
func TestE2E_SubscriptionChange(t *testing.T) {
	ctrl, _, service, notifier := newStack(t, 10)
	defer ctrl.Destroy()

	feature := newChanFeature()
	ctrl.AddFeature("ucse", feature)
	ctrl.Start()
	notifier.wait(t, true)
	feature.waitConnected(t)

	ctrl.UpdateAssociatedSubscription(20)

	pushes := service.CapabilityPushes()
	if len(pushes) != 2 || pushes[0] != 10 || pushes[1] != 20 {
		t.Errorf("CapabilityPushes() = %v, want [10 20]", pushes)
	}

	events := feature.snapshot()
	found := false
	for _, e := range events {
		if e == "sub:20" {
			found = true
		}
	}
	if !found {
		t.Errorf("feature events = %v, missing sub:20", events)
	}
}

// TestE2E_Destroy verifies Destroy tears down the live connection,
// destroys the features, and leaves no reconnect activity behind.
func TestE2E_Destroy(t *testing.T) {
	ctrl, _, service, notifier := newStack(t, 3)

	feature := newChanFeature()
	ctrl.AddFeature("mmtel", feature)
	ctrl.Start()
	notifier.wait(t, true)
	feature.waitConnected(t)

	ctrl.Destroy()

	if ctrl.Connected() {
		t.Error("Connected() = true after Destroy")
	}
	if ctrl.HasActiveFeatures() {
		t.Error("HasActiveFeatures() = true after Destroy")
	}
	if !service.Released() {
		t.Error("service connection not released by Destroy")
	}

	events := feature.snapshot()
	if len(events) == 0 || events[len(events)-1] != "destroy" {
		t.Errorf("feature events = %v, want trailing destroy", events)
	}

	// No reconnect after teardown.
	select {
	case got := <-notifier.ch:
		t.Errorf("connectivity transition %v after Destroy", got)
	case <-time.After(50 * time.Millisecond):
	}
}
