package registration

import (
	"sync"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// Update is an optional hook invoked after the tracker absorbs a
// registration event. It runs on the callback delivery goroutine and must
// return promptly.
type Update func(state ims.RegistrationState, tech ims.RegistrationTech)

// Tracker owns the registration-callback subscription for one controller
// and exposes the current registration state.
type Tracker struct {
	mu sync.RWMutex

	state  ims.RegistrationState
	tech   ims.RegistrationTech
	uris   []string
	reason ims.DisconnectReasonInfo

	onUpdate Update

	// handle is the stable callback identity handed to the service.
	// Created once and reused across connect cycles.
	handle *callbackHandle
}

// NewTracker creates a tracker in the NOT_REGISTERED state.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.handle = &callbackHandle{tracker: t}
	return t
}

// State returns the current registration state.
func (t *Tracker) State() ims.RegistrationState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Tech returns the technology of the current or most recent registration.
func (t *Tracker) Tech() ims.RegistrationTech {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tech
}

// AssociatedURIs returns the subscriber's associated URIs, or nil if none
// have been reported.
func (t *Tracker) AssociatedURIs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.uris == nil {
		return nil
	}
	uris := make([]string, len(t.uris))
	copy(uris, t.uris)
	return uris
}

// LastDisconnectReason returns the reason of the most recent
// unregistration.
func (t *Tracker) LastDisconnectReason() ims.DisconnectReasonInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reason
}

// CallbackHandle returns the callback identity to arm against the feature
// service. The returned value is stable for the tracker's lifetime.
func (t *Tracker) CallbackHandle() ims.RegistrationCallback {
	return t.handle
}

// OnUpdate sets the hook invoked after each absorbed event.
func (t *Tracker) OnUpdate(fn Update) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = fn
}

// Reset restores the tracker to NOT_REGISTERED and clears cached
// registration attributes. Called once per disconnect, before the binding
// is discarded.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.state = ims.RegistrationStateNotRegistered
	t.tech = ims.TechNone
	t.uris = nil
	t.reason = ims.DisconnectReasonInfo{}
	t.mu.Unlock()
}

// absorb applies an event under the lock and fires the update hook outside
// it.
func (t *Tracker) absorb(apply func()) {
	t.mu.Lock()
	apply()
	state := t.state
	tech := t.tech
	onUpdate := t.onUpdate
	t.mu.Unlock()

	if onUpdate != nil {
		onUpdate(state, tech)
	}
}

// callbackHandle adapts service registration events onto the tracker. It
// is a distinct type so the tracker's query surface is not handed to the
// service.
type callbackHandle struct {
	tracker *Tracker
}

func (h *callbackHandle) Registered(attrs ims.RegistrationAttributes) {
	h.tracker.absorb(func() {
		h.tracker.state = ims.RegistrationStateRegistered
		h.tracker.tech = attrs.Tech
		if attrs.AssociatedURIs != nil {
			uris := make([]string, len(attrs.AssociatedURIs))
			copy(uris, attrs.AssociatedURIs)
			h.tracker.uris = uris
		}
	})
}

func (h *callbackHandle) Registering(tech ims.RegistrationTech) {
	h.tracker.absorb(func() {
		h.tracker.state = ims.RegistrationStateRegistering
		h.tracker.tech = tech
	})
}

func (h *callbackHandle) Unregistered(info ims.DisconnectReasonInfo, tech ims.RegistrationTech) {
	h.tracker.absorb(func() {
		h.tracker.state = ims.RegistrationStateNotRegistered
		h.tracker.tech = tech
		h.tracker.reason = info
	})
}

func (h *callbackHandle) AssociatedURIChanged(uris []string) {
	h.tracker.absorb(func() {
		copied := make([]string, len(uris))
		copy(copied, uris)
		h.tracker.uris = copied
	})
}

// Compile-time interface satisfaction check.
var _ ims.RegistrationCallback = (*callbackHandle)(nil)
