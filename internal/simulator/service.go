package simulator

import (
	"sync"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// capabilityKey identifies one capability/technology combination.
type capabilityKey struct {
	capability ims.Capability
	tech       ims.RegistrationTech
}

// Failures controls failure injection for a Service.
type Failures struct {
	// OpenConnection makes OpenConnection fail with this error.
	OpenConnection error

	// UpdateCapabilities makes UpdateCapabilities fail with this error.
	UpdateCapabilities error

	// RegisterRegistrationCallback makes RegisterRegistrationCallback fail
	// with this error.
	RegisterRegistrationCallback error
}

// Service is a simulated feature service binding for one subscription.
// It implements ims.FeatureManager.
type Service struct {
	mu sync.Mutex

	subID int

	// Failure injection, applied on the next matching call.
	failures Failures

	// Armed callbacks.
	regCallbacks   []ims.RegistrationCallback
	availCallbacks map[int][]ims.AvailabilityCallback

	// Capability tables.
	capable   map[capabilityKey]bool
	available map[capabilityKey]bool

	// Registration snapshot reported by RegistrationTech.
	tech ims.RegistrationTech

	// Call records.
	opened            bool
	released          bool
	capabilityPushes  []int
	openCalls         int
	registerCallCount int
}

// NewService creates a simulated binding serving subID.
func NewService(subID int) *Service {
	return &Service{
		subID:          subID,
		availCallbacks: make(map[int][]ims.AvailabilityCallback),
		capable:        make(map[capabilityKey]bool),
		available:      make(map[capabilityKey]bool),
	}
}

// SetFailures replaces the failure injection settings.
func (s *Service) SetFailures(f Failures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = f
}

// SetCapable sets the IsCapable answer for a capability/technology pair.
func (s *Service) SetCapable(capability ims.Capability, tech ims.RegistrationTech, capable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capable[capabilityKey{capability, tech}] = capable
}

// SetAvailable sets the IsAvailable answer for a capability/technology
// pair and notifies armed availability callbacks of the change.
func (s *Service) SetAvailable(capability ims.Capability, tech ims.RegistrationTech, available bool) {
	s.mu.Lock()
	s.available[capabilityKey{capability, tech}] = available
	var cbs []ims.AvailabilityCallback
	for _, list := range s.availCallbacks {
		cbs = append(cbs, list...)
	}
	s.mu.Unlock()

	for _, cb := range cbs {
		cb.CapabilityChanged(capability, available)
	}
}

// EmitRegistered delivers a registered event to every armed registration
// callback.
func (s *Service) EmitRegistered(attrs ims.RegistrationAttributes) {
	s.mu.Lock()
	s.tech = attrs.Tech
	cbs := s.regCallbacksSnapshotLocked()
	s.mu.Unlock()

	for _, cb := range cbs {
		cb.Registered(attrs)
	}
}

// EmitRegistering delivers a registering event.
func (s *Service) EmitRegistering(tech ims.RegistrationTech) {
	s.mu.Lock()
	cbs := s.regCallbacksSnapshotLocked()
	s.mu.Unlock()

	for _, cb := range cbs {
		cb.Registering(tech)
	}
}

// EmitUnregistered delivers an unregistered event.
func (s *Service) EmitUnregistered(info ims.DisconnectReasonInfo, tech ims.RegistrationTech) {
	s.mu.Lock()
	s.tech = ims.TechNone
	cbs := s.regCallbacksSnapshotLocked()
	s.mu.Unlock()

	for _, cb := range cbs {
		cb.Unregistered(info, tech)
	}
}

// EmitAssociatedURIChanged delivers an associated-URI change.
func (s *Service) EmitAssociatedURIChanged(uris []string) {
	s.mu.Lock()
	cbs := s.regCallbacksSnapshotLocked()
	s.mu.Unlock()

	for _, cb := range cbs {
		cb.AssociatedURIChanged(uris)
	}
}

func (s *Service) regCallbacksSnapshotLocked() []ims.RegistrationCallback {
	cbs := make([]ims.RegistrationCallback, len(s.regCallbacks))
	copy(cbs, s.regCallbacks)
	return cbs
}

// Opened reports whether the persistent listener is currently open.
func (s *Service) Opened() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened && !s.released
}

// Released reports whether ReleaseConnection was called.
func (s *Service) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// CapabilityPushes returns the subscription IDs of every capability
// refresh received, in order.
func (s *Service) CapabilityPushes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pushes := make([]int, len(s.capabilityPushes))
	copy(pushes, s.capabilityPushes)
	return pushes
}

// RegistrationCallbackCount returns the number of currently armed
// registration callbacks.
func (s *Service) RegistrationCallbackCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.regCallbacks)
}

// OpenConnection implements ims.FeatureManager.
func (s *Service) OpenConnection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openCalls++
	if s.failures.OpenConnection != nil {
		return s.failures.OpenConnection
	}
	s.opened = true
	s.released = false
	return nil
}

// ReleaseConnection implements ims.FeatureManager.
func (s *Service) ReleaseConnection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
}

// UpdateCapabilities implements ims.FeatureManager.
func (s *Service) UpdateCapabilities(subID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failures.UpdateCapabilities != nil {
		return s.failures.UpdateCapabilities
	}
	s.capabilityPushes = append(s.capabilityPushes, subID)
	return nil
}

// RegisterRegistrationCallback implements ims.FeatureManager.
func (s *Service) RegisterRegistrationCallback(cb ims.RegistrationCallback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registerCallCount++
	if s.failures.RegisterRegistrationCallback != nil {
		return s.failures.RegisterRegistrationCallback
	}
	s.regCallbacks = append(s.regCallbacks, cb)
	return nil
}

// UnregisterRegistrationCallback implements ims.FeatureManager.
func (s *Service) UnregisterRegistrationCallback(cb ims.RegistrationCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, registered := range s.regCallbacks {
		if registered == cb {
			s.regCallbacks = append(s.regCallbacks[:i], s.regCallbacks[i+1:]...)
			return
		}
	}
}

// RegisterAvailabilityCallback implements ims.FeatureManager.
func (s *Service) RegisterAvailabilityCallback(subID int, cb ims.AvailabilityCallback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availCallbacks[subID] = append(s.availCallbacks[subID], cb)
	return nil
}

// UnregisterAvailabilityCallback implements ims.FeatureManager.
func (s *Service) UnregisterAvailabilityCallback(subID int, cb ims.AvailabilityCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.availCallbacks[subID]
	for i, registered := range list {
		if registered == cb {
			s.availCallbacks[subID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// IsCapable implements ims.FeatureManager.
func (s *Service) IsCapable(capability ims.Capability, tech ims.RegistrationTech) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capable[capabilityKey{capability, tech}], nil
}

// IsAvailable implements ims.FeatureManager.
func (s *Service) IsAvailable(capability ims.Capability, tech ims.RegistrationTech) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available[capabilityKey{capability, tech}], nil
}

// RegistrationTech implements ims.FeatureManager.
func (s *Service) RegistrationTech() (ims.RegistrationTech, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tech, nil
}

// SubscriptionID implements ims.FeatureManager.
func (s *Service) SubscriptionID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subID
}

// Compile-time interface satisfaction check.
var _ ims.FeatureManager = (*Service)(nil)
