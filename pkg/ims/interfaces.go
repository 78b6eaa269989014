package ims

// RegistrationCallback receives registration events from the feature
// service. The same callback value must be handed to the service across
// connect cycles so re-registration after a reconnect uses a stable
// identity. Implemented by registration.Tracker's callback handle.
type RegistrationCallback interface {
	// Registered is called when the service completes a registration.
	Registered(attrs RegistrationAttributes)

	// Registering is called when the service starts a registration attempt.
	Registering(tech RegistrationTech)

	// Unregistered is called when a registration ends.
	Unregistered(info DisconnectReasonInfo, tech RegistrationTech)

	// AssociatedURIChanged is called when the subscriber's associated URIs
	// change.
	AssociatedURIChanged(uris []string)
}

// AvailabilityCallback receives capability availability updates from the
// feature service.
type AvailabilityCallback interface {
	// CapabilityChanged is called when the availability of a capability
	// changes.
	CapabilityChanged(capability Capability, available bool)
}

// FeatureManager represents a live binding to the feature service for one
// slot. At most one exists per controller at a time; it is created by the
// connector on a successful bind and must not be used after the connection
// is reported unavailable.
//
// Implemented by internal/simulator.Service for tests and tooling.
type FeatureManager interface {
	// OpenConnection opens the persistent service-side listener. Must be
	// called once before any other operation on a fresh binding.
	OpenConnection() error

	// ReleaseConnection releases the persistent service-side listener.
	ReleaseConnection()

	// UpdateCapabilities pushes a capability refresh for the given
	// subscription.
	UpdateCapabilities(subID int) error

	// RegisterRegistrationCallback arms cb for future registration events.
	RegisterRegistrationCallback(cb RegistrationCallback) error

	// UnregisterRegistrationCallback disarms cb.
	UnregisterRegistrationCallback(cb RegistrationCallback)

	// RegisterAvailabilityCallback arms cb for capability availability
	// updates on the given subscription.
	RegisterAvailabilityCallback(subID int, cb AvailabilityCallback) error

	// UnregisterAvailabilityCallback disarms cb.
	UnregisterAvailabilityCallback(subID int, cb AvailabilityCallback)

	// IsCapable reports whether the capability is supported over the given
	// technology.
	IsCapable(capability Capability, tech RegistrationTech) (bool, error)

	// IsAvailable reports whether the capability is currently available
	// over the given technology.
	IsAvailable(capability Capability, tech RegistrationTech) (bool, error)

	// RegistrationTech returns the technology of the current registration,
	// or TechNone if not registered.
	RegistrationTech() (RegistrationTech, error)

	// SubscriptionID returns the subscription the binding serves.
	SubscriptionID() int
}
