package ims

// InvalidSubscriptionID marks the absence of an associated subscription.
const InvalidSubscriptionID = -1

// RegistrationState is the registration status the feature service last
// reported for the associated subscription.
type RegistrationState uint8

const (
	// RegistrationStateNotRegistered indicates no active registration.
	RegistrationStateNotRegistered RegistrationState = iota

	// RegistrationStateRegistering indicates a registration attempt is in
	// progress.
	RegistrationStateRegistering

	// RegistrationStateRegistered indicates the service is registered.
	RegistrationStateRegistered
)

// String returns a human-readable state name.
func (s RegistrationState) String() string {
	switch s {
	case RegistrationStateNotRegistered:
		return "NOT_REGISTERED"
	case RegistrationStateRegistering:
		return "REGISTERING"
	case RegistrationStateRegistered:
		return "REGISTERED"
	default:
		return "UNKNOWN"
	}
}

// RegistrationTech is the radio technology a registration is attached to.
type RegistrationTech uint8

const (
	// TechNone indicates no registration technology.
	TechNone RegistrationTech = iota

	// TechLTE indicates registration over LTE.
	TechLTE

	// TechIWLAN indicates registration over IWLAN (WiFi).
	TechIWLAN

	// TechCrossSIM indicates registration through another subscription's
	// connection.
	TechCrossSIM

	// TechNR indicates registration over 5G NR.
	TechNR
)

// String returns the technology name.
func (t RegistrationTech) String() string {
	switch t {
	case TechNone:
		return "NONE"
	case TechLTE:
		return "LTE"
	case TechIWLAN:
		return "IWLAN"
	case TechCrossSIM:
		return "CROSS_SIM"
	case TechNR:
		return "NR"
	default:
		return "UNKNOWN"
	}
}

// Capability identifies a feature capability that can be queried for
// support and availability.
type Capability uint8

const (
	// CapabilityOptions is capability discovery via OPTIONS.
	CapabilityOptions Capability = iota

	// CapabilityPresence is capability discovery via presence.
	CapabilityPresence
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityOptions:
		return "OPTIONS"
	case CapabilityPresence:
		return "PRESENCE"
	default:
		return "UNKNOWN"
	}
}

// UnavailableReason describes why the connection to the feature service
// became unavailable.
type UnavailableReason uint8

const (
	// ReasonDisconnected indicates the binding to the service was lost.
	ReasonDisconnected UnavailableReason = iota

	// ReasonNotReady indicates the service is present but not yet ready to
	// accept a connection.
	ReasonNotReady

	// ReasonServerUnavailable indicates the service itself is gone and will
	// not return. The connector still treats this like any other loss; it
	// owns whether to keep retrying.
	ReasonServerUnavailable

	// ReasonServerNotSupported indicates the service does not support the
	// requested feature on this slot.
	ReasonServerNotSupported
)

// String returns the reason name.
func (r UnavailableReason) String() string {
	switch r {
	case ReasonDisconnected:
		return "DISCONNECTED"
	case ReasonNotReady:
		return "NOT_READY"
	case ReasonServerUnavailable:
		return "SERVER_UNAVAILABLE"
	case ReasonServerNotSupported:
		return "SERVER_NOT_SUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// RegistrationAttributes describes an active registration.
type RegistrationAttributes struct {
	// Tech is the technology the registration is attached to.
	Tech RegistrationTech

	// AssociatedURIs are the URIs the subscriber is reachable under.
	AssociatedURIs []string
}

// DisconnectReasonInfo describes why a registration ended.
type DisconnectReasonInfo struct {
	// Reason is a service-defined reason code.
	Reason int

	// Message is an optional human-readable description.
	Message string
}
