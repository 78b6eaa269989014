package log

import (
	"time"
)

// Event represents one occurrence in the life of a feature connection.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the connect cycle the event belongs to
	// (UUID, regenerated for every successful bind). Empty for events
	// outside a live connection.
	ConnectionID string `cbor:"2,keyasint,omitempty"`

	// Slot is the logical endpoint the controller serves.
	Slot int `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange  *StateChangeEvent  `cbor:"10,keyasint,omitempty"`
	Registration *RegistrationEvent `cbor:"11,keyasint,omitempty"`
	Capability   *CapabilityEvent   `cbor:"12,keyasint,omitempty"`
	Error        *ErrorEvent        `cbor:"13,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryStateChange indicates a connection state transition.
	CategoryStateChange Category = 0

	// CategoryRegistration indicates a registration state update.
	CategoryRegistration Category = 1

	// CategoryCapability indicates a capability refresh push.
	CategoryCapability Category = 2

	// CategoryError indicates a failure at any layer.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryStateChange:
		return "STATE_CHANGE"
	case CategoryRegistration:
		return "REGISTRATION"
	case CategoryCapability:
		return "CAPABILITY"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a connection state transition.
type StateChangeEvent struct {
	// From is the state before the transition.
	From string `cbor:"1,keyasint"`

	// To is the state after the transition.
	To string `cbor:"2,keyasint"`

	// Reason is the unavailability reason for transitions into a
	// disconnected state, empty otherwise.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// RegistrationEvent captures a registration state update.
type RegistrationEvent struct {
	// State is the new registration state.
	State string `cbor:"1,keyasint"`

	// Tech is the technology the registration is attached to.
	Tech string `cbor:"2,keyasint,omitempty"`
}

// CapabilityEvent captures a capability refresh push.
type CapabilityEvent struct {
	// SubscriptionID is the subscription the refresh targeted.
	SubscriptionID int `cbor:"1,keyasint"`

	// Trigger names what caused the refresh (connect, subscription
	// change, carrier config change).
	Trigger string `cbor:"2,keyasint,omitempty"`
}

// ErrorEvent captures a failure.
type ErrorEvent struct {
	// Message describes the failure.
	Message string `cbor:"1,keyasint"`

	// Op names the operation that failed.
	Op string `cbor:"2,keyasint,omitempty"`
}
