// Package ims defines the core types and service contracts shared by the
// feature-connection stack.
//
// The package is intentionally free of behavior: it holds the enumerations
// reported by the feature service (registration state, radio technology,
// capabilities), the FeatureManager interface that represents a live
// binding to the service, and the callback contracts the service delivers
// events through. Concrete implementations live in the connector,
// registration, and controller packages; test doubles live in ims/mocks
// and internal/simulator.
package ims
