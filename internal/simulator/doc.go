// Package simulator provides an in-process feature service for tests and
// the rcsctl diagnostic CLI.
//
// Service implements ims.FeatureManager with controllable failure
// injection and records every call it receives. Binder produces the
// connector.BindFunc side: it hands out Service bindings while the
// simulated service is up and can drop a live connection to exercise the
// controller's disconnect path.
package simulator
