// Package controller owns the lifecycle of one logical connection to the
// feature service and multiplexes it across registered features.
//
// A FeatureController serves a single slot. It drives a connector to bind
// to the service, arms the registration tracker against every fresh
// binding, and fans connection, subscription, and carrier-config events out
// to the features registered with it. Query operations that need the
// service are forwarded to the live binding and fail with
// ims.ErrServiceUnavailable while disconnected.
//
// A single exclusive lock guards the live binding, the feature registry,
// and the associated subscription ID as one unit. Feature notifications
// are delivered while the lock is held, so every feature observes events
// in one total order relative to connection-state changes. Feature
// callbacks must therefore return promptly and must not call back into the
// controller.
package controller
