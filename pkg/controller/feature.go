package controller

import (
	"io"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// FeatureKind is the stable tag a feature is registered under. Each kind
// holds at most one feature; registering another replaces it.
type FeatureKind string

// Feature is a consumer of the connection this controller manages.
//
// All callbacks are invoked synchronously while the controller's lock is
// held. Implementations must return promptly and must not call back into
// the controller; doing so deadlocks.
type Feature interface {
	// OnConnected is called when the feature service is connected and
	// ready. The manager stays valid until OnDisconnected.
	OnConnected(manager ims.FeatureManager)

	// OnDisconnected is called when the binding to the feature service is
	// lost or about to change. The feature must stop issuing calls that
	// assume connectivity until the next OnConnected.
	OnDisconnected()

	// OnAssociatedSubscriptionUpdated is called when the subscription
	// associated with this controller's slot changes.
	OnAssociatedSubscriptionUpdated(subID int)

	// OnCarrierConfigChanged is called when the carrier configuration for
	// the associated subscription changes.
	OnCarrierConfigChanged()

	// OnDestroy is called when the feature is removed or the controller is
	// destroyed.
	OnDestroy()

	// Dump writes the feature's status for diagnostics output.
	Dump(w io.Writer)
}
