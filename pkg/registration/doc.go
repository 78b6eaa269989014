// Package registration tracks the registration state reported by the
// feature service.
//
// A Tracker translates the service's registration callback events into a
// queryable snapshot (state, technology, associated URIs, last disconnect
// reason). Its callback handle is a stable identity: the same handle is
// re-armed against every fresh binding so the service sees one subscriber
// across connect cycles. Reset restores the tracker to NOT_REGISTERED when
// the connection is lost.
package registration
