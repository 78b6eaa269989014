package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// Status is a point-in-time snapshot of the controller for diagnostics.
type Status struct {
	// Slot is the logical endpoint the controller serves.
	Slot int

	// Connected reports whether a connection is live.
	Connected bool

	// ConnectionID is the current connect-cycle ID, empty while
	// disconnected.
	ConnectionID string

	// AssociatedSubID is the subscription the connection serves, or
	// ims.InvalidSubscriptionID.
	AssociatedSubID int

	// RegistrationState is the tracked registration state.
	RegistrationState ims.RegistrationState

	// RegistrationTech is the tracked registration technology.
	RegistrationTech ims.RegistrationTech

	// FeatureKinds lists the registered features in registration order.
	FeatureKinds []FeatureKind
}

// Status returns a snapshot of the controller.
func (c *FeatureController) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	subID := ims.InvalidSubscriptionID
	if c.manager != nil {
		subID = c.manager.SubscriptionID()
	}
	return Status{
		Slot:              c.slot,
		Connected:         c.manager != nil,
		ConnectionID:      c.connID,
		AssociatedSubID:   subID,
		RegistrationState: c.tracker.State(),
		RegistrationTech:  c.tracker.Tech(),
		FeatureKinds:      c.features.Kinds(),
	}
}

// WriteStatus writes a nested, indented key/value status report including
// each feature's own dump output. The exact layout is for humans, not a
// compatibility contract.
func (c *FeatureController) WriteStatus(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(w, "slot=%d\n", c.slot)
	fmt.Fprintf(w, "registrationState=%s\n", c.tracker.State())
	fmt.Fprintf(w, "registrationTech=%s\n", c.tracker.Tech())
	fmt.Fprintf(w, "connected=%t\n", c.manager != nil)
	if c.connID != "" {
		fmt.Fprintf(w, "connectionId=%s\n", c.connID)
	}
	if c.manager != nil {
		fmt.Fprintf(w, "associatedSubId=%d\n", c.manager.SubscriptionID())
	}

	fmt.Fprintf(w, "features (%d):\n", c.features.Len())
	c.features.Each(func(kind FeatureKind, f Feature) {
		fmt.Fprintf(w, "  %s:\n", kind)
		var buf bytes.Buffer
		f.Dump(&buf)
		writeIndented(w, buf.String(), "    ")
	})
}

// DumpString returns the status report as a string.
func (c *FeatureController) DumpString() string {
	var buf bytes.Buffer
	c.WriteStatus(&buf)
	return buf.String()
}

// writeIndented writes s to w with prefix prepended to every non-empty
// line.
func writeIndented(w io.Writer, s string, prefix string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}
