package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes connection events to an slog.Logger.
// Useful for development when you want to see events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.Int("slot", event.Slot),
		slog.String("category", event.Category.String()),
	}

	if event.ConnectionID != "" {
		attrs = append(attrs, slog.String("conn_id", event.ConnectionID))
	}

	// Add type-specific attributes
	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("from", event.StateChange.From),
			slog.String("to", event.StateChange.To),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Registration != nil:
		attrs = append(attrs, slog.String("state", event.Registration.State))
		if event.Registration.Tech != "" {
			attrs = append(attrs, slog.String("tech", event.Registration.Tech))
		}
	case event.Capability != nil:
		attrs = append(attrs, slog.Int("sub_id", event.Capability.SubscriptionID))
		if event.Capability.Trigger != "" {
			attrs = append(attrs, slog.String("trigger", event.Capability.Trigger))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Op != "" {
			attrs = append(attrs, slog.String("op", event.Error.Op))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "feature connection event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
