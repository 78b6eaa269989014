package log

// MultiLogger fans one event out to several sinks, typically a FileLogger
// capture plus a SlogAdapter console mirror. Sinks are invoked in the
// order given; a nil sink is skipped.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger creates a MultiLogger over the given sinks. The slice is
// copied, so the caller may reuse it.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	copied := make([]Logger, len(sinks))
	copy(copied, sinks)
	return &MultiLogger{sinks: copied}
}

// Log delivers the event to every sink.
func (m *MultiLogger) Log(event Event) {
	for _, sink := range m.sinks {
		if sink == nil {
			continue
		}
		sink.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
