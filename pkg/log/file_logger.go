package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends connection events to a capture file (.rlog by
// convention) as a CBOR stream readable by Reader. Safe for concurrent
// use; the controller and the connector goroutine both log through it.
type FileLogger struct {
	mu sync.Mutex

	f      *os.File
	enc    *cbor.Encoder
	closed bool
}

// NewFileLogger opens path for event capture, appending to an existing
// file so a restarted process extends the same capture.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{f: f, enc: NewEncoder(f)}, nil
}

// Log appends the event to the capture file. Encoding errors are dropped;
// event capture must never disturb the connection it observes.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	_ = l.enc.Encode(event)
}

// Close closes the capture file. Close is idempotent, and events logged
// after it are silently dropped.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.f.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
