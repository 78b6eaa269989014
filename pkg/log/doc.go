// Package log provides structured event logging for the feature-connection
// stack.
//
// Events capture connection state transitions, registration changes,
// capability refreshes, and errors, tagged with the slot and a per
// connect-cycle connection ID for correlation. Events are encoded as CBOR
// with integer keys for compact on-disk capture; Reader decodes a captured
// stream back into events.
//
// Implementations of Logger:
//   - NoopLogger: discards everything (logging disabled)
//   - FileLogger: appends CBOR events to a file
//   - SlogAdapter: mirrors events to an slog.Logger for console output
//   - MultiLogger: fans out to several loggers
package log
