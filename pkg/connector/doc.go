// Package connector performs the asynchronous bind to the feature service
// on behalf of a single slot and owns the retry policy when the bind fails
// or the connection is lost.
//
// The controller never blocks on a connection: it calls Connect and is told
// the outcome later through the Listener. A ConnectionReady delivery may be
// rejected by the listener (setup against the fresh binding failed), in
// which case the connector discards the binding and retries with backoff as
// if the bind itself had failed.
//
// # Retry Strategy
//
// Failed bind attempts use exponential backoff with jitter:
//
//  1. Initial delay: 1 second
//  2. Exponential increase: 2s, 4s, 8s, 16s, 32s
//  3. Maximum delay: 60 seconds
//  4. Continue at 60s until successful
//  5. Reset to 1s on a fully set up connection
//
// Jitter of up to 25% of the base delay is added to each attempt.
package connector
