// Package config loads and validates the YAML configuration for a
// feature-connection controller: the slot and initial subscription it
// serves, the connector's retry tuning, and event-log capture.
package config
