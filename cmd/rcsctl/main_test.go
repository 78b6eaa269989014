package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	eventlog "github.com/rcslink-protocol/rcslink-go/pkg/log"
)

func TestRunReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.rlog")

	fl, err := eventlog.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	fl.Log(eventlog.Event{
		Timestamp: ts,
		Slot:      1,
		Category:  eventlog.CategoryStateChange,
		StateChange: &eventlog.StateChangeEvent{
			From: "DISCONNECTED", To: "CONNECTED",
		},
	})
	fl.Log(eventlog.Event{
		Timestamp: ts.Add(time.Second),
		Slot:      1,
		Category:  eventlog.CategoryRegistration,
		Registration: &eventlog.RegistrationEvent{
			State: "REGISTERED", Tech: "LTE",
		},
	})
	fl.Log(eventlog.Event{
		Timestamp: ts.Add(2 * time.Second),
		Slot:      1,
		Category:  eventlog.CategoryStateChange,
		StateChange: &eventlog.StateChangeEvent{
			From: "CONNECTED", To: "DISCONNECTED", Reason: "NOT_READY",
		},
	})
	if err := fl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var buf bytes.Buffer
	if err := runReplay(path, &buf); err != nil {
		t.Fatalf("runReplay failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("replay produced %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{
		"DISCONNECTED -> CONNECTED",
		"state=REGISTERED tech=LTE",
		"CONNECTED -> DISCONNECTED reason=NOT_READY",
	} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, missing %q", i, lines[i], want)
		}
		if !strings.Contains(lines[i], "slot=1") {
			t.Errorf("line %d = %q, missing slot=1", i, lines[i])
		}
	}
}

func TestRunReplayMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := runReplay("/nonexistent/events.rlog", &buf); err == nil {
		t.Error("runReplay accepted a missing file")
	}
}
