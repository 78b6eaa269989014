// Command rcsctl is a diagnostic console for the feature-connection
// controller.
//
// It runs a controller against the in-process service simulator so the
// full connection lifecycle (bind, setup, loss, retry with backoff) can
// be exercised and observed from a terminal.
//
// Usage:
//
//	rcsctl [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-slot int          Slot to serve (default 0)
//	-sub int           Initially associated subscription ID
//	-event-log string  CBOR event log file path
//	-console           Mirror connection events to the console
//	-replay string     Print a captured event log and exit
//
// Interactive Commands:
//
//	start              - Start connecting to the simulated service
//	status             - Show controller status
//	up / down          - Bring the simulated service up or down
//	drop [reason]      - Drop the live connection
//	sub <id>           - Change the associated subscription
//	carrier            - Signal a carrier configuration change
//	add <kind>         - Attach a feature
//	remove <kind>      - Detach a feature
//	quit               - Exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rcslink-protocol/rcslink-go/cmd/rcsctl/interactive"
	"github.com/rcslink-protocol/rcslink-go/internal/simulator"
	"github.com/rcslink-protocol/rcslink-go/pkg/config"
	"github.com/rcslink-protocol/rcslink-go/pkg/connector"
	"github.com/rcslink-protocol/rcslink-go/pkg/controller"
	eventlog "github.com/rcslink-protocol/rcslink-go/pkg/log"
	"github.com/rcslink-protocol/rcslink-go/pkg/version"
)

var (
	configFile string
	slot       int
	subID      int
	eventLog   string
	console    bool
	replay     string
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	flag.IntVar(&slot, "slot", -1, "Slot to serve (overrides config)")
	flag.IntVar(&subID, "sub", 0, "Initially associated subscription ID (overrides config)")
	flag.StringVar(&eventLog, "event-log", "", "CBOR event log file path (overrides config)")
	flag.BoolVar(&console, "console", false, "Mirror connection events to the console")
	flag.StringVar(&replay, "replay", "", "Print a captured event log and exit")
}

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if replay != "" {
		if err := runReplay(replay, os.Stdout); err != nil {
			log.Fatalf("Failed to replay %s: %v", replay, err)
		}
		return
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the file.
	if slot >= 0 {
		cfg.Slot = slot
	}
	if subID != 0 {
		cfg.SubscriptionID = subID
	}
	if eventLog != "" {
		cfg.EventLog.Path = eventLog
	}
	if console {
		cfg.EventLog.Console = true
	}

	logger, closeLogger, err := buildLogger(cfg.EventLog)
	if err != nil {
		log.Fatalf("Failed to set up event log: %v", err)
	}
	defer closeLogger()

	// The simulated service serves whatever subscription the controller
	// starts out associated with.
	service := simulator.NewService(cfg.SubscriptionID)
	binder := simulator.NewBinder(service)

	ctrl := controller.New(controller.Config{
		Slot:           cfg.Slot,
		SubscriptionID: cfg.SubscriptionID,
		ConnectorFactory: func(listener connector.Listener) controller.Connector {
			conn := connector.New(connector.Config{
				Bind:     binder.Bind,
				Listener: listener,
				Backoff:  cfg.BackoffConfig(),
			})
			binder.Attach(conn)
			return conn
		},
		Notifier: notifier{},
		Logger:   logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ic, err := interactive.New(ctrl, binder)
	if err != nil {
		log.Fatalf("Failed to create interactive console: %v", err)
	}
	// Redirect log output through readline to avoid interfering with input
	log.SetOutput(ic.Stdout())
	slog.SetDefault(slog.New(slog.NewTextHandler(ic.Stdout(), nil)))

	log.Printf("rcsctl: interface %s, slot %d, subscription %d", version.Current, cfg.Slot, cfg.SubscriptionID)
	go ic.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Cancelled by the quit command.
	}

	log.Println("Shutting down...")
	ctrl.Destroy()
}

// buildLogger assembles the event logger from the event-log settings.
func buildLogger(cfg config.EventLogConfig) (eventlog.Logger, func(), error) {
	var loggers []eventlog.Logger
	closeLogger := func() {}

	if cfg.Path != "" {
		fl, err := eventlog.NewFileLogger(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fl)
		closeLogger = func() { _ = fl.Close() }
	}
	if cfg.Console {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, eventlog.NewSlogAdapter(slog.New(handler)))
	}

	switch len(loggers) {
	case 0:
		return eventlog.NoopLogger{}, closeLogger, nil
	case 1:
		return loggers[0], closeLogger, nil
	default:
		return eventlog.NewMultiLogger(loggers...), closeLogger, nil
	}
}

// runReplay prints the events captured in an event log file, one line
// per event.
func runReplay(path string, w io.Writer) error {
	r, err := eventlog.OpenFile(path)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatEvent(event))
	}
}

// formatEvent renders one captured event for the replay output.
func formatEvent(e eventlog.Event) string {
	prefix := fmt.Sprintf("%s slot=%d %s",
		e.Timestamp.Format("15:04:05.000000"), e.Slot, e.Category)

	switch {
	case e.StateChange != nil:
		out := fmt.Sprintf("%s %s -> %s", prefix, e.StateChange.From, e.StateChange.To)
		if e.StateChange.Reason != "" {
			out += " reason=" + e.StateChange.Reason
		}
		return out
	case e.Registration != nil:
		return fmt.Sprintf("%s state=%s tech=%s", prefix, e.Registration.State, e.Registration.Tech)
	case e.Capability != nil:
		return fmt.Sprintf("%s sub=%d trigger=%s", prefix, e.Capability.SubscriptionID, e.Capability.Trigger)
	case e.Error != nil:
		return fmt.Sprintf("%s %s op=%s", prefix, e.Error.Message, e.Error.Op)
	default:
		return prefix
	}
}

// notifier announces connectivity transitions on the process log.
type notifier struct{}

func (notifier) ConnectivityChanged(slot int, connected bool) {
	if connected {
		log.Printf("[EVENT] Slot %d connected", slot)
		return
	}
	log.Printf("[EVENT] Slot %d disconnected", slot)
}
