// Package interactive provides the interactive command-line interface
// for rcsctl.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rcslink-protocol/rcslink-go/internal/simulator"
	"github.com/rcslink-protocol/rcslink-go/pkg/controller"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// Console handles interactive mode for rcsctl.
type Console struct {
	ctrl   *controller.FeatureController
	binder *simulator.Binder
	rl     *readline.Instance
}

// New creates a new interactive console.
func New(ctrl *controller.FeatureController, binder *simulator.Binder) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rcs> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		ctrl:   ctrl,
		binder: binder,
		rl:     rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "start":
			c.cmdStart()

		case "status", "s":
			c.cmdStatus()

		case "up":
			c.cmdUp()

		case "down":
			c.cmdDown()

		case "drop":
			c.cmdDrop(args)

		case "sub":
			c.cmdSub(args)

		case "carrier":
			c.cmdCarrier()

		case "add":
			c.cmdAdd(args)

		case "remove", "rm":
			c.cmdRemove(args)

		case "features":
			c.cmdFeatures()

		case "reg":
			c.cmdRegistered(args)

		case "registering":
			c.cmdRegistering(args)

		case "unreg":
			c.cmdUnregistered(args)

		case "uris":
			c.cmdURIs(args)

		case "capable":
			c.cmdCapable(args)

		case "avail":
			c.cmdAvailable(args)

		case "query":
			c.cmdQuery(args)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
rcsctl Commands:
  Connection:
    start                       - Start connecting to the simulated service
    up / down                   - Bring the simulated service up or down
    drop [reason]               - Drop the live connection
                                  (disconnected, not-ready, unavailable, not-supported)

  Controller:
    status                      - Show controller status
    sub <id>                    - Change the associated subscription
    carrier                     - Signal a carrier configuration change
    add <kind>                  - Attach a feature
    remove <kind>               - Detach a feature
    features                    - List attached features

  Simulated Service:
    reg <tech> [uri...]         - Report registered over tech (lte, iwlan, cross-sim, nr)
    registering <tech>          - Report a registration attempt
    unreg [code [message]]      - Report unregistered
    uris <uri...>               - Report changed associated URIs
    capable <cap> <tech> <on|off>  - Set capability support (options, presence)
    avail <cap> <tech> <on|off>    - Set capability availability
    query <cap> <tech>          - Query capability through the controller

  General:
    help                        - Show this help
    quit                        - Exit`)
}

// cmdStart handles the start command.
func (c *Console) cmdStart() {
	c.ctrl.Start()
	fmt.Fprintln(c.rl.Stdout(), "Connecting...")
}

// cmdStatus handles the status command.
func (c *Console) cmdStatus() {
	fmt.Fprintln(c.rl.Stdout())
	c.ctrl.WriteStatus(c.rl.Stdout())
	fmt.Fprintf(c.rl.Stdout(), "serviceUp=%t\n", c.binder.Up())
}

// cmdUp handles the up command.
func (c *Console) cmdUp() {
	c.binder.SetUp(true)
	fmt.Fprintln(c.rl.Stdout(), "Service up")
}

// cmdDown handles the down command.
func (c *Console) cmdDown() {
	c.binder.SetUp(false)
	fmt.Fprintln(c.rl.Stdout(), "Service down (use 'drop' to cut a live connection)")
}

// cmdDrop handles the drop command.
func (c *Console) cmdDrop(args []string) {
	reason := ims.ReasonDisconnected
	if len(args) > 0 {
		parsed, err := parseReason(args[0])
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
			return
		}
		reason = parsed
	}

	c.binder.Drop(reason)
	fmt.Fprintf(c.rl.Stdout(), "Dropped connection (%s)\n", reason)
}

// cmdSub handles the sub command.
func (c *Console) cmdSub(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: sub <id>")
		return
	}

	subID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid subscription ID: %v\n", err)
		return
	}

	c.ctrl.UpdateAssociatedSubscription(subID)
	fmt.Fprintf(c.rl.Stdout(), "Associated subscription is now %d\n", subID)
}

// cmdCarrier handles the carrier command.
func (c *Console) cmdCarrier() {
	c.ctrl.OnCarrierConfigChanged()
	fmt.Fprintln(c.rl.Stdout(), "Carrier configuration change delivered")
}

// cmdAdd handles the add command.
func (c *Console) cmdAdd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: add <kind>")
		return
	}

	kind := controller.FeatureKind(args[0])
	c.ctrl.AddFeature(kind, newEchoFeature(kind, c.rl.Stdout()))
	fmt.Fprintf(c.rl.Stdout(), "Feature %s attached\n", kind)
}

// cmdRemove handles the remove command.
func (c *Console) cmdRemove(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: remove <kind>")
		return
	}

	kind := controller.FeatureKind(args[0])
	if _, ok := c.ctrl.GetFeature(kind); !ok {
		fmt.Fprintf(c.rl.Stdout(), "No feature attached under %s\n", kind)
		return
	}

	c.ctrl.RemoveFeature(kind)
	fmt.Fprintf(c.rl.Stdout(), "Feature %s detached\n", kind)
}

// cmdFeatures handles the features command.
func (c *Console) cmdFeatures() {
	status := c.ctrl.Status()
	if len(status.FeatureKinds) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No features attached")
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "Attached features (%d):\n", len(status.FeatureKinds))
	for _, kind := range status.FeatureKinds {
		fmt.Fprintf(c.rl.Stdout(), "  %s\n", kind)
	}
}

// cmdRegistered handles the reg command.
func (c *Console) cmdRegistered(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: reg <tech> [uri...]")
		return
	}

	tech, err := parseTech(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	c.binder.Service().EmitRegistered(ims.RegistrationAttributes{
		Tech:           tech,
		AssociatedURIs: args[1:],
	})
	fmt.Fprintf(c.rl.Stdout(), "Registered over %s\n", tech)
}

// cmdRegistering handles the registering command.
func (c *Console) cmdRegistering(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: registering <tech>")
		return
	}

	tech, err := parseTech(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	c.binder.Service().EmitRegistering(tech)
	fmt.Fprintf(c.rl.Stdout(), "Registering over %s\n", tech)
}

// cmdUnregistered handles the unreg command.
func (c *Console) cmdUnregistered(args []string) {
	var info ims.DisconnectReasonInfo
	if len(args) > 0 {
		code, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Invalid reason code: %v\n", err)
			return
		}
		info.Reason = code
	}
	if len(args) > 1 {
		info.Message = strings.Join(args[1:], " ")
	}

	c.binder.Service().EmitUnregistered(info, ims.TechNone)
	fmt.Fprintln(c.rl.Stdout(), "Unregistered")
}

// cmdURIs handles the uris command.
func (c *Console) cmdURIs(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: uris <uri...>")
		return
	}

	c.binder.Service().EmitAssociatedURIChanged(args)
	fmt.Fprintf(c.rl.Stdout(), "Associated URIs changed (%d)\n", len(args))
}

// cmdCapable handles the capable command.
func (c *Console) cmdCapable(args []string) {
	capability, tech, on, err := parseCapabilityArgs("capable", args)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	c.binder.Service().SetCapable(capability, tech, on)
	fmt.Fprintf(c.rl.Stdout(), "%s over %s capable=%t\n", capability, tech, on)
}

// cmdAvailable handles the avail command.
func (c *Console) cmdAvailable(args []string) {
	capability, tech, on, err := parseCapabilityArgs("avail", args)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	c.binder.Service().SetAvailable(capability, tech, on)
	fmt.Fprintf(c.rl.Stdout(), "%s over %s available=%t\n", capability, tech, on)
}

// cmdQuery handles the query command.
func (c *Console) cmdQuery(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: query <cap> <tech>")
		return
	}

	capability, err := parseCapability(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}
	tech, err := parseTech(args[1])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	capable, err := c.ctrl.IsCapable(capability, tech)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Query failed: %v\n", err)
		return
	}
	available, err := c.ctrl.IsAvailable(capability, tech)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Query failed: %v\n", err)
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "%s over %s: capable=%t available=%t\n",
		capability, tech, capable, available)
}

// parseCapabilityArgs parses the shared <cap> <tech> <on|off> argument form.
func parseCapabilityArgs(cmd string, args []string) (ims.Capability, ims.RegistrationTech, bool, error) {
	if len(args) < 3 {
		return 0, 0, false, fmt.Errorf("Usage: %s <cap> <tech> <on|off>", cmd)
	}

	capability, err := parseCapability(args[0])
	if err != nil {
		return 0, 0, false, err
	}
	tech, err := parseTech(args[1])
	if err != nil {
		return 0, 0, false, err
	}
	on, err := parseOnOff(args[2])
	if err != nil {
		return 0, 0, false, err
	}
	return capability, tech, on, nil
}

func parseTech(s string) (ims.RegistrationTech, error) {
	switch strings.ToLower(s) {
	case "lte":
		return ims.TechLTE, nil
	case "iwlan", "wifi":
		return ims.TechIWLAN, nil
	case "cross-sim", "crosssim":
		return ims.TechCrossSIM, nil
	case "nr", "5g":
		return ims.TechNR, nil
	case "none":
		return ims.TechNone, nil
	default:
		return 0, fmt.Errorf("unknown technology: %s (use: lte, iwlan, cross-sim, nr)", s)
	}
}

func parseCapability(s string) (ims.Capability, error) {
	switch strings.ToLower(s) {
	case "options":
		return ims.CapabilityOptions, nil
	case "presence":
		return ims.CapabilityPresence, nil
	default:
		return 0, fmt.Errorf("unknown capability: %s (use: options, presence)", s)
	}
}

func parseReason(s string) (ims.UnavailableReason, error) {
	switch strings.ToLower(s) {
	case "disconnected":
		return ims.ReasonDisconnected, nil
	case "not-ready", "notready":
		return ims.ReasonNotReady, nil
	case "unavailable", "server-unavailable":
		return ims.ReasonServerUnavailable, nil
	case "not-supported", "notsupported":
		return ims.ReasonServerNotSupported, nil
	default:
		return 0, fmt.Errorf("unknown reason: %s (use: disconnected, not-ready, unavailable, not-supported)", s)
	}
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %s", s)
	}
}
