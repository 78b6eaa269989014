package interactive

import (
	"fmt"
	"io"
	"sync"

	"github.com/rcslink-protocol/rcslink-go/pkg/controller"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// echoFeature prints every lifecycle callback it receives so the
// controller's delivery order is visible in the console.
type echoFeature struct {
	kind controller.FeatureKind
	out  io.Writer

	mu          sync.Mutex
	connected   bool
	subID       int
	connects    int
	disconnects int
}

func newEchoFeature(kind controller.FeatureKind, out io.Writer) *echoFeature {
	return &echoFeature{
		kind:  kind,
		out:   out,
		subID: ims.InvalidSubscriptionID,
	}
}

func (f *echoFeature) OnConnected(ims.FeatureManager) {
	f.mu.Lock()
	f.connected = true
	f.connects++
	f.mu.Unlock()
	fmt.Fprintf(f.out, "[%s] connected\n", f.kind)
}

func (f *echoFeature) OnDisconnected() {
	f.mu.Lock()
	f.connected = false
	f.disconnects++
	f.mu.Unlock()
	fmt.Fprintf(f.out, "[%s] disconnected\n", f.kind)
}

func (f *echoFeature) OnAssociatedSubscriptionUpdated(subID int) {
	f.mu.Lock()
	f.subID = subID
	f.mu.Unlock()
	fmt.Fprintf(f.out, "[%s] associated subscription is now %d\n", f.kind, subID)
}

func (f *echoFeature) OnCarrierConfigChanged() {
	fmt.Fprintf(f.out, "[%s] carrier configuration changed\n", f.kind)
}

func (f *echoFeature) OnDestroy() {
	fmt.Fprintf(f.out, "[%s] destroyed\n", f.kind)
}

func (f *echoFeature) Dump(w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(w, "connected=%t\n", f.connected)
	fmt.Fprintf(w, "subId=%d\n", f.subID)
	fmt.Fprintf(w, "connects=%d disconnects=%d\n", f.connects, f.disconnects)
}

// Compile-time interface satisfaction check.
var _ controller.Feature = (*echoFeature)(nil)
