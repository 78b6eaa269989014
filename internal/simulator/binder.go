package simulator

import (
	"context"
	"errors"
	"sync"

	"github.com/rcslink-protocol/rcslink-go/pkg/connector"
	"github.com/rcslink-protocol/rcslink-go/pkg/ims"
)

// ErrServiceNotRunning is returned by bind attempts while the simulated
// service is down.
var ErrServiceNotRunning = errors.New("simulator: service not running")

// Binder simulates the platform side of binding to the feature service.
// While the service is up, bind attempts succeed and hand out the current
// Service; while it is down, they fail so the connector backs off.
type Binder struct {
	mu sync.Mutex

	up      bool
	service *Service

	// conn is the connector whose NotifyLost is invoked on Drop. Set via
	// Attach after the connector is created.
	conn *connector.Connector
}

// NewBinder creates a binder handing out service. The service starts up.
func NewBinder(service *Service) *Binder {
	return &Binder{up: true, service: service}
}

// Attach wires the connector that should be told about dropped
// connections.
func (b *Binder) Attach(conn *connector.Connector) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn = conn
}

// Bind is the connector.BindFunc for this binder.
func (b *Binder) Bind(_ context.Context) (ims.FeatureManager, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.up {
		return nil, ErrServiceNotRunning
	}
	return b.service, nil
}

// SetUp brings the simulated service up or down. Taking the service down
// does not drop an already-live connection; use Drop for that.
func (b *Binder) SetUp(up bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.up = up
}

// Up reports whether the simulated service is up.
func (b *Binder) Up() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.up
}

// Drop reports the live connection as lost with the given reason.
func (b *Binder) Drop(reason ims.UnavailableReason) {
	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()

	if conn != nil {
		conn.NotifyLost(reason)
	}
}

// Service returns the service the binder hands out.
func (b *Binder) Service() *Service {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.service
}
