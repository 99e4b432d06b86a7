package dispatch

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/mkarpinski/eventcal/pkg/eventcal/observability"
	"github.com/mkarpinski/eventcal/pkg/eventcal/store"
)

// Config holds the dispatcher's explicit configuration. There is no
// global state; tests point each dispatcher at its own disposable
// store.
type Config struct {
	// StorePath is the SQLite database file used for local execution.
	StorePath string
}

// Caller forwards an operation name and argument list to a remote
// endpoint exposing the identical operation surface. Implemented by
// the rpc client.
type Caller interface {
	Call(ctx context.Context, op string, args []any) (any, error)
}

// Dispatcher resolves operation names through a static registry and
// runs them on the selected transport.
type Dispatcher struct {
	cfg     Config
	ops     map[string]Handler
	remote  Caller
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger. nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithRemote sets the caller used for remote execution.
func WithRemote(c Caller) Option {
	return func(d *Dispatcher) { d.remote = c }
}

// WithMetrics sets the metrics recorder. Default: no-op.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithSpanManager sets the span manager. Default: no-op.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(d *Dispatcher) {
		if sm != nil {
			d.spans = sm
		}
	}
}

// New builds a dispatcher with the registry constructed once.
func New(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		ops:     newOps(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ops returns the sorted operation names the dispatcher exposes.
func (d *Dispatcher) Ops() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call executes the named operation with the given positional
// arguments. When remote is false a fresh store handle is opened for
// this call and closed before returning; when remote is true the call
// is forwarded verbatim to the remote caller and no store handle is
// ever created. An unknown name fails on either path before any store
// or network access.
func (d *Dispatcher) Call(ctx context.Context, op string, args []any, remote bool) (any, error) {
	h, ok := d.ops[op]
	if !ok {
		return nil, &UnknownOpError{Op: op}
	}

	transport := "local"
	if remote {
		transport = "remote"
	}

	ctx, span := d.spans.StartCallSpan(ctx, op, transport)
	observability.LogCallStart(d.logger, op, transport)
	start := time.Now()

	result, err := d.dispatch(ctx, h, op, args, remote)

	duration := time.Since(start)
	d.metrics.RecordCall(ctx, op, transport, duration, err)
	if err != nil {
		observability.LogCallError(d.logger, op, transport, err, duration)
	} else {
		observability.LogCallComplete(d.logger, op, transport, duration)
	}
	d.spans.EndSpanWithError(span, err)

	return result, err
}

func (d *Dispatcher) dispatch(ctx context.Context, h Handler, op string, args []any, remote bool) (any, error) {
	if remote {
		if d.remote == nil {
			return nil, ErrNoRemote
		}
		return d.remote.Call(ctx, op, args)
	}

	st, err := store.Open(d.cfg.StorePath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return h(ctx, st, Args(args))
}
