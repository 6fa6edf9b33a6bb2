// Package autofill stamps audit fields (create/update time and actor) on
// entities just before a persistence call runs.
//
// Mapper methods describe each call as an Invocation whose Operation marks it
// as an insert or an update, and hand the statement to Interceptor.Intercept.
// The entity to stamp is always the first argument. Unmarked calls, and marked
// calls without arguments, pass through untouched.
//
// Auto-fill is best-effort: a failure is logged and counted, and the call
// still runs. WithStrict turns failures into errors that abort the call.
package autofill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
	"github.com/SscSPs/sky_take_out/internal/ctxutil"
)

// Invocation describes a pending persistence call.
type Invocation struct {
	Method    string
	Operation OperationType
	Args      []any
}

// Handler runs the persistence call being decorated.
type Handler func(ctx context.Context) error

// ActorFunc resolves the current actor for a call.
type ActorFunc func(ctx context.Context) (int64, bool)

// Match reports whether inv is subject to auto-fill and, if so, returns the
// operation and the entity to stamp.
func Match(inv Invocation) (OperationType, any, bool) {
	if inv.Operation == OperationNone || len(inv.Args) == 0 {
		return OperationNone, nil, false
	}
	return inv.Operation, inv.Args[0], true
}

// Interceptor is the auto-fill stage in front of mapper calls.
type Interceptor struct {
	now     func() time.Time
	actor   ActorFunc
	strict  bool
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(i *Interceptor) { i.now = now }
}

// WithActorFunc overrides how the current actor is resolved.
func WithActorFunc(fn ActorFunc) Option {
	return func(i *Interceptor) { i.actor = fn }
}

// WithStrict makes injection failures abort the intercepted call.
func WithStrict(strict bool) Option {
	return func(i *Interceptor) { i.strict = strict }
}

// WithLogger sets the logger used when the call context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interceptor) { i.logger = logger }
}

// WithMetrics attaches outcome counters.
func WithMetrics(m *Metrics) Option {
	return func(i *Interceptor) { i.metrics = m }
}

// NewInterceptor creates an Interceptor reading the actor from ctxutil.
func NewInterceptor(opts ...Option) *Interceptor {
	i := &Interceptor{
		now:    time.Now,
		actor:  ctxutil.ActorIDFromContext,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Intercept stamps the entity of a matching invocation and then runs next.
func (i *Interceptor) Intercept(ctx context.Context, inv Invocation, next Handler) error {
	op, entity, ok := Match(inv)
	if !ok {
		if inv.Operation != OperationNone {
			i.metrics.observe(inv.Operation, resultSkipped)
		}
		return next(ctx)
	}

	at, actor := i.stamp(ctx)
	injectErr := Inject(entity, op, at, actor)
	if err := i.report(ctx, inv.Method, op, fmt.Sprintf("%T", entity), injectErr); err != nil {
		return err
	}
	return next(ctx)
}

// stamp returns the timestamp and actor for one call. All fields written by
// that call share both values.
func (i *Interceptor) stamp(ctx context.Context) (time.Time, int64) {
	at := i.now()
	actor, ok := i.actor(ctx)
	if !ok {
		i.loggerFor(ctx).Debug("No actor in context, stamping system actor")
		actor = domain.SystemActorID
	}
	return at, actor
}

// report records the outcome of one injection. It only returns an error in
// strict mode.
func (i *Interceptor) report(ctx context.Context, method string, op OperationType, entityType string, err error) error {
	if err == nil {
		i.metrics.observe(op, resultFilled)
		return nil
	}
	i.metrics.observe(op, resultFailed)
	i.loggerFor(ctx).Warn("Audit field auto-fill incomplete",
		slog.String("method", method),
		slog.String("operation", op.String()),
		slog.String("entity", entityType),
		slog.String("error", err.Error()),
	)
	if i.strict {
		return fmt.Errorf("autofill %s: %w", method, err)
	}
	return nil
}

func (i *Interceptor) loggerFor(ctx context.Context) *slog.Logger {
	if logger := ctxutil.LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return i.logger
}
