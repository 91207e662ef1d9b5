package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

// Manager delegates to a single active adapter.
//
// The active adapter is never nil after construction. Each call snapshots the adapter
// under a read lock, so a call that started before ChangeAdapter finishes on the old adapter.
// Manager is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	active social.Adapter

	// publish middleware executed in registration order
	pubMW []PublishMiddleware

	logger *slog.Logger
}

// PublishFunc is the shape of a publish call once bound to an adapter.
type PublishFunc func(ctx context.Context, c social.Content) error

// PublishMiddleware wraps publish execution. Middlewares are executed in registration order.
type PublishMiddleware func(next PublishFunc) PublishFunc

// Option configures a Manager instance.
type Option func(*Manager)

// WithPublishMiddleware registers publish middleware via an option.
func WithPublishMiddleware(mw ...PublishMiddleware) Option {
	return func(m *Manager) { m.pubMW = append(m.pubMW, mw...) }
}

// New constructs a Manager around the initial adapter. A nil logger discards log output.
func New(initial social.Adapter, logger *slog.Logger, opts ...Option) (*Manager, error) {
	if initial == nil {
		return nil, fmt.Errorf("new manager: %w", serr.ErrAdapterRequired)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Manager{active: initial, logger: logger}
	for _, o := range opts {
		o(m)
	}

	return m, nil
}

// Adapter returns the currently active adapter.
func (m *Manager) Adapter() social.Adapter { //nolint:ireturn
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active
}

// ChangeAdapter replaces the active adapter for all subsequent calls.
// A nil adapter is rejected and the current one stays active.
func (m *Manager) ChangeAdapter(next social.Adapter) error {
	if next == nil {
		return fmt.Errorf("change adapter: %w", serr.ErrAdapterRequired)
	}

	m.mu.Lock()
	prev := m.active
	m.active = next
	m.mu.Unlock()

	m.logger.Info("adapter changed", "from", prev.Network(), "to", next.Network())

	return nil
}

// Authenticate forwards to the active adapter.
func (m *Manager) Authenticate(ctx context.Context) error {
	a := m.Adapter()
	m.logger.DebugContext(ctx, "authenticate", "network", a.Network())

	return a.Authenticate(ctx)
}

// Publish forwards c unchanged to the active adapter through the registered middleware.
func (m *Manager) Publish(ctx context.Context, c social.Content) error {
	return m.publishWithMiddleware(ctx, m.Adapter(), c)
}

// PublishWithMiddleware publishes with additional per-call middleware.
func (m *Manager) PublishWithMiddleware(ctx context.Context, c social.Content, mws ...PublishMiddleware) error {
	return m.publishWithMiddleware(ctx, m.Adapter(), c, mws...)
}

func (m *Manager) publishWithMiddleware(
	ctx context.Context,
	a social.Adapter,
	c social.Content,
	mws ...PublishMiddleware,
) error {
	m.logger.DebugContext(ctx, "publish", "network", a.Network(), "title", c.Title())

	chain := make([]PublishMiddleware, 0, len(m.pubMW)+len(mws))
	chain = append(chain, m.pubMW...)
	chain = append(chain, mws...)

	// Build chain so the first registered middleware runs first
	final := PublishFunc(a.Publish)
	for i := len(chain) - 1; i >= 0; i-- {
		final = chain[i](final)
	}

	return final(ctx, c)
}

// BatchOptions controls PublishAll behavior.
// OnProgress is called after each item completes (success or failure) with done and total.
// OnError is called when an item fails with its index, the content, and the error.
type BatchOptions struct {
	OnProgress func(done, total int)
	OnError    func(index int, c social.Content, err error)
}

// BatchOpt configures BatchOptions.
type BatchOpt func(*BatchOptions)

// WithBatchProgress sets the progress callback.
func WithBatchProgress(fn func(done, total int)) BatchOpt {
	return func(o *BatchOptions) { o.OnProgress = fn }
}

// WithBatchOnError sets the error callback.
func WithBatchOnError(fn func(index int, c social.Content, err error)) BatchOpt {
	return func(o *BatchOptions) { o.OnError = fn }
}

// PublishAll publishes contents sequentially on the adapter active when the batch starts.
// It respects context cancellation, reports progress, and aggregates errors.
func (m *Manager) PublishAll(ctx context.Context, contents []social.Content, opts ...BatchOpt) error {
	var o BatchOptions
	for _, f := range opts {
		f(&o)
	}

	a := m.Adapter()
	total := len(contents)

	var errs []error

	for i, c := range contents {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		if err := m.publishWithMiddleware(ctx, a, c); err != nil {
			if o.OnError != nil {
				o.OnError(i, c, err)
			}

			errs = append(errs, err)
		}

		if o.OnProgress != nil {
			o.OnProgress(i+1, total)
		}
	}

	if len(errs) > 0 {
		m.logger.WarnContext(ctx, "publish batch finished with errors", "network", a.Network(), "failed", len(errs), "total", total)
	}

	return errors.Join(errs...)
}
