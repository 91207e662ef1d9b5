package social

import "context"

// Sink receives notices emitted by adapters.
// Library users may provide their own implementation (log shipper, broker, test recorder).
// Implementations must be safe for concurrent use.
type Sink interface {
	Emit(ctx context.Context, n Notice) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n Notice) error

// Emit calls f.
func (f SinkFunc) Emit(ctx context.Context, n Notice) error { return f(ctx, n) }
