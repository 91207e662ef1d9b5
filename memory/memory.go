package memory

import (
	"log/slog"

	"github.com/next-trace/scg-social-adapter/manager"
	"github.com/next-trace/scg-social-adapter/networks"
	"github.com/next-trace/scg-social-adapter/sinks/inmemory"
)

// New constructs a Manager starting on the named network, with every adapter emitting into one
// in-memory sink. The returned switchTo swaps the manager to another registered network that
// shares the same sink.
func New(network string, logger *slog.Logger) (*manager.Manager, *inmemory.Sink, func(string) error, error) {
	sink := inmemory.New()

	a, err := networks.Create(network, sink)
	if err != nil {
		return nil, nil, nil, err
	}

	m, err := manager.New(a, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	switchTo := func(name string) error {
		next, err := networks.Create(name, sink)
		if err != nil {
			return err
		}

		return m.ChangeAdapter(next)
	}

	return m, sink, switchTo, nil
}
