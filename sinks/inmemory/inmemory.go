package inmemory

import (
	"context"
	"sync"

	"github.com/next-trace/scg-social-adapter/contract/social"
)

// Sink is a thread-safe in-memory implementation of social.Sink.
// It records emitted notices for testing and examples.
type Sink struct {
	mu      sync.Mutex
	notices []social.Notice
	err     error
}

// Ensure Sink implements the contract.
var _ social.Sink = (*Sink)(nil)

// New creates a new in-memory sink.
func New() *Sink { return &Sink{} }

// Emit records n. If a failure was injected with FailWith, it is returned and nothing is recorded.
func (s *Sink) Emit(ctx context.Context, n social.Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.notices = append(s.notices, n)

	return nil
}

// FailWith makes subsequent Emit calls return err. A nil err restores normal recording.
func (s *Sink) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Notices returns a copy of the recorded notices in emission order.
func (s *Sink) Notices() []social.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]social.Notice(nil), s.notices...)
}

// Texts returns the text of every recorded notice in emission order.
func (s *Sink) Texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.notices))
	for _, n := range s.notices {
		out = append(out, n.Text)
	}

	return out
}

// Reset drops all recorded notices.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.notices = nil
	s.mu.Unlock()
}
