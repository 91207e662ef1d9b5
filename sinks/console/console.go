// Package console writes notices as plain lines, which is how the adapters report by default.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

// Sink prints one line per notice to W.
type Sink struct {
	mu sync.Mutex
	W  io.Writer
}

var _ social.Sink = (*Sink)(nil)

// New creates a console sink writing to w. A nil w means standard output.
func New(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}

	return &Sink{W: w}
}

// Emit writes n.Text followed by a newline.
func (s *Sink) Emit(ctx context.Context, n social.Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.W, n.Text); err != nil {
		return fmt.Errorf("console emit: %w", errors.Join(serr.ErrSinkFailed, err))
	}

	return nil
}
