package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

// DefaultPrefix is prepended to every subject unless Sink.Prefix is set.
const DefaultPrefix = "social."

// Client is a minimal NATS-like publisher interface decoupled from any concrete library.
// Users can provide a wrapper around their NATS connection to satisfy this.
type Client interface {
	// Publish publishes a message to a subject with optional headers.
	Publish(subject string, data []byte, headers map[string]string) error
}

// Sink implements social.Sink using an injected NATS-like Client.
type Sink struct {
	Client Client
	Prefix string
}

// Ensure Sink implements the contract.
var _ social.Sink = (*Sink)(nil)

// New creates a new NATS sink with the provided client and the default subject prefix.
func New(c Client) *Sink { return &Sink{Client: c, Prefix: DefaultPrefix} }

// Emit publishes n as JSON on <prefix><network>.<kind>.
func (s *Sink) Emit(ctx context.Context, n social.Notice) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("nats emit serialize: %w", errors.Join(serr.ErrSerializationFailed, err))
	}

	return s.publish(subjectFor(s.Prefix, n), body, noticeHeaders(n))
}

func (s *Sink) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Client == nil {
		return fmt.Errorf("nats emit: %w", serr.ErrSinkFailed)
	}

	return nil
}

func (s *Sink) publish(subject string, body []byte, headers map[string]string) error {
	if err := s.Client.Publish(subject, body, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats emit publish: %w", errors.Join(serr.ErrSinkFailed, err))
	}

	return nil
}

// helpers

func subjectFor(prefix string, n social.Notice) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return prefix + n.Network + "." + string(n.Kind)
}

func noticeHeaders(n social.Notice) map[string]string {
	return map[string]string{
		"x-notice-id": n.ID,
		"x-network":   n.Network,
		"x-kind":      string(n.Kind),
	}
}
