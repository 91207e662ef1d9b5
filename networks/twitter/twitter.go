// Package twitter provides the Twitter-flavoured adapter and its factory.
// Nothing is sent to Twitter; every call becomes a notice on the injected sink.
package twitter

import (
	"context"
	"errors"
	"fmt"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

// Network is the registry name of this adapter.
const Network = "twitter"

const (
	displayName = "Twitter"
	authText    = "Autenticando..."
)

// Adapter implements social.Adapter by emitting notices to Sink.
type Adapter struct {
	Sink social.Sink
}

var _ social.Adapter = (*Adapter)(nil)

// New creates a Twitter adapter emitting to s.
func New(s social.Sink) *Adapter { return &Adapter{Sink: s} }

// NewFactory returns a factory bound to the Twitter adapter. A nil sink is a misconfiguration.
func NewFactory(s social.Sink) social.Factory { //nolint:ireturn
	return social.FactoryFunc(func() (social.Adapter, error) {
		if s == nil {
			return nil, fmt.Errorf("twitter factory: sink required: %w", serr.ErrFactoryFailed)
		}

		return New(s), nil
	})
}

func (a *Adapter) Network() string { return Network }

func (a *Adapter) Authenticate(ctx context.Context) error {
	return a.emit(ctx, social.NewAuthNotice(Network, authText), serr.ErrAuthFailed, "authenticate")
}

func (a *Adapter) Publish(ctx context.Context, c social.Content) error {
	text := fmt.Sprintf("Publicando no %s: %s - %s", displayName, c.Title(), c.Description())

	return a.emit(ctx, social.NewPublishNotice(Network, text, c), serr.ErrPublishFailed, "publish")
}

func (a *Adapter) emit(ctx context.Context, n social.Notice, base error, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Sink == nil {
		return fmt.Errorf("twitter %s: %w", label, base)
	}

	if err := a.Sink.Emit(ctx, n); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("twitter %s: %w", label, errors.Join(base, err))
	}

	return nil
}
