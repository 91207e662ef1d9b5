// Package instagram provides the Instagram-flavoured adapter and its factory.
package instagram

import (
	"context"
	"errors"
	"fmt"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

// Network is the registry name of this adapter.
const Network = "instagram"

const (
	displayName = "Instagram"
	authText    = "Autenticando..."
)

// Adapter implements social.Adapter by emitting notices to Sink.
type Adapter struct {
	Sink social.Sink
}

var _ social.Adapter = (*Adapter)(nil)

// New creates an Instagram adapter emitting to s.
func New(s social.Sink) *Adapter { return &Adapter{Sink: s} }

// NewFactory returns a factory bound to the Instagram adapter. A nil sink is a misconfiguration.
func NewFactory(s social.Sink) social.Factory { //nolint:ireturn
	return social.FactoryFunc(func() (social.Adapter, error) {
		if s == nil {
			return nil, fmt.Errorf("instagram factory: sink required: %w", serr.ErrFactoryFailed)
		}

		return New(s), nil
	})
}

func (a *Adapter) Network() string { return Network }

func (a *Adapter) Authenticate(ctx context.Context) error {
	if err := a.ready(ctx, serr.ErrAuthFailed, "authenticate"); err != nil {
		return err
	}

	return a.send(ctx, social.NewAuthNotice(Network, authText), serr.ErrAuthFailed, "authenticate")
}

func (a *Adapter) Publish(ctx context.Context, c social.Content) error {
	if err := a.ready(ctx, serr.ErrPublishFailed, "publish"); err != nil {
		return err
	}

	text := fmt.Sprintf("Publicando no %s: %s - %s", displayName, c.Title(), c.Description())

	return a.send(ctx, social.NewPublishNotice(Network, text, c), serr.ErrPublishFailed, "publish")
}

// helpers

func (a *Adapter) ready(ctx context.Context, base error, label string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Sink == nil {
		return fmt.Errorf("instagram %s: %w", label, base)
	}

	return nil
}

func (a *Adapter) send(ctx context.Context, n social.Notice, wrap error, label string) error {
	err := a.Sink.Emit(ctx, n)
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("instagram %s: %w", label, errors.Join(wrap, err))
}
