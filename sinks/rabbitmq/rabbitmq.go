package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultPrefix = "social."

type PubMsg struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, m PubMsg) error
}

type Sink struct {
	Publisher  Publisher
	Propagator social.HeaderPropagator // optional, for context propagation into headers
	Exchange   string
	Prefix     string
}

var _ social.Sink = (*Sink)(nil)

func New(p Publisher) *Sink { return &Sink{Publisher: p, Exchange: noticeExchange, Prefix: defaultPrefix} }

// NewWithPropagator allows configuring a HeaderPropagator for context propagation.
func NewWithPropagator(p Publisher, hp social.HeaderPropagator) *Sink {
	s := New(p)
	s.Propagator = hp

	return s
}

func (s *Sink) Emit(ctx context.Context, n social.Notice) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("rabbitmq emit serialize: %w", errors.Join(serr.ErrSerializationFailed, err))
	}

	msg := PubMsg{
		Exchange:   s.Exchange,
		RoutingKey: routingFor(s.Prefix, n),
		Body:       body,
		Headers:    s.headers(ctx, n),
	}

	if err := s.Publisher.Publish(ctx, msg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq emit publish: %w", errors.Join(serr.ErrSinkFailed, err))
	}

	return nil
}

func (s *Sink) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Publisher == nil {
		return fmt.Errorf("rabbitmq emit: %w", serr.ErrSinkFailed)
	}

	return nil
}

func (s *Sink) headers(ctx context.Context, n social.Notice) map[string]string {
	h := map[string]string{
		"x-notice-id": n.ID,
		"x-network":   n.Network,
		"x-kind":      string(n.Kind),
	}
	// Inject tracing context via configured propagator
	if s.Propagator != nil {
		s.Propagator.Inject(ctx, h)
	}

	return h
}

func routingFor(prefix string, n social.Notice) string {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return prefix + n.Network + "." + string(n.Kind)
}

type amqpChannelPublisher struct{ ch *amqp.Channel }

func (p amqpChannelPublisher) Publish(ctx context.Context, m PubMsg) error {
	return p.ch.PublishWithContext(
		ctx,
		m.Exchange,
		m.RoutingKey,
		false,
		false,
		amqp.Publishing{
			Headers:     toTable(m.Headers),
			Body:        m.Body,
			ContentType: "application/json",
		},
	)
}

// NewWithAMQPChannel wraps an already-open channel. The caller owns the channel and the exchange.
func NewWithAMQPChannel(ch *amqp.Channel) *Sink {
	return New(amqpChannelPublisher{ch: ch})
}

func toTable(headers map[string]string) amqp.Table {
	if len(headers) == 0 {
		return nil
	}

	t := amqp.Table{}
	for k, v := range headers {
		t[k] = v
	}

	return t
}
