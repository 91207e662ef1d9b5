package rabbitmq

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Concrete AMQP connection-backed constructor and publisher wrapper with auto-reconnect.

const (
	noticeExchange   = "social"
	noticeExchangeTy = "topic"

	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

type Config struct {
	URL         string
	Exchange    string
	Prefix      string
	ConnTimeout time.Duration
}

type reconnectingPublisher struct {
	cfg       Config
	mu        sync.RWMutex
	conn      *amqp.Connection
	ch        *amqp.Channel
	closed    chan struct{}
	ready     chan struct{} // closed once the first channel is up
	readyOnce sync.Once
}

func newReconnectingPublisher(cfg Config) (*reconnectingPublisher, func()) {
	if cfg.Exchange == "" {
		cfg.Exchange = noticeExchange
	}

	rp := &reconnectingPublisher{
		cfg:    cfg,
		closed: make(chan struct{}),
		ready:  make(chan struct{}),
	}
	go rp.run()

	return rp, rp.close
}

func (rp *reconnectingPublisher) Publish(ctx context.Context, m PubMsg) error {
	ch := rp.channel()
	if ch == nil {
		select {
		case <-rp.ready:
		case <-rp.closed:
			return fmt.Errorf("%w: rabbitmq publisher closed", serr.ErrSinkFailed)
		case <-ctx.Done():
			return ctx.Err()
		}

		if ch = rp.channel(); ch == nil {
			return fmt.Errorf("%w: rabbitmq not connected", serr.ErrSinkFailed)
		}
	}

	return ch.PublishWithContext(
		ctx,
		m.Exchange,
		m.RoutingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Headers:      toTable(m.Headers),
			ContentType:  "application/json",
			Body:         m.Body,
		},
	)
}

func (rp *reconnectingPublisher) channel() *amqp.Channel {
	rp.mu.RLock()
	defer rp.mu.RUnlock()

	return rp.ch
}

func (rp *reconnectingPublisher) dial() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(rp.cfg.URL, amqp.Config{
		Locale:     "en_US",
		Properties: amqp.Table{"product": "scg-social-adapter"},
		Dial:       amqp.DefaultDial(rp.cfg.ConnTimeout),
	})
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	if err := ch.ExchangeDeclare(rp.cfg.Exchange, noticeExchangeTy, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, err
	}

	return conn, ch, nil
}

func (rp *reconnectingPublisher) run() {
	backoff := minBackoff
	// #nosec G404 -- non-crypto RNG is acceptable for backoff jitter
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // jitter only

	for {
		select {
		case <-rp.closed:
			return
		default:
		}

		conn, ch, err := rp.dial()
		if err != nil {
			sleep := backoff + time.Duration(rng.Int63n(int64(backoff/2)))
			if sleep > maxBackoff {
				sleep = maxBackoff
			}

			t := time.NewTimer(sleep)
			select {
			case <-rp.closed:
				t.Stop()
				return
			case <-t.C:
			}

			backoff = min(backoff*2, maxBackoff)

			continue
		}

		backoff = minBackoff

		rp.mu.Lock()
		rp.conn, rp.ch = conn, ch
		rp.mu.Unlock()
		rp.readyOnce.Do(func() { close(rp.ready) })

		// Block on connection close notifications to trigger reconnect
		notify := conn.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-rp.closed:
			return
		case <-notify:
			rp.mu.Lock()
			rp.conn, rp.ch = nil, nil
			rp.mu.Unlock()

			_ = ch.Close()
			_ = conn.Close()
		}
	}
}

func (rp *reconnectingPublisher) close() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	select {
	case <-rp.closed:
		return
	default:
		close(rp.closed)
	}

	if rp.ch != nil {
		_ = rp.ch.Close()
		rp.ch = nil
	}

	if rp.conn != nil {
		_ = rp.conn.Close()
		rp.conn = nil
	}
}

// NewWithAMQPConn dials RabbitMQ with auto-reconnect, ensures the notice exchange, and returns a Sink and cleanup.
func NewWithAMQPConn(cfg Config) (*Sink, func(), error) {
	if cfg.URL == "" {
		return nil, nil, fmt.Errorf("%w: rabbitmq url required", serr.ErrSinkFailed)
	}

	pub, cleanup := newReconnectingPublisher(cfg)

	s := New(pub)
	s.Exchange = pub.cfg.Exchange

	if cfg.Prefix != "" {
		s.Prefix = cfg.Prefix
	}

	return s, cleanup, nil
}
