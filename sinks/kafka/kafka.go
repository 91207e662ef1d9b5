package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
)

const defaultPrefix = "social."

// Writer is a minimal Kafka-like writer interface.
// Users can adapt segmentio/kafka-go or any other client to this.
type Writer interface {
	Write(ctx context.Context, topic string, key, value []byte, headers map[string]string) error
}

// Sink implements social.Sink using an injected Writer.
// Records are keyed by network so one network's notices stay ordered within a partition.
type Sink struct {
	Writer Writer
	Prefix string
}

var _ social.Sink = (*Sink)(nil)

// New creates a new Kafka sink with the provided writer.
func New(w Writer) *Sink { return &Sink{Writer: w, Prefix: defaultPrefix} }

func (s *Sink) Emit(ctx context.Context, n social.Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Writer == nil {
		return fmt.Errorf("kafka emit: %w", serr.ErrSinkFailed)
	}

	val, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("kafka emit serialize: %w", errors.Join(serr.ErrSerializationFailed, err))
	}

	headers := map[string]string{
		"x-notice-id": n.ID,
		"x-network":   n.Network,
		"x-kind":      string(n.Kind),
	}

	if err = s.Writer.Write(ctx, topicFor(s.Prefix, n), []byte(n.Network), val, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka emit write: %w", errors.Join(serr.ErrSinkFailed, err))
	}

	return nil
}

func topicFor(prefix string, n social.Notice) string {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return prefix + n.Network + "." + string(n.Kind)
}
