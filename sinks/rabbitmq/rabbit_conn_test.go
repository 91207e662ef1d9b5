package rabbitmq_test

import (
	"errors"
	"testing"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/sinks/rabbitmq"
)

func TestNewWithAMQPConn_EmptyURL(t *testing.T) {
	_, _, err := rabbitmq.NewWithAMQPConn(rabbitmq.Config{URL: "", ConnTimeout: 0})
	if err == nil {
		t.Fatalf("expected error for empty URL")
	}

	if !errors.Is(err, serr.ErrSinkFailed) {
		t.Fatalf("want ErrSinkFailed, got %v", err)
	}
}
