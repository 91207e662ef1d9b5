package main

import (
	"fmt"
	"io"

	"github.com/next-trace/scg-social-adapter/config"
	"github.com/next-trace/scg-social-adapter/contract/social"
	"github.com/next-trace/scg-social-adapter/sinks/console"
	"github.com/next-trace/scg-social-adapter/sinks/inmemory"
	"github.com/next-trace/scg-social-adapter/sinks/kafka"
	"github.com/next-trace/scg-social-adapter/sinks/nats"
	"github.com/next-trace/scg-social-adapter/sinks/rabbitmq"
)

// buildSink returns the configured sink and a cleanup that releases its connection.
// Memory sinks dump what they recorded to out on cleanup.
func buildSink(cfg config.SinkConfig, out io.Writer) (social.Sink, func(), error) { //nolint:ireturn
	switch cfg.Type {
	case config.SinkConsole:
		return console.New(out), func() {}, nil
	case config.SinkMemory:
		s := inmemory.New()
		dump := func() {
			for _, n := range s.Notices() {
				fmt.Fprintf(out, "[%s/%s] %s\n", n.Network, n.Kind, n.Text)
			}
		}

		return s, dump, nil
	case config.SinkNATS:
		s, cleanup, err := nats.NewWithNATS(nats.Config{URL: cfg.URL, Name: "socialctl", Prefix: cfg.Prefix})
		if err != nil {
			return nil, nil, err
		}

		return s, cleanup, nil
	case config.SinkRabbitMQ:
		s, cleanup, err := rabbitmq.NewWithAMQPConn(rabbitmq.Config{URL: cfg.URL, Prefix: cfg.Prefix})
		if err != nil {
			return nil, nil, err
		}

		return s, cleanup, nil
	case config.SinkKafka:
		s, cleanup, err := kafka.NewWithKgo(kafka.Config{Brokers: cfg.Brokers, Prefix: cfg.Prefix, ClientID: "socialctl"})
		if err != nil {
			return nil, nil, err
		}

		return s, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink type %q", cfg.Type)
	}
}
