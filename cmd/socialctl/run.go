package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/next-trace/scg-social-adapter/config"
	"github.com/next-trace/scg-social-adapter/contract/social"
	"github.com/next-trace/scg-social-adapter/manager"
	"github.com/next-trace/scg-social-adapter/networks"
	"github.com/spf13/cobra"
)

type runFlags struct {
	configPath  string
	sink        string
	url         string
	brokers     []string
	prefix      string
	networks    []string
	title       string
	description string
	logLevel    string
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Authenticate and publish once per network, swapping adapters in between",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or ./"+config.DefaultFile+")")
	cmd.Flags().StringVar(&f.sink, "sink", "", "notice sink: console, memory, nats, rabbitmq, kafka")
	cmd.Flags().StringVar(&f.url, "url", "", "broker URL for nats or rabbitmq sinks")
	cmd.Flags().StringSliceVar(&f.brokers, "brokers", nil, "seed brokers for the kafka sink")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "subject/topic prefix for broker sinks")
	cmd.Flags().StringSliceVar(&f.networks, "networks", nil, "networks to run in order (e.g. twitter,instagram)")
	cmd.Flags().StringVar(&f.title, "title", "", "content title")
	cmd.Flags().StringVar(&f.description, "description", "", "content description")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// loadConfig layers flags that were explicitly set over the file config.
func loadConfig(cmd *cobra.Command, f runFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if f.configPath != "" {
		cfg, _, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, _, err = config.Load()
	}

	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("sink") {
		cfg.Sink.Type = f.sink
	}

	if changed("url") {
		cfg.Sink.URL = f.url
	}

	if changed("brokers") {
		cfg.Sink.Brokers = f.brokers
	}

	if changed("prefix") {
		cfg.Sink.Prefix = f.prefix
	}

	if changed("networks") {
		cfg.Networks = f.networks
	}

	if changed("title") {
		cfg.Content.Title = f.title
	}

	if changed("description") {
		cfg.Content.Description = f.description
	}

	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	sink, cleanup, err := buildSink(cfg.Sink, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	content := social.NewContent(cfg.Content.Title, cfg.Content.Description)

	var m *manager.Manager

	for _, name := range cfg.Networks {
		a, err := networks.Create(name, sink)
		if err != nil {
			return err
		}

		if m == nil {
			if m, err = manager.New(a, logger); err != nil {
				return err
			}
		} else if err := m.ChangeAdapter(a); err != nil {
			return err
		}

		if err := m.Authenticate(ctx); err != nil {
			return err
		}

		if err := m.Publish(ctx, content); err != nil {
			return err
		}
	}

	return nil
}
