package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sink.Type != SinkConsole {
		t.Fatalf("sink=%s", cfg.Sink.Type)
	}

	if strings.Join(cfg.Networks, ",") != "twitter,instagram" {
		t.Fatalf("networks=%v", cfg.Networks)
	}

	if cfg.Content.Title != "Teste supremo!" || cfg.Content.Description != "Realizando um teste do padrão Adapter." {
		t.Fatalf("content=%+v", cfg.Content)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socialctl.yaml")
	data := `
log_level: debug
sink:
  type: nats
  url: nats://127.0.0.1:4222
  prefix: demo.
networks: [instagram]
content:
  title: Olá
  description: Mundo
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, got, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got != path {
		t.Fatalf("path=%s", got)
	}

	if cfg.Sink.Type != SinkNATS || cfg.Sink.URL != "nats://127.0.0.1:4222" || cfg.Sink.Prefix != "demo." {
		t.Fatalf("sink=%+v", cfg.Sink)
	}

	if len(cfg.Networks) != 1 || cfg.Networks[0] != "instagram" {
		t.Fatalf("networks=%v", cfg.Networks)
	}

	if cfg.Content.Title != "Olá" || cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadFromPath_Errors(t *testing.T) {
	if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("sink: [unterminated"), 0o600)

	if _, _, err := LoadFromPath(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoad_UsesEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	_ = os.WriteFile(path, []byte("sink:\n  type: memory\n"), 0o600)

	orig := osGetenv
	osGetenv = func(k string) string {
		if k == EnvConfigPath {
			return path
		}

		return ""
	}

	defer func() { osGetenv = orig }()

	cfg, got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got != path || cfg.Sink.Type != SinkMemory {
		t.Fatalf("path=%s sink=%s", got, cfg.Sink.Type)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sink SinkConfig
		ok   bool
	}{
		{"console", SinkConfig{Type: SinkConsole}, true},
		{"nats without url", SinkConfig{Type: SinkNATS}, false},
		{"rabbitmq with url", SinkConfig{Type: SinkRabbitMQ, URL: "amqp://localhost"}, true},
		{"kafka without brokers", SinkConfig{Type: SinkKafka}, false},
		{"kafka with brokers", SinkConfig{Type: SinkKafka, Brokers: []string{"localhost:9092"}}, true},
		{"unknown", SinkConfig{Type: "carrier-pigeon"}, false},
	}

	for _, tc := range tests {
		cfg := Default()
		cfg.Sink = tc.sink

		if err := cfg.Validate(); (err == nil) != tc.ok {
			t.Fatalf("%s: ok=%v err=%v", tc.name, tc.ok, err)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	for lvl, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn,
		"error": slog.LevelError, "bogus": slog.LevelInfo,
	} {
		if got := (&Config{LogLevel: lvl}).SlogLevel(); got != want {
			t.Fatalf("%s: got %v want %v", lvl, got, want)
		}
	}
}
