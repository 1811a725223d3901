package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"pinopoly/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerURL != "http://127.0.0.1:5000" {
		t.Fatalf("server url = %q", cfg.ServerURL)
	}
	if cfg.SocketURL != "ws://127.0.0.1:5000/ws" {
		t.Fatalf("socket url = %q", cfg.SocketURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	home := t.TempDir()
	yaml := []byte("server_url: https://game.example\nlog_level: debug\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerURL != "https://game.example" {
		t.Fatalf("server url = %q", cfg.ServerURL)
	}
	if cfg.SocketURL != "wss://game.example/ws" {
		t.Fatalf("socket url = %q", cfg.SocketURL)
	}

	// Environment beats the file.
	t.Setenv("PINOPOLY_SERVER_URL", "http://10.0.0.2:5000")
	t.Setenv("PINOPOLY_SOCKET_URL", "ws://10.0.0.2:5001/ws")

	cfg, err = app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerURL != "http://10.0.0.2:5000" {
		t.Fatalf("server url = %q", cfg.ServerURL)
	}
	if cfg.SocketURL != "ws://10.0.0.2:5001/ws" {
		t.Fatalf("socket url = %q", cfg.SocketURL)
	}
}

func TestNewWire_RejectsBadLogLevel(t *testing.T) {
	_, err := app.NewWire(app.Config{Home: t.TempDir(), LogLevel: "loud"})
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
