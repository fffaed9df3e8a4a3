package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Snider/Quotebox/pkg/quote"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotebox.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Good(t *testing.T) {
	t.Setenv(EnvPath, "")

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Endpoint != quote.DefaultEndpoint {
			t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected defaults to validate: %v", err)
		}
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, `
endpoint = "http://localhost:9000/quotes"
timeout = "5s"

[serve]
port = "3000"
open = true

[watch]
interval = "1m"

[log]
format = "json"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Endpoint != "http://localhost:9000/quotes" || cfg.Timeout != 5*time.Second {
			t.Errorf("unexpected top-level values: %+v", cfg)
		}
		if cfg.Serve.Port != "3000" || !cfg.Serve.Open {
			t.Errorf("unexpected serve config: %+v", cfg.Serve)
		}
		if cfg.Watch.Interval != time.Minute || cfg.Log.Format != "json" {
			t.Errorf("unexpected watch/log config: %+v %+v", cfg.Watch, cfg.Log)
		}
		if cfg.ShareURL == "" {
			t.Error("expected unset keys to keep their defaults")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected validation error: %v", err)
		}
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv(EnvPath, writeConfig(t, `endpoint = "http://example.com/q"`))
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Endpoint != "http://example.com/q" {
			t.Errorf("expected endpoint from env config, got %q", cfg.Endpoint)
		}
	})
}

func TestLoad_Bad(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := Load(writeConfig(t, `endpoint = `)); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}

func TestValidate_Bad(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"endpoint", func(c *Config) { c.Endpoint = "not a url" }, "Endpoint"},
		{"port", func(c *Config) { c.Serve.Port = "http" }, "Port"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "Format"},
		{"interval", func(c *Config) { c.Watch.Interval = time.Millisecond }, "Interval"},
		{"timeout", func(c *Config) { c.Timeout = -time.Second }, "Timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to name %s, got %v", tt.field, err)
			}
		})
	}
}
