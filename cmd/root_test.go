package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Snider/Quotebox/pkg/config"
)

func TestExecute_Good(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"--help"})
	root.SetOut(new(strings.Builder))
	if err := ExecuteContext(context.Background(), root, discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootCmd_Good(t *testing.T) {
	t.Run("No args", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Help flag", func(t *testing.T) {
		output, err := executeCommand(NewRootCmd(), "--help")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "Usage:") {
			t.Errorf("expected help output to contain 'Usage:', but it did not")
		}
		for _, sub := range []string{"show", "watch", "tui", "serve", "check"} {
			if !strings.Contains(output, sub) {
				t.Errorf("expected help to list %q", sub)
			}
		}
	})
}

func TestRootCmd_Bad(t *testing.T) {
	t.Run("Unknown command", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "unknown-command")
		if err == nil {
			t.Fatal("expected an error for an unknown command, but got none")
		}
	})

	t.Run("Invalid endpoint", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "show", "--endpoint", "::nope")
		if err == nil || !strings.Contains(err.Error(), "Endpoint") {
			t.Fatalf("expected an endpoint validation error, got %v", err)
		}
	})

	t.Run("Invalid log format", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "show", "--log-format", "xml")
		if err == nil {
			t.Fatal("expected a log format error")
		}
	})

	t.Run("Missing config", func(t *testing.T) {
		_, err := executeCommand(NewRootCmd(), "show", "--config", filepath.Join(t.TempDir(), "missing.toml"))
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected a missing config error, got %v", err)
		}
	})
}

func TestSetup_ConfigFile(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	path := filepath.Join(t.TempDir(), "quotebox.toml")
	if err := os.WriteFile(path, []byte("endpoint = \"http://quotes.test/api\"\n[serve]\nport = \"9999\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	c, _, err := executeCommandC(root, "check", "--config", path, "http://127.0.0.1:1/")
	if err == nil {
		t.Fatal("expected check against a closed port to fail")
	}
	cfg := configFrom(c)
	if cfg.Endpoint != "http://quotes.test/api" || cfg.Serve.Port != "9999" {
		t.Errorf("expected config from file, got %+v", cfg)
	}
}
