package cmd

import (
	"net/http"
	"strings"
	"testing"
)

func TestWatchCmd_Good(t *testing.T) {
	server, hits := quotesServer(t, http.StatusOK, quotesJSON)

	output, err := executeCommand(NewRootCmd(), "watch", "--endpoint", server.URL, "--interval", "10ms", "--count", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits.Load() < 2 {
		t.Errorf("expected at least two requests, got %d", hits.Load())
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected two quote lines, got:\n%s", output)
	}
	if !strings.Contains(lines[0], "— Thomas Edison") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestWatchCmd_Bad(t *testing.T) {
	server, hits := quotesServer(t, http.StatusOK, quotesJSON)

	for _, interval := range []string{"0s", "-1s"} {
		t.Run(interval, func(t *testing.T) {
			_, err := executeCommand(NewRootCmd(), "watch", "--endpoint", server.URL, "--interval", interval, "--count", "1")
			if err == nil || !strings.Contains(err.Error(), "interval must be positive") {
				t.Fatalf("expected an interval error, got %v", err)
			}
		})
	}
	if hits.Load() != 0 {
		t.Errorf("expected no requests, got %d", hits.Load())
	}
}

func TestWatchCmd_Ugly(t *testing.T) {
	// Ticks that land after --count is reached must not fetch or warn.
	server, hits := quotesServer(t, http.StatusOK, quotesJSON)

	output, err := executeCommand(NewRootCmd(), "watch", "--endpoint", server.URL, "--interval", "1ms", "--count", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected exactly one request, got %d", hits.Load())
	}
	if strings.Contains(output, "could not get a new quote") {
		t.Errorf("unexpected warning after the last quote:\n%s", output)
	}
}
