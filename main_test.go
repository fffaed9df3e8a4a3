package main

import (
	"os"
	"testing"
)

func TestMain_Bad(t *testing.T) {
	oldArgs, oldExit, oldStderr := os.Args, osExit, os.Stderr
	defer func() { os.Args, osExit, os.Stderr = oldArgs, oldExit, oldStderr }()

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()
	os.Stderr = devNull

	code := -1
	osExit = func(c int) { code = c }
	os.Args = []string{"quotebox", "no-such-command"}

	Main()
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}
