package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// executeCommand is a helper function to execute a cobra command and return the output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	_, output, err := executeCommandC(root, args...)
	return output, err
}

// executeCommandC is a helper function to execute a cobra command and return the output.
func executeCommandC(root *cobra.Command, args ...string) (*cobra.Command, string, error) {
	return executeCommandContext(context.Background(), root, args...)
}

// executeCommandContext runs a cobra command under ctx and returns the output.
func executeCommandContext(ctx context.Context, root *cobra.Command, args ...string) (*cobra.Command, string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteContextC(context.WithValue(ctx, loggerKey, discardLogger()))

	return c, buf.String(), err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
