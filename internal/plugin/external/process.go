package external

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// ProcessRunner runs an external process to completion.
type ProcessRunner interface {
	// Run executes path with args, feeding stdin, and returns what the
	// process wrote to stdout and stderr.
	Run(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// ExecRunner implements ProcessRunner with os/exec.
type ExecRunner struct{}

// Run executes a real external process.
func (ExecRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		err = ctxErr
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
