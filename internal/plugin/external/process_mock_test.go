package external

import (
	"context"
	"io"
	"time"
)

// mockRunner is a ProcessRunner for tests.
type mockRunner struct {
	// runFunc provides custom behaviour; the default returns "{}".
	runFunc func(ctx context.Context, path string, args []string, stdin []byte) (stdout, stderr []byte, err error)

	// delay simulates slow process execution.
	delay time.Duration

	// blockUntilDone blocks until the context is cancelled.
	blockUntilDone bool

	calls     int
	lastArgs  []string
	lastStdin []byte
}

func (m *mockRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	m.calls++
	m.lastArgs = args
	m.lastStdin = nil
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, err
		}
		m.lastStdin = data
	}

	if m.blockUntilDone {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	if m.runFunc != nil {
		return m.runFunc(ctx, path, args, m.lastStdin)
	}
	return []byte("{}"), nil, nil
}

// stdioRunner answers --plugin-info with info and every other call with
// response.
func stdioRunner(info, response string) *mockRunner {
	return &mockRunner{
		runFunc: func(_ context.Context, _ string, args []string, _ []byte) ([]byte, []byte, error) {
			if len(args) > 0 && args[0] == "--plugin-info" {
				return []byte(info), nil, nil
			}
			return []byte(response), nil, nil
		},
	}
}
