package scanner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

const (
	exitCodeTimeout  = 124
	exitCodeNotFound = 127
)

type execResult struct {
	Stdout   []byte
	Stderr   string
	Duration time.Duration
	ExitCode int
}

// runTool executes an external scanner binary and captures its output. Exit
// codes follow the shell convention: 124 for timeout, 127 for a missing
// binary. The error is returned alongside the result so callers can decide
// whether the run is degraded or fatal.
func runTool(ctx context.Context, name string, args []string, dir string) (*execResult, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := &execResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			res.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			res.ExitCode = exitCodeNotFound
		default:
			res.ExitCode = 1
		}
		if ctx.Err() == context.DeadlineExceeded {
			res.ExitCode = exitCodeTimeout
		}
	}

	return res, err
}
