// Package cmdrun executes shell commands with a timeout and captures the
// outcome as plain data. Execution failures (missing binary, timeout,
// non-zero exit) are never surfaced as errors: every call returns a Result,
// and downstream checks treat failure as ordinary data.
package cmdrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout applies when a caller passes a zero or negative timeout.
const DefaultTimeout = 30 * time.Second

// Result holds the outcome of one command execution.
type Result struct {
	Cmd      string `json:"cmd"`
	OK       bool   `json:"ok"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(command string, timeout time.Duration) Result
}

// RealRunner executes commands through `sh -c`, so pipes and `|| true`
// guards in check commands work as written.
type RealRunner struct{}

// Run executes the command and waits up to timeout. The subprocess is
// hard-killed when the timeout expires.
func (r *RealRunner) Run(command string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()

	res := Result{
		Cmd:    command,
		Stdout: strings.TrimSpace(outBuf.String()),
		Stderr: strings.TrimSpace(errBuf.String()),
	}

	switch {
	case err == nil:
		res.OK = true
	case ctx.Err() == context.DeadlineExceeded:
		res.ExitCode = 1
		res.Stderr = fmt.Sprintf("timed out after %s", timeout)
	default:
		res.ExitCode = 1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
		} else if res.Stderr == "" {
			res.Stderr = err.Error()
		}
	}
	return res
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(command string, timeout time.Duration) Result
}

// Run calls the mock function.
func (m *MockRunner) Run(command string, timeout time.Duration) Result {
	return m.RunFunc(command, timeout)
}
