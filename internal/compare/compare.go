// Package compare hands two files to an external diff viewer.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultTool is the viewer used when none is configured.
const DefaultTool = "delta"

// Runner executes name with args, wiring the given streams to the child.
// This abstraction allows mocking in tests.
type Runner func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error

// Tool describes the external comparison program.
type Tool struct {
	Name   string   // executable; DefaultTool if empty
	Args   []string // placed before the two file paths
	Stdout io.Writer
	Stderr io.Writer
	Runner Runner // if nil, runs a real subprocess
}

// ExitError reports that the comparison tool ran and exited non-zero.
// Its Code is meant to become the process's own exit status.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
}

// defaultRunner runs the tool as a subprocess attached to the user's terminal.
func defaultRunner(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Compare runs the tool on first and second. A non-zero exit is returned as
// *ExitError; a tool that cannot be started yields a wrapped launch error.
func (t *Tool) Compare(ctx context.Context, first, second string) error {
	runner := t.Runner
	if runner == nil {
		runner = defaultRunner
	}
	name := t.Name
	if name == "" {
		name = DefaultTool
	}
	stdout := t.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := t.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	args := make([]string, 0, len(t.Args)+2)
	args = append(args, t.Args...)
	args = append(args, first, second)

	err := runner(ctx, stdout, stderr, name, args...)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no status to pass on.
			code = 1
		}
		return &ExitError{Tool: name, Code: code}
	}
	return fmt.Errorf("running %s: %w", name, err)
}
