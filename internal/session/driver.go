// Package session runs one pastediff session: two captures followed by a
// comparison of the captured blocks.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fakeyudi/pastediff/internal/capture"
	"github.com/fakeyudi/pastediff/internal/scratch"
)

// Prompts shown for the two sides.
const (
	FirstPrompt  = "Paste first content"
	SecondPrompt = "Paste second content"
)

// CaptureFunc collects one block of pasted text under the given prompt.
type CaptureFunc func(ctx context.Context, prompt string) (string, error)

// Comparer displays the difference between two files.
type Comparer interface {
	Compare(ctx context.Context, first, second string) error
}

// Driver wires capture, scratch storage and comparison together.
type Driver struct {
	Capture    CaptureFunc
	Comparer   Comparer
	ScratchDir string    // "" = OS temp dir
	Out        io.Writer // divider output; os.Stdout if nil
	Log        *slog.Logger
}

// Run captures both sides and hands them to the Comparer. The Comparer's
// error is returned unchanged so its exit status can become the program's.
// capture.ErrAborted from either side is returned before anything is compared.
func (d *Driver) Run(ctx context.Context) error {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	log := d.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	first, err := d.Capture(ctx, FirstPrompt)
	if err != nil {
		return err
	}
	second, err := d.Capture(ctx, SecondPrompt)
	if err != nil {
		return err
	}

	a, err := scratch.Write(d.ScratchDir, "first", first)
	if err != nil {
		return err
	}
	defer a.Remove()

	b, err := scratch.Write(d.ScratchDir, "second", second)
	if err != nil {
		return err
	}
	defer b.Remove()

	log.Info("comparing", "first", a.Path(), "second", b.Path(),
		"first_bytes", len(first), "second_bytes", len(second))

	if _, err := fmt.Fprintf(out, "\n%s\n", capture.Banner("Diff")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	err = d.Comparer.Compare(ctx, a.Path(), b.Path())
	if err != nil {
		log.Info("comparison finished", "error", err.Error())
	}
	return err
}
