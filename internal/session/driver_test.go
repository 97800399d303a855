package session_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/fakeyudi/pastediff/internal/capture"
	"github.com/fakeyudi/pastediff/internal/compare"
	"github.com/fakeyudi/pastediff/internal/session"
)

// scriptedCapture returns results in order, recording the prompts it saw.
type scriptedCapture struct {
	results []string
	errs    []error
	prompts []string
}

func (s *scriptedCapture) capture(ctx context.Context, prompt string) (string, error) {
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	return s.results[i], nil
}

// recordingComparer reads both files while they still exist.
type recordingComparer struct {
	calls  int
	first  string
	second string
	paths  []string
	err    error
}

func (r *recordingComparer) Compare(ctx context.Context, first, second string) error {
	r.calls++
	r.paths = []string{first, second}
	a, err := os.ReadFile(first)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(second)
	if err != nil {
		return err
	}
	r.first, r.second = string(a), string(b)
	return r.err
}

func TestDriverComparesBothSides(t *testing.T) {
	sc := &scriptedCapture{results: []string{"foo\n", "bar\n"}}
	cmp := &recordingComparer{}
	var out bytes.Buffer

	d := &session.Driver{
		Capture:    sc.capture,
		Comparer:   cmp,
		ScratchDir: t.TempDir(),
		Out:        &out,
	}
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if cmp.calls != 1 {
		t.Fatalf("Compare called %d times, want 1", cmp.calls)
	}
	if cmp.first != "foo\n" || cmp.second != "bar\n" {
		t.Errorf("compared %q and %q, want %q and %q", cmp.first, cmp.second, "foo\n", "bar\n")
	}
	if cmp.paths[0] == cmp.paths[1] {
		t.Errorf("both sides stored at %s", cmp.paths[0])
	}
	wantPrompts := []string{session.FirstPrompt, session.SecondPrompt}
	if strings.Join(sc.prompts, "|") != strings.Join(wantPrompts, "|") {
		t.Errorf("prompts = %v, want %v", sc.prompts, wantPrompts)
	}
	if !strings.Contains(out.String(), "═══ Diff ═══") {
		t.Errorf("divider missing from output: %q", out.String())
	}
}

func TestDriverRemovesScratchFiles(t *testing.T) {
	sc := &scriptedCapture{results: []string{"a", "b"}}
	cmp := &recordingComparer{err: &compare.ExitError{Tool: "delta", Code: 1}}

	d := &session.Driver{Capture: sc.capture, Comparer: cmp, ScratchDir: t.TempDir(), Out: &bytes.Buffer{}}
	d.Run(context.Background())

	for _, p := range cmp.paths {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("scratch file %s left behind: %v", p, err)
		}
	}
}

func TestDriverPropagatesComparerError(t *testing.T) {
	want := &compare.ExitError{Tool: "delta", Code: 7}
	sc := &scriptedCapture{results: []string{"a", "b"}}
	cmp := &recordingComparer{err: want}

	d := &session.Driver{Capture: sc.capture, Comparer: cmp, ScratchDir: t.TempDir(), Out: &bytes.Buffer{}}
	err := d.Run(context.Background())

	var exitErr *compare.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 7 {
		t.Fatalf("err = %v, want exit status 7 passed through", err)
	}
}

// Aborting either side never reaches the comparison tool.
func TestDriverAbortSkipsCompare(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		abortAt := rapid.IntRange(0, 1).Draw(rt, "abortAt")
		errs := make([]error, 2)
		errs[abortAt] = capture.ErrAborted

		sc := &scriptedCapture{results: []string{"a", "b"}, errs: errs}
		cmp := &recordingComparer{}
		d := &session.Driver{Capture: sc.capture, Comparer: cmp, ScratchDir: t.TempDir(), Out: &bytes.Buffer{}}

		err := d.Run(context.Background())
		if !errors.Is(err, capture.ErrAborted) {
			rt.Fatalf("err = %v, want ErrAborted", err)
		}
		if cmp.calls != 0 {
			rt.Fatalf("Compare called %d times after abort", cmp.calls)
		}
		if len(sc.prompts) != abortAt+1 {
			rt.Fatalf("captures run = %d, want %d", len(sc.prompts), abortAt+1)
		}
	})
}

func TestDriverCaptureFailure(t *testing.T) {
	boom := errors.New("read failed")
	sc := &scriptedCapture{errs: []error{boom}}
	cmp := &recordingComparer{}

	d := &session.Driver{Capture: sc.capture, Comparer: cmp, ScratchDir: t.TempDir(), Out: &bytes.Buffer{}}
	if err := d.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if cmp.calls != 0 {
		t.Fatal("Compare called after a capture failure")
	}
}
