// Package capture reads pasted text from an interactive terminal.
//
// A capture puts the terminal in raw mode with bracketed paste enabled,
// accumulates every paste until Enter confirms them, and reports the size of
// each paste as it arrives. The terminal is handed back in its original mode
// on every return path, including aborts, errors and recovered panics.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels a capture with Ctrl-C.
// It is a deliberate user action, not a failure.
var ErrAborted = errors.New("capture aborted")

// ErrNotTerminal is returned when input is not an interactive terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal; paste capture needs an interactive session")

// Options configures a capture. Zero values use the process's stdin and stdout.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger *slog.Logger
}

// model adapts terminal messages to the capture Session.
type model struct {
	session  *Session
	log      *slog.Logger
	inFlight int // feedback lines not yet handed to the renderer
}

// feedbackQueuedMsg follows a paste's feedback line through the program,
// so it arrives only after that line has been queued for output.
type feedbackQueuedMsg struct{}

func feedbackQueued() tea.Msg {
	return feedbackQueuedMsg{}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(feedbackQueuedMsg); ok {
		m.inFlight--
		return m, m.quitWhenSettled()
	}

	ev := translate(msg)
	stats, pasted := m.session.Handle(ev)
	if pasted {
		m.log.Debug("paste received",
			"fragment", m.session.Fragments(),
			"lines", stats.Lines,
			"words", stats.Words,
			"chars", stats.Chars)
		m.inFlight++
		return m, tea.Sequence(tea.Println(statsStyle.Render(stats.String())), feedbackQueued)
	}
	return m, m.quitWhenSettled()
}

// quitWhenSettled quits once the session is final and every feedback line
// has reached the renderer. Quitting earlier drops lines still in flight.
func (m model) quitWhenSettled() tea.Cmd {
	switch m.session.State() {
	case Terminated, Aborted:
		if m.inFlight == 0 {
			return tea.Quit
		}
	}
	return nil
}

// View is empty: all output is printed above the program.
func (m model) View() string {
	return ""
}

// translate maps a bubbletea message onto a capture Event.
func translate(msg tea.Msg) Event {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return Other{}
	}
	if k.Paste {
		return Paste{Text: string(k.Runes)}
	}
	switch {
	case key.Matches(k, keys.Finish):
		return KeyPress{Key: KeyEnter}
	case key.Matches(k, keys.Abort):
		return KeyPress{Key: KeyCtrlC}
	}
	return KeyPress{Key: KeyOther}
}

// Run prints prompt and a usage hint, then captures pastes until the user
// confirms with Enter. It returns the pastes concatenated in arrival order.
// Ctrl-C restores the terminal, prints an abort notice and returns ErrAborted.
func Run(ctx context.Context, prompt string, opts Options) (string, error) {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if _, err := fmt.Fprintf(out, "\n%s\n%s\n", Banner(prompt), hint()); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	m := model{session: NewSession(), log: log}

	// The program owns raw mode and bracketed paste. It restores the saved
	// terminal state before Run returns, whatever the reason for returning.
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("reading terminal input: %w", err)
	}

	s := final.(model).session
	log.Debug("capture finished", "prompt", prompt, "state", s.State().String(), "fragments", s.Fragments())

	switch s.State() {
	case Terminated:
		if _, err := fmt.Fprintln(out); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return s.Text(), nil
	case Aborted:
		if _, err := fmt.Fprint(out, "\n\nAborted\n"); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return "", ErrAborted
	default:
		return "", fmt.Errorf("terminal input ended in state %s", s.State())
	}
}
