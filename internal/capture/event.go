package capture

import (
	"fmt"
	"strings"
)

// Event is one input event delivered by the terminal.
// It is one of Paste, KeyPress or Other.
type Event interface {
	isEvent()
}

// Paste carries the text of a single bracketed paste.
type Paste struct {
	Text string
}

// KeyPress is an individual key press outside of a paste.
type KeyPress struct {
	Key Key
}

// Other is any event the capture loop does not act on (resize, focus, mouse).
type Other struct{}

func (Paste) isEvent()    {}
func (KeyPress) isEvent() {}
func (Other) isEvent()    {}

// Key identifies the keys the capture loop reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyCtrlC
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyCtrlC:
		return "ctrl+c"
	default:
		return "other"
	}
}

// Stats summarises a single paste.
type Stats struct {
	Lines int
	Words int
	Chars int // byte length
}

// Measure computes the statistics for one paste. Lines are counted the way
// line splitting counts them: a trailing newline does not start a new line
// and the empty string has no lines.
func Measure(text string) Stats {
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n")
		if !strings.HasSuffix(text, "\n") {
			lines++
		}
	}
	return Stats{
		Lines: lines,
		Words: len(strings.Fields(text)),
		Chars: len(text),
	}
}

// String renders the feedback line shown after a paste.
func (s Stats) String() string {
	return fmt.Sprintf("[%d lines, %d words, %d chars, pasted from clipboard]", s.Lines, s.Words, s.Chars)
}
