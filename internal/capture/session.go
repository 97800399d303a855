package capture

import "strings"

// State is the phase of a capture session.
type State int

const (
	// AwaitingInput accepts pastes and waits for confirmation.
	AwaitingInput State = iota
	// Terminated means Enter confirmed at least one paste.
	Terminated
	// Aborted means the user pressed Ctrl-C.
	Aborted
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Terminated:
		return "terminated"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session accumulates the pastes of one capture. It holds no terminal state;
// the program in run.go feeds it events and acts on the resulting state.
type Session struct {
	fragments []string
	state     State
}

// NewSession returns a session in AwaitingInput.
func NewSession() *Session {
	return &Session{}
}

// State reports the current phase.
func (s *Session) State() State {
	return s.state
}

// Fragments returns the number of pastes received so far.
func (s *Session) Fragments() int {
	return len(s.fragments)
}

// Handle applies ev to the session. When ev is an accepted paste it returns
// the paste's statistics and true. Events received after the session has
// reached a final state are ignored.
func (s *Session) Handle(ev Event) (Stats, bool) {
	if s.state != AwaitingInput {
		return Stats{}, false
	}

	switch ev := ev.(type) {
	case Paste:
		// An empty paste still counts as a fragment.
		s.fragments = append(s.fragments, ev.Text)
		return Measure(ev.Text), true
	case KeyPress:
		switch ev.Key {
		case KeyEnter:
			if len(s.fragments) > 0 {
				s.state = Terminated
			}
		case KeyCtrlC:
			s.state = Aborted
		}
	}
	return Stats{}, false
}

// Text returns every fragment joined in arrival order.
func (s *Session) Text() string {
	return strings.Join(s.fragments, "")
}
