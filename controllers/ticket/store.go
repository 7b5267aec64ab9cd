package ticketControllers

import (
	"sync"

	"github.com/haleemzahid/pos-ticket-api/modifiers"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// TerminalState is one terminal's live session plus its position in
// the modifier flow. The flow state is UI-adjacent and is not part of
// the serialized session.
type TerminalState struct {
	Session ticket.Session
	Flow    modifiers.State
}

// Store holds the in-memory sessions keyed by terminal id. The core
// assumes a single logical writer per session; the mutex serializes
// the HTTP handlers into that shape. It is an explicit object passed
// by reference, never a package global.
type Store struct {
	mu        sync.Mutex
	terminals map[string]*TerminalState
}

func NewStore() *Store {
	return &Store{terminals: make(map[string]*TerminalState)}
}

// With runs fn with exclusive access to the terminal's state, creating
// an empty session on first use.
func (s *Store) With(terminal string, fn func(*TerminalState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.terminals[terminal]
	if !ok {
		ts = &TerminalState{Session: ticket.NewSession()}
		s.terminals[terminal] = ts
	}
	fn(ts)
}
