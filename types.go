package fsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Logger defines a minimal log interface (compatible with log.Logger, zap.SugaredLogger, etc).
	Logger interface {
		Printf(format string, args ...any)
	}

	// FSM is the main state machine struct.
	// It owns a private copy of the transition table, which is never modified
	// after construction, plus the current state and the undo/redo stacks.
	FSM struct {
		initial State
		current State
		order   g.Slice[State]
		table   g.Map[State, g.Map[Event, State]]
		undo    g.Slice[State]
		redo    g.Slice[State]
		logger  Logger
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
