// Package fsm provides a finite state machine (FSM) engine with undo/redo
// history. A machine is built once from a static Config, tracks its current
// state, applies transitions by event name and records every state change so
// it can be stepped back and forth. It is built with types and utilities from
// the github.com/enetx/g library.
//
// An FSM is not safe for concurrent use; wrap it with Sync when it is shared
// between goroutines.
package fsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Interface compliance check.
var _ StateMachine = (*FSM)(nil)

// New creates a new FSM from cfg, positioned at cfg.Initial with empty history.
// The transition table is copied, so later changes to cfg do not affect the FSM.
//
// New returns an *ErrInvalidConfig if no states are declared, a state is declared
// twice, or the initial state or any transition target is not declared.
func New(cfg Config) (*FSM, error) {
	if cfg.States.Empty() {
		return nil, &ErrInvalidConfig{Reason: "no states declared"}
	}

	table := g.NewMap[State, g.Map[Event, State]]()

	var order g.Slice[State]

	for def := range cfg.States.Iter() {
		if table.Contains(def.Name) {
			return nil, &ErrInvalidConfig{Reason: string(g.Format("state \"{}\" declared more than once", def.Name))}
		}

		transitions := g.NewMap[Event, State]()
		for event, to := range def.Transitions.Iter() {
			transitions[event] = to
		}

		table[def.Name] = transitions
		order.Push(def.Name)
	}

	if !table.Contains(cfg.Initial) {
		return nil, &ErrInvalidConfig{Reason: "initial state", Err: &ErrInvalidState{State: cfg.Initial}}
	}

	for from := range order.Iter() {
		events := table[from].Keys()
		events.SortBy(cmp.Cmp)

		for event := range events.Iter() {
			if to := table[from][event]; !table.Contains(to) {
				return nil, &ErrInvalidConfig{
					Reason: string(g.Format("transition \"{}\" from \"{}\"", event, from)),
					Err:    &ErrInvalidState{State: to},
				}
			}
		}
	}

	return &FSM{
		initial: cfg.Initial,
		current: cfg.Initial,
		order:   order,
		table:   table,
	}, nil
}

// MustNew is like New but panics if the configuration is invalid.
// It simplifies initialization of machines built from static configurations.
func MustNew(cfg Config) *FSM {
	f, err := New(cfg)
	if err != nil {
		panic(err)
	}

	return f
}

// WithLogger attaches a logger that receives a line for every state change,
// undo, redo, reset and history clear. A nil logger disables logging.
func (f *FSM) WithLogger(l Logger) *FSM {
	f.logger = l
	return f
}

// Sync wraps the FSM in a SyncFSM for use across goroutines.
// The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Clone creates a new FSM instance with the same configuration but a fresh state:
// positioned at the initial state with empty history.
func (f *FSM) Clone() *FSM {
	return &FSM{
		initial: f.initial,
		current: f.initial,
		order:   f.order,
		table:   f.table,
		logger:  f.logger,
	}
}

// Initial returns the FSM's initial state.
func (f *FSM) Initial() State { return f.initial }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.current }

// ChangeState moves the FSM to state s regardless of the transition table.
// The previous state is pushed onto the undo history and the redo history is discarded.
// It returns an *ErrInvalidState if s is not declared; the FSM is left untouched.
func (f *FSM) ChangeState(s State) error {
	return f.changeState(s, "")
}

// Trigger applies the transition for event from the current state.
// It returns an *ErrInvalidEvent if the current state has no such transition,
// or an *ErrInvalidState if the transition leads to an undeclared state.
// History is recorded exactly as for ChangeState.
func (f *FSM) Trigger(event Event) error {
	to := f.table[f.current].Get(event)
	if to.IsNone() {
		return &ErrInvalidEvent{From: f.current, Event: event}
	}

	return f.changeState(to.Some(), event)
}

func (f *FSM) changeState(to State, event Event) error {
	if !f.table.Contains(to) {
		return &ErrInvalidState{State: to}
	}

	from := f.current

	f.undo.Push(from)
	f.current = to
	f.redo = nil

	if event != "" {
		f.logf("[FSM] %s --(%s)--> %s", from, event, to)
	} else {
		f.logf("[FSM] %s --> %s", from, to)
	}

	return nil
}

// Can reports whether Trigger(event) would succeed from the current state.
func (f *FSM) Can(event Event) bool {
	return f.table[f.current].Contains(event)
}

// Events returns the events that have a transition from the current state, sorted.
func (f *FSM) Events() g.Slice[Event] {
	events := f.table[f.current].Keys()
	events.SortBy(cmp.Cmp)

	return events
}

// Reset jumps back to the initial state. Unlike ChangeState it is not recorded
// and does not touch the undo/redo history; a following Undo moves to the
// last recorded state.
func (f *FSM) Reset() {
	f.logf("[RESET] %s --> %s", f.current, f.initial)
	f.current = f.initial
}

// States returns the declared states in declaration order.
// If an event is given, only the states that have a transition for it are returned.
func (f *FSM) States(event ...Event) g.Slice[State] {
	if len(event) == 0 {
		return f.order.Clone()
	}

	return f.order.Iter().
		Filter(func(s State) bool { return f.table[s].Contains(event[0]) }).
		Collect()
}

// Undo steps back to the most recently recorded state. The current state is
// kept on the redo history. It returns false if there is nothing to undo.
func (f *FSM) Undo() bool {
	if f.undo.Empty() {
		return false
	}

	from := f.current

	f.redo.Push(from)
	f.current = f.undo.Pop().Some()

	f.logf("[UNDO] %s --> %s", from, f.current)

	return true
}

// Redo re-applies the most recently undone state change. The current state is
// kept on the undo history. It returns false if there is nothing to redo.
func (f *FSM) Redo() bool {
	if f.redo.Empty() {
		return false
	}

	from := f.current

	f.undo.Push(from)
	f.current = f.redo.Pop().Some()

	f.logf("[REDO] %s --> %s", from, f.current)

	return true
}

// CanUndo reports whether Undo would change the state.
func (f *FSM) CanUndo() bool { return f.undo.NotEmpty() }

// CanRedo reports whether Redo would change the state.
func (f *FSM) CanRedo() bool { return f.redo.NotEmpty() }

// History returns a copy of the undo history, oldest state first.
// The last element is the state Undo would return to.
func (f *FSM) History() g.Slice[State] { return f.undo.Clone() }

// Future returns a copy of the redo history. The last element is the state
// Redo would move to.
func (f *FSM) Future() g.Slice[State] { return f.redo.Clone() }

// ClearHistory empties both the undo and the redo history. The current state is kept.
func (f *FSM) ClearHistory() {
	f.undo = nil
	f.redo = nil

	f.logf("[CLEAR] history cleared at %s", f.current)
}

func (f *FSM) logf(format string, args ...any) {
	if f.logger != nil {
		f.logger.Printf(format, args...)
	}
}
