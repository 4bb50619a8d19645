package fsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*SyncFSM)(nil)

// Current is the thread-safe version of FSM.Current.
// It returns the FSM's current state.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Initial is the thread-safe version of FSM.Initial.
func (sf *SyncFSM) Initial() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Initial()
}

// ChangeState is the thread-safe version of FSM.ChangeState.
// It atomically moves the FSM to the given state and records it in the history.
func (sf *SyncFSM) ChangeState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.ChangeState(s)
}

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically executes a state transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// Can is the thread-safe version of FSM.Can.
// The answer may be stale by the time the caller acts on it; use Trigger and
// inspect the error when the decision has to be atomic.
func (sf *SyncFSM) Can(event Event) bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Can(event)
}

// Events is the thread-safe version of FSM.Events.
func (sf *SyncFSM) Events() g.Slice[Event] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Events()
}

// Reset is the thread-safe version of FSM.Reset.
// It returns the FSM to its initial state, keeping the history.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM) States(event ...Event) g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States(event...)
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// CanUndo is the thread-safe version of FSM.CanUndo.
func (sf *SyncFSM) CanUndo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanUndo()
}

// CanRedo is the thread-safe version of FSM.CanRedo.
func (sf *SyncFSM) CanRedo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanRedo()
}

// History is the thread-safe version of FSM.History.
// It returns a copy of the undo history.
func (sf *SyncFSM) History() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// Future is the thread-safe version of FSM.Future.
// It returns a copy of the redo history.
func (sf *SyncFSM) Future() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Future()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}
