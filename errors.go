package fsm

import "fmt"

// ErrInvalidState is returned when a state change targets a state that was not
// declared in the FSM's configuration. The FSM is left untouched.
type ErrInvalidState struct {
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("fsm: invalid state %q; state is not declared", e.State)
}

// ErrInvalidEvent is returned when Trigger is called with an event that has no
// transition from the current state.
type ErrInvalidEvent struct {
	From  State
	Event Event
}

func (e *ErrInvalidEvent) Error() string {
	return fmt.Sprintf("fsm: no transition for event %q from state %q", e.Event, e.From)
}

// ErrInvalidConfig is returned by New and the config loaders when a configuration
// cannot be used to build an FSM.
type ErrInvalidConfig struct {
	// Reason describes what is wrong with the configuration.
	Reason string
	// Err is the underlying cause, if any (e.g. an *ErrInvalidState for an undeclared initial state).
	Err error
}

func (e *ErrInvalidConfig) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fsm: invalid config: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("fsm: invalid config: %s", e.Reason)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrInvalidConfig) Unwrap() error { return e.Err }
