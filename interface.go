package fsm

import "github.com/enetx/g"

type StateMachine interface {
	Current() State
	Initial() State
	ChangeState(State) error
	Trigger(Event) error
	Can(Event) bool
	Events() g.Slice[Event]
	Reset()
	States(...Event) g.Slice[State]
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	History() g.Slice[State]
	Future() g.Slice[State]
	ClearHistory()
}
