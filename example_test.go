package fsm_test

import (
	"errors"
	"fmt"

	fsm "github.com/enetx/undofsm"
)

func Example() {
	cfg, err := fsm.ParseConfig([]byte(`
initial: idle
states:
  idle:
    transitions: {run: running}
  running:
    transitions: {stop: idle}
`))
	if err != nil {
		panic(err)
	}

	m := fsm.MustNew(cfg)

	_ = m.Trigger("run")
	_ = m.Trigger("stop")
	fmt.Println(m.Current())

	m.Undo()
	fmt.Println(m.Current())

	fmt.Println([]fsm.State(m.States("run")))

	// Output:
	// idle
	// running
	// [idle]
}

func ExampleFSM_Trigger() {
	m := fsm.MustNew(*fsm.NewConfig("draft").
		Transition("draft", "submit", "review").
		Transition("review", "approve", "approved"))

	err := m.Trigger("approve")

	var invalid *fsm.ErrInvalidEvent
	if errors.As(err, &invalid) {
		fmt.Printf("cannot %s from %s\n", invalid.Event, invalid.From)
	}

	// Output:
	// cannot approve from draft
}

func ExampleFSM_Undo() {
	m := fsm.MustNew(*fsm.NewConfig("a").
		Transition("a", "next", "b").
		Transition("b", "next", "c"))

	_ = m.Trigger("next")
	_ = m.Trigger("next")

	fmt.Println(m.Undo(), m.Current())
	fmt.Println(m.Undo(), m.Current())
	fmt.Println(m.Undo(), m.Current())
	fmt.Println(m.Redo(), m.Current())

	// Output:
	// true b
	// true a
	// false a
	// true b
}
