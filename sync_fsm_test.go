package fsm_test

import (
	"errors"
	"sync"
	"testing"

	. "github.com/enetx/undofsm"
)

func toggle() *FSM {
	return MustNew(*NewConfig("off").
		Transition("off", "toggle", "on").
		Transition("on", "toggle", "off"))
}

func TestSyncFSM_ConcurrentTrigger(t *testing.T) {
	const workers, rounds = 8, 100

	sf := toggle().Sync()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				if err := sf.Trigger("toggle"); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assertEqual(t, sf.History().Len(), workers*rounds)
	assertEqual(t, sf.Current(), State("off"))
}

func TestSyncFSM_ConcurrentHistory(t *testing.T) {
	sf := toggle().Sync()

	var wg sync.WaitGroup
	for i := range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				switch i % 3 {
				case 0:
					_ = sf.Trigger("toggle")
				case 1:
					sf.Undo()
				default:
					sf.Redo()
				}
				_ = sf.States("toggle")
				_ = sf.Current()
			}
		}()
	}
	wg.Wait()

	// Walk the whole history back: every recorded step must be reversible.
	for sf.CanUndo() {
		assertTrue(t, sf.Undo())
	}
	assertFalse(t, sf.Undo())

	sf.ClearHistory()
	assertFalse(t, sf.CanRedo())
}

func TestSyncFSM_Delegates(t *testing.T) {
	var sm StateMachine = toggle().Sync()

	assertEqual(t, sm.Initial(), State("off"))
	assertTrue(t, sm.Can("toggle"))
	assertEqual(t, sm.Events().Len(), 1)

	assertNoError(t, sm.Trigger("toggle"))
	assertNoError(t, sm.ChangeState("off"))
	assertStates(t, sm.History(), "off", "on")

	var invalid *ErrInvalidState
	assertTrue(t, errors.As(sm.ChangeState("broken"), &invalid))

	assertTrue(t, sm.Undo())
	assertStates(t, sm.Future(), "off")
	assertTrue(t, sm.Redo())

	sm.Reset()
	assertEqual(t, sm.Current(), State("off"))
	assertStates(t, sm.States(), "off", "on")
}
