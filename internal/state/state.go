// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/event"
)

// State is one stage of the client.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs the current state. Changes requested while a state is
// updating take effect once its Update returns.
type StateMachine struct {
	current State
	pending State
	build   func(event.Stage) State
}

// NewStateMachine creates a machine without a state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Bind makes the machine switch to build(stage) whenever a
// StageChangeRequested event is dispatched on d.
func (sm *StateMachine) Bind(d *event.Dispatcher, build func(event.Stage) State) {
	sm.build = build
	d.Subscribe(event.StageChangeRequested, sm)
}

// OnEvent implements event.Listener.
func (sm *StateMachine) OnEvent(e event.Event) {
	stage, ok := e.Data.(event.Stage)
	if !ok || sm.build == nil {
		return
	}
	if next := sm.build(stage); next != nil {
		sm.Request(next)
	}
}

// Request queues newState to replace the current one after the next Update.
func (sm *StateMachine) Request(newState State) {
	sm.pending = newState
}

// SetState switches to newState immediately.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the running state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update updates the current state and then applies a pending change.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.SetState(next)
	}
}

// Draw draws the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
