package fsm

import (
	"context"
)

// FiniteState is a state in Finite-State-Machine.
//
// Do must not mutate anything: it decides, from the event and the current data,
// which state comes next and what the data becomes.
type FiniteState[S comparable, E, D any] interface {
	// ID identifies the state inside a StateMachine
	ID() S
	// Do returns the next transition
	Do(ctx context.Context, event E, data D) (*Transition[S, E, D], error)
}

// StateFunc adapts a function to a FiniteState.
type StateFunc[S comparable, E, D any] struct {
	Name S
	Func func(context.Context, E, D) (*Transition[S, E, D], error)
}

func (s *StateFunc[S, E, D]) ID() S { return s.Name }
func (s *StateFunc[S, E, D]) Do(ctx context.Context, event E, data D) (*Transition[S, E, D], error) {
	return s.Func(ctx, event, data)
}
