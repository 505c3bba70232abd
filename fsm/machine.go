package fsm

import (
	"context"
	"fmt"
)

// MaxHops bounds how many chained transitions a single Fire may follow.
const MaxHops = 8

// StateMachine is a Finite-State-Machine (FSM) built from a fixed set of states.
//
// It holds no current state itself: Fire takes the state and data in,
// and hands the outcome back, so the caller stays the only mutator.
//
// Please use one instance to represent one FiniteState.
type StateMachine[S comparable, E, D any] struct {
	Maps  map[S]FiniteState[S, E, D]
	order []S
}

func NewStateMachine[S comparable, E, D any](states ...FiniteState[S, E, D]) (*StateMachine[S, E, D], error) {
	sm := &StateMachine[S, E, D]{
		Maps: make(map[S]FiniteState[S, E, D]),
	}
	for i, state := range states {
		if state == nil {
			return nil, fmt.Errorf("state #%d should not be nil", i)
		}
		id := state.ID()
		previous, existed := sm.Maps[id]
		if existed && previous != state {
			return nil, fmt.Errorf("each state should have unique instance: %v", id)
		}
		if !existed {
			sm.order = append(sm.order, id)
		}
		sm.Maps[id] = state
	}
	return sm, nil
}

func MustNewStateMachine[S comparable, E, D any](states ...FiniteState[S, E, D]) *StateMachine[S, E, D] {
	sm, err := NewStateMachine(states...)
	if err != nil {
		panic(err)
	}
	return sm
}

// States returns the IDs of all states, in the order they were registered.
func (sm *StateMachine[S, E, D]) States() []S {
	return append([]S(nil), sm.order...)
}

// Fire feeds event to the state from, then follows the chained events (if any)
// until a transition without Then is reached.
//
// Fire is atomic: on error it returns from and data as they were passed in.
func (sm *StateMachine[S, E, D]) Fire(ctx context.Context, from S, event E, data D) (S, D, error) {
	state, exist := sm.Maps[from]
	if !exist {
		return from, data, fmt.Errorf("unknown state %v", from)
	}
	cur, curData := state, data
	for hop := 0; ; hop++ {
		if hop >= MaxHops {
			return from, data, fmt.Errorf("state %v exceeded %d chained transitions", from, MaxHops)
		}
		select {
		case <-ctx.Done():
			return from, data, ctx.Err()
		default:
		}
		transition, err := cur.Do(ctx, event, curData)
		if err != nil {
			return from, data, err
		}
		if transition == nil {
			return from, data, fmt.Errorf("state %v returned nil transition", cur.ID())
		}
		next, exist := sm.Maps[transition.Next]
		if !exist {
			return from, data, fmt.Errorf("state %v returned unknown next state %v", cur.ID(), transition.Next)
		}
		cur, curData = next, transition.Data
		if transition.Then == nil {
			return cur.ID(), curData, nil
		}
		event = *transition.Then
	}
}
