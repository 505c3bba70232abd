package fsm

// Transition decides the next state to hop, and the data the machine carries there.
type Transition[S comparable, E, D any] struct {
	Next S
	Data D
	Then *E // Then is fed to Next within the same Fire, if set
}

// TransitionTo returns a transition to the next state with the new data.
func TransitionTo[S comparable, E, D any](next S, data D) *Transition[S, E, D] {
	return &Transition[S, E, D]{Next: next, Data: data}
}

// AndThen chains a follow-up event, which the next state handles before Fire returns.
//
//	fsm.TransitionTo[State, Event](Idle, data).AndThen(Refund)
func (t *Transition[S, E, D]) AndThen(event E) *Transition[S, E, D] {
	t.Then = &event
	return t
}
