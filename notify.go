package vending

import "context"

// Notify will be called around each event handled by a Machine.
//
// Callbacks run while the Machine is locked, they must not call back into it.
type Notify struct {
	BeforeEvent  func(ctx context.Context, state State, event Event) context.Context
	AfterEvent   func(ctx context.Context, state State, event Event, err error)
	OnTransition func(ctx context.Context, from, to State)
}
