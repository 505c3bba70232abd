package vending

import (
	"context"
	"fmt"

	"github.com/Azure/go-vending/fsm"
)

// State is the operational state of a Machine.
type State int

const (
	Idle          State = iota // balance is 0
	EnteringCoins              // 0 < balance < Price
	Paid                       // balance >= Price
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case EnteringCoins:
		return "EnteringCoins"
	case Paid:
		return "Paid"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// stateVariant implements one State.
// All variants refund and vend alike, they only differ in where an accepted coin leads.
type stateVariant struct {
	id     State
	accept func(balance int) State
}

func (v *stateVariant) ID() State { return v.id }

func (v *stateVariant) Do(_ context.Context, event Event, r Record) (*fsm.Transition[State, Event, Record], error) {
	switch event.Kind {
	case EventInsertCoin:
		if !event.Coin.Valid() {
			return nil, ErrInvalidCoin{Coin: event.Coin}
		}
		balance := r.Balance + int(event.Coin)
		return fsm.TransitionTo[State, Event](v.accept(balance), Record{Balance: balance}), nil
	case EventRefund:
		return fsm.TransitionTo[State, Event](Idle, Record{Returned: r.Balance}), nil
	case EventVend:
		if r.Balance < Price {
			return nil, ErrInsufficientBalance{Balance: r.Balance, Price: Price}
		}
		// dispense, then hand the remainder back through a regular refund
		return fsm.TransitionTo[State, Event](v.id, Record{Balance: r.Balance - Price}).
			AndThen(Refund()), nil
	default:
		return nil, fmt.Errorf("%s: unknown event %s", v.id, event.Kind)
	}
}

var states = fsm.MustNewStateMachine[State, Event, Record](
	&stateVariant{
		id:     Idle,
		accept: func(int) State { return EnteringCoins },
	},
	&stateVariant{
		id: EnteringCoins,
		accept: func(balance int) State {
			if balance >= Price {
				return Paid
			}
			return EnteringCoins
		},
	},
	&stateVariant{
		id:     Paid,
		accept: func(int) State { return Paid },
	},
)

// States returns every State, Idle first.
func States() []State { return states.States() }

// Apply is the transition function of the machine: it computes the outcome of event
// on state and r without touching any Machine.
//
// On error the returned State and Record equal the ones passed in.
func Apply(ctx context.Context, state State, event Event, r Record) (State, Record, error) {
	return states.Fire(ctx, state, event, r)
}
