package vending

// Event is what the caller asks the machine to do.
type Event struct {
	Kind EventKind
	Coin Coin // only for EventInsertCoin
}

type EventKind int

const (
	EventInsertCoin EventKind = iota
	EventRefund
	EventVend
)

func (k EventKind) String() string {
	switch k {
	case EventInsertCoin:
		return "InsertCoin"
	case EventRefund:
		return "Refund"
	case EventVend:
		return "Vend"
	default:
		return "Unknown"
	}
}

func InsertCoin(coin Coin) Event { return Event{Kind: EventInsertCoin, Coin: coin} }
func Refund() Event              { return Event{Kind: EventRefund} }
func Vend() Event                { return Event{Kind: EventVend} }

// Record is the data a transition reads and returns.
// It is never mutated in place, each transition produces a new one.
type Record struct {
	Balance  int
	Returned int // Returned is the amount handed back by the last Refund or Vend
}
