package vending

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/Azure/go-vending/flcore"
)

// Machine is a coin-operated vending machine.
//
// It holds the balance and the current State, and delegates every operation to the
// current State through Apply. Machine is the only one writing balance and State,
// the new values of both are applied together under one lock.
//
// The zero value is an Idle machine with balance 0, ready to use.
//
//	m := vending.New(vending.WithLogger(logger))
//	_ = m.InsertCoin(ctx, vending.Hundred)
//	_ = m.InsertCoin(ctx, vending.Hundred)
//	change, err := m.Vend(ctx)
type Machine struct {
	mu      sync.Mutex
	state   State
	balance int

	session     *Receipt // open session, nil while no coin has been accepted
	receipts    []Receipt
	maxReceipts int // 0 means no limit

	name string

	clock   clock.Clock
	logger  flcore.Logger
	notify  Notify
	metrics *Metrics
}

func New(opts ...MachineOption) *Machine {
	return new(Machine).Options(opts...)
}

// State returns the current State.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Balance returns the amount inserted and not yet vended or refunded.
func (m *Machine) Balance() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance
}

// Name identifies the Machine in metrics and logs, "default" unless set by WithName.
func (m *Machine) Name() string {
	if m.name == "" {
		return "default"
	}
	return m.name
}

// Receipts returns the sessions ended so far, oldest first.
// Without WithMaxReceipts every session is kept for the lifetime of the Machine.
func (m *Machine) Receipts() []Receipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	rv := make([]Receipt, 0, len(m.receipts))
	for _, r := range m.receipts {
		r.Coins = slices.Clone(r.Coins)
		rv = append(rv, r)
	}
	return rv
}

// InsertCoin adds coin to the balance.
// It returns ErrInvalidCoin if coin is not one of the Denominations.
func (m *Machine) InsertCoin(ctx context.Context, coin Coin) error {
	_, err := m.fire(ctx, InsertCoin(coin))
	return err
}

// Refund returns the whole balance and moves the machine back to Idle.
// Refund never fails, not even on a canceled context.
func (m *Machine) Refund(ctx context.Context) int {
	r, _ := m.fire(context.WithoutCancel(ctx), Refund())
	return r.Returned
}

// Vend dispenses one item for Price, then refunds the rest of the balance as change.
// The machine is Idle afterwards.
// It returns ErrInsufficientBalance if the balance has not reached Price.
func (m *Machine) Vend(ctx context.Context) (int, error) {
	r, err := m.fire(ctx, Vend())
	if err != nil {
		return 0, err
	}
	return r.Returned, nil
}

func (m *Machine) fire(ctx context.Context, event Event) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clock == nil {
		m.clock = clock.New()
	}
	if m.logger == nil {
		m.logger = flcore.Discard()
	}
	logger := flcore.FromContextOr(ctx, m.logger).With("machine", m.Name(), "event", event.Kind.String())
	if m.notify.BeforeEvent != nil {
		ctx = m.notify.BeforeEvent(ctx, m.state, event)
	}
	if event.Kind == EventRefund {
		// the hook may hand back a canceled context, Refund must still go through
		ctx = context.WithoutCancel(ctx)
	}

	from := m.state
	next, r, err := Apply(ctx, from, event, Record{Balance: m.balance})
	if err != nil {
		logger.WarnContext(ctx, "event rejected", "state", from, "balance", m.balance, "error", err)
		m.rejected(err)
	} else {
		m.balance = r.Balance
		m.record(event, r)
		m.setState(ctx, logger, next)
		logger.DebugContext(ctx, "event handled", "state", next, "balance", m.balance, "returned", r.Returned)
	}

	if m.notify.AfterEvent != nil {
		m.notify.AfterEvent(ctx, m.state, event, err)
	}
	return r, err
}

// setState moves the machine to state, it's the only place the current State changes.
func (m *Machine) setState(ctx context.Context, logger flcore.Logger, state State) {
	from := m.state
	m.state = state
	if from == state {
		return
	}
	logger.InfoContext(ctx, "state transition", "from", from, "to", state)
	if m.notify.OnTransition != nil {
		m.notify.OnTransition(ctx, from, state)
	}
}

// record keeps the open session and the metrics up to date with a handled event.
func (m *Machine) record(event Event, r Record) {
	m.metrics.setBalance(m.Name(), r.Balance)
	switch event.Kind {
	case EventInsertCoin:
		m.metrics.coinAccepted(event.Coin)
		if m.session == nil {
			m.session = &Receipt{ID: uuid.New()}
			m.session.StartSpan(m.clock)
		}
		m.session.Coins = append(m.session.Coins, event.Coin)
	case EventVend:
		m.metrics.vended()
		m.metrics.refunded()
		m.closeSession(true, r.Returned)
	case EventRefund:
		m.metrics.refunded()
		m.closeSession(false, r.Returned)
	}
}

func (m *Machine) closeSession(vended bool, returned int) {
	if m.session == nil {
		return
	}
	m.session.Vended = vended
	m.session.Returned = returned
	m.session.EndSpan(m.clock)
	m.receipts = append(m.receipts, *m.session)
	if m.maxReceipts > 0 && len(m.receipts) > m.maxReceipts {
		m.receipts = slices.Clone(m.receipts[len(m.receipts)-m.maxReceipts:])
	}
	m.session = nil
}

func (m *Machine) rejected(err error) {
	var (
		errCoin    ErrInvalidCoin
		errBalance ErrInsufficientBalance
	)
	switch {
	case errors.As(err, &errCoin):
		m.metrics.coinRejected()
	case errors.As(err, &errBalance):
		m.metrics.vendRefused()
	}
}
