package vending

import (
	"github.com/benbjohnson/clock"

	"github.com/Azure/go-vending/flcore"
)

// MachineOption alters the behavior of a Machine.
type MachineOption func(*Machine)

func (m *Machine) Options(opts ...MachineOption) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithClock sets the clock used to time Receipts.
func WithClock(clock clock.Clock) MachineOption {
	return func(m *Machine) {
		m.clock = clock
	}
}

// WithLogger sets the fallback Logger, a Logger in the context passed to an operation wins over it.
func WithLogger(logger flcore.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

func WithNotify(notify Notify) MachineOption {
	return func(m *Machine) {
		m.notify = notify
	}
}

// WithMetrics reports the Machine activity to metrics.
func WithMetrics(metrics *Metrics) MachineOption {
	return func(m *Machine) {
		m.metrics = metrics
	}
}

// WithName names the Machine, the name labels its metrics.
func WithName(name string) MachineOption {
	return func(m *Machine) {
		m.name = name
	}
}

// WithMaxReceipts keeps only the n most recent Receipts, n <= 0 keeps all of them.
func WithMaxReceipts(n int) MachineOption {
	return func(m *Machine) {
		m.maxReceipts = n
	}
}
