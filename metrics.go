package vending

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "vending"

// Metrics collects the activity of one or more Machines.
//
// Register it with a prometheus.Registerer, then attach it with WithMetrics.
// The balance gauge is labeled by the Machine name, give each Machine its own with WithName.
// A nil *Metrics records nothing.
type Metrics struct {
	accepted     *prometheus.CounterVec
	rejected     prometheus.Counter
	vends        prometheus.Counter
	vendRejected prometheus.Counter
	refunds      prometheus.Counter
	balance      *prometheus.GaugeVec
}

var _ prometheus.Collector = &Metrics{}

func NewMetrics() *Metrics {
	return &Metrics{
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "coins_accepted_total",
			Help:      "Number of accepted coins, by denomination.",
		}, []string{"coin"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "coins_rejected_total",
			Help:      "Number of rejected coins.",
		}),
		vends: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "vends_total",
			Help:      "Number of dispensed items.",
		}),
		vendRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "vend_rejected_total",
			Help:      "Number of vends refused for insufficient balance.",
		}),
		refunds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "refunds_total",
			Help:      "Number of refunds, including the ones returning change after a vend.",
		}),
		balance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "balance_cents",
			Help:      "Current balance of the machine.",
		}, []string{"machine"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.accepted, m.rejected, m.vends, m.vendRejected, m.refunds, m.balance}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

func (m *Metrics) coinAccepted(coin Coin) {
	if m != nil {
		m.accepted.WithLabelValues(coin.String()).Inc()
	}
}
func (m *Metrics) coinRejected() {
	if m != nil {
		m.rejected.Inc()
	}
}
func (m *Metrics) vended() {
	if m != nil {
		m.vends.Inc()
	}
}
func (m *Metrics) vendRefused() {
	if m != nil {
		m.vendRejected.Inc()
	}
}
func (m *Metrics) refunded() {
	if m != nil {
		m.refunds.Inc()
	}
}
func (m *Metrics) setBalance(machine string, balance int) {
	if m != nil {
		m.balance.WithLabelValues(machine).Set(float64(balance))
	}
}
