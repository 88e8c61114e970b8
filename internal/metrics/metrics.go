package metrics

import (
	"net/http"
	"slot_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "slot"

// Spin счетчики спинов. Реализует spin.Recorder
type Spin struct {
	registry *prometheus.Registry

	spins       prometheus.Counter
	wins        prometheus.Counter
	betTotal    prometheus.Counter
	winTotal    prometheus.Counter
	bonusEvents *prometheus.CounterVec
}

// NewSpin Регистрирует счетчики в собственном реестре
func NewSpin() *Spin {
	reg := prometheus.NewRegistry()
	m := &Spin{
		registry: reg,
		spins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_total",
			Help:      "Number of spins served.",
		}),
		wins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "winning_spins_total",
			Help:      "Number of spins with a non-zero win.",
		}),
		betTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bet_amount_total",
			Help:      "Sum of normalized bets.",
		}),
		winTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "win_amount_total",
			Help:      "Sum of wins paid.",
		}),
		bonusEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_events_total",
			Help:      "Bonus rolls that hit, by bonus type.",
		}, []string{"type"}),
	}
	reg.MustRegister(
		m.spins,
		m.wins,
		m.betTotal,
		m.winTotal,
		m.bonusEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Spin) ObserveSpin(bet float64, res model.SpinResult) {
	m.spins.Inc()
	m.betTotal.Add(bet)
	if res.Win > 0 {
		m.wins.Inc()
		m.winTotal.Add(res.Win)
	}
	if res.Bonus.FreeSpins > 0 {
		m.bonusEvents.WithLabelValues("free_spins").Inc()
	}
	if res.Bonus.Multiplier > 1 {
		m.bonusEvents.WithLabelValues("multiplier").Inc()
	}
}

// Handler /metrics
func (m *Spin) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
