package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by run hooks.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Steps    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of finished runs by outcome",
			},
			[]string{"machine", "outcome"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of transition rules applied",
			},
			[]string{"machine"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "turing_run_duration_seconds",
				Help:    "Wall time of runs from start to halt",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"machine"},
		),
	}
	for _, c := range []prometheus.Collector{m.Runs, m.Steps, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record every step and halt, labelled
// with the machine name.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return m.HooksFor("")
}

// HooksFor is like Hooks but labels every sample with machine instead of
// the machine name. Use it when names come from untrusted callers.
// An empty machine falls back to the name.
func (m *Metrics) HooksFor(machine string) domain.LifecycleHooks {
	label := func(name string) string {
		if machine != "" {
			return machine
		}
		return name
	}
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(label(e.Machine)).Inc()
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			l := label(e.Machine)
			m.Runs.WithLabelValues(l, string(e.Outcome)).Inc()
			m.Duration.WithLabelValues(l).Observe(e.Duration.Seconds())
		},
	}
}

// ChainHooks returns hooks that call each of the given hooks in order.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			for _, h := range hooks {
				if h.OnRunStart != nil {
					h.OnRunStart(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			for _, h := range hooks {
				if h.OnHalt != nil {
					h.OnHalt(ctx, e)
				}
			}
		},
	}
}
