package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for plan requests.
const (
	OutcomeAllocated    = "allocated"
	OutcomeInsufficient = "insufficient_capacity"
	OutcomeUnmatched    = "load_not_matched"
	OutcomeInvalid      = "invalid_request"
	OutcomeError        = "error"
)

// PlanEvent describes one handled plan request.
type PlanEvent struct {
	Endpoint    string
	Outcome     string
	LoadMW      float64
	Powerplants int
	Duration    time.Duration
}

// Recorder records plan requests for observability purposes.
type Recorder interface {
	RecordPlan(ev PlanEvent) error
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordPlan(PlanEvent) error { return nil }

// PromRecorder records plan requests in Prometheus metrics.
type PromRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	load     *prometheus.HistogramVec
	plants   prometheus.Gauge
}

// NewPromRecorder registers the metrics on the default Prometheus registerer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "production_plan_requests_total",
		Help: "Total number of production plan requests by outcome",
	}, []string{"endpoint", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "production_plan_duration_seconds",
		Help:    "Time spent computing a production plan",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	load := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "production_plan_load_mw",
		Help:    "Requested load in MW",
		Buckets: prometheus.ExponentialBuckets(10, 2, 12),
	}, []string{"outcome"})
	plants := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "production_plan_last_powerplants",
		Help: "Number of powerplants in the last plan request",
	})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if load, err = register(reg, load); err != nil {
		return nil, err
	}
	if plants, err = register(reg, plants); err != nil {
		return nil, err
	}
	return &PromRecorder{requests: requests, duration: duration, load: load, plants: plants}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) RecordPlan(ev PlanEvent) error {
	r.requests.WithLabelValues(ev.Endpoint, ev.Outcome).Inc()
	r.duration.WithLabelValues(ev.Endpoint).Observe(ev.Duration.Seconds())
	r.load.WithLabelValues(ev.Outcome).Observe(ev.LoadMW)
	r.plants.Set(float64(ev.Powerplants))
	return nil
}

