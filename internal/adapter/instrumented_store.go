package adapter

import (
	"context"
	"errors"
	"time"

	"careerpath/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics holds the collectors recorded by InstrumentedStore.
type StoreMetrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewStoreMetrics creates the store collectors and registers them with reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerpath_store_operations_total",
				Help: "Total number of key-value store operations",
			},
			[]string{"backend", "operation", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "careerpath_store_operation_duration_seconds",
				Help:    "Duration of key-value store operations",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"backend", "operation"},
		),
	}
	reg.MustRegister(m.Operations, m.Duration)
	return m
}

// InstrumentedStore records a counter and latency for every call to the wrapped store.
type InstrumentedStore struct {
	next    domain.KeyValueStore
	backend string
	metrics *StoreMetrics
}

func NewInstrumentedStore(next domain.KeyValueStore, backend string, metrics *StoreMetrics) domain.KeyValueStore {
	return &InstrumentedStore{next: next, backend: backend, metrics: metrics}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		result = "miss"
	case err != nil:
		result = "error"
	}
	s.metrics.Operations.WithLabelValues(s.backend, op, result).Inc()
	s.metrics.Duration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	val, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return val, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.observe("ping", start, err)
	return err
}
