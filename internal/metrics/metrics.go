package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer refreshes gauges that reflect the current state of something, e.g. a repository size.
type Observer interface {
	Observe(ctx context.Context, metrics *Collector)
}

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	CipherRequests  *prometheus.CounterVec
	CipherLetters   *prometheus.CounterVec
	CipherErrors    *prometheus.CounterVec
	CipherDurations *prometheus.HistogramVec

	SessionCreated *prometheus.CounterVec
	SessionKeys    *prometheus.CounterVec

	CleanerRemovals *prometheus.CounterVec
	CleanerErrors   *prometheus.CounterVec

	SessionRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		CipherRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_requests_total",
			Help: "The total number of successful transcription requests",
		}, []string{"machine", "direction"}),
		CipherLetters: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_letters_total",
			Help: "The total number of letters put through cipher machines",
		}, []string{"machine"}),
		CipherErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_errors_total",
			Help: "The total number of transcription requests rejected due to bad machine settings",
		}, []string{"machine"}),
		CipherDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "cipher_duration_seconds",
			Help: "Duration of transcription requests",
		}, []string{"machine"}),
		SessionCreated: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "session_created_total",
			Help: "The total number of interactive sessions created",
		}, []string{"machine"}),
		SessionKeys: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "session_keys_total",
			Help: "The total number of keys pressed in interactive sessions",
		}, []string{"machine"}),
		CleanerRemovals: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cleaner_removals_total",
			Help: "The total number of idle items removed",
		}, []string{"kind"}),
		CleanerErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cleaner_errors_total",
			Help: "The total number of errors occurred during cleaner runs",
		}, []string{"kind"}),
		SessionRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_sessions_size",
			Help: "The number of interactive sessions stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := c.observers
	c.mutex.Unlock()
	var wg sync.WaitGroup
	for _, observer := range observers {
		wg.Go(func() {
			observer.Observe(ctx, c)
		})
	}
	wg.Wait()
}
