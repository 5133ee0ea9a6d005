package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bethub"

// Recorder owns the service metrics. A nil *Recorder is valid and records
// nothing, which keeps tests free of registry setup.
type Recorder struct {
	registry         *prometheus.Registry
	imports          *prometheus.CounterVec
	importDuration   *prometheus.HistogramVec
	teamsImported    *prometheus.CounterVec
	settlements      *prometheus.CounterVec
	payoutsWritten   prometheus.Counter
	providerRequests *prometheus.CounterVec
	circuitOpen      *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "league_imports_total",
			Help:      "League imports by provider and outcome.",
		}, []string{"provider", "outcome"}),
		importDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "league_import_duration_seconds",
			Help:      "Wall time of a full league import.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		teamsImported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teams_imported_total",
			Help:      "Team records written by imports.",
		}, []string{"provider"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement runs by outcome.",
		}, []string{"outcome"}),
		payoutsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_written_total",
			Help:      "Per-user payout lines written into settlement snapshots.",
		}),
		providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Upstream provider requests by endpoint and HTTP status (0 for transport errors).",
		}, []string{"provider", "endpoint", "status"}),
		circuitOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_open",
			Help:      "1 while the named circuit breaker is open.",
		}, []string{"name"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.imports,
		r.importDuration,
		r.teamsImported,
		r.settlements,
		r.payoutsWritten,
		r.providerRequests,
		r.circuitOpen,
	)

	return r
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveImport(provider, outcome string, took time.Duration, teams int) {
	if r == nil {
		return
	}
	r.imports.WithLabelValues(provider, outcome).Inc()
	r.importDuration.WithLabelValues(provider).Observe(took.Seconds())
	if teams > 0 {
		r.teamsImported.WithLabelValues(provider).Add(float64(teams))
	}
}

func (r *Recorder) ObserveSettlement(outcome string, payouts int) {
	if r == nil {
		return
	}
	r.settlements.WithLabelValues(outcome).Inc()
	if payouts > 0 {
		r.payoutsWritten.Add(float64(payouts))
	}
}

func (r *Recorder) ObserveProviderRequest(provider, endpoint string, status int) {
	if r == nil {
		return
	}
	r.providerRequests.WithLabelValues(provider, endpoint, strconv.Itoa(status)).Inc()
}

func (r *Recorder) SetCircuitOpen(name string, open bool) {
	if r == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	r.circuitOpen.WithLabelValues(name).Set(v)
}
