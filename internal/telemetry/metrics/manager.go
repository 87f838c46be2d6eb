package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests             *prometheus.CounterVec
	CounterHandleRequestPanic   prometheus.Counter
	CounterRateLimitedRequests  prometheus.Counter
	CounterSetsLogged           prometheus.Counter
	CounterSetsRemoved          prometheus.Counter
	CounterJoulesLogged         prometheus.Counter
	CounterMilestonesCrossed    prometheus.Counter
	CounterAchievementsUnlocked *prometheus.CounterVec
	CounterSummaryCacheHits     prometheus.Counter
	CounterSummaryCacheMisses   prometheus.Counter

	// gauges
	GaugeRequests        prometheus.Gauge
	GaugeOpenConnections prometheus.Gauge
	GaugeLifeSignal      prometheus.Gauge
	GaugeTotalJoules     prometheus.Gauge

	// histograms
	HistogramRequestDuration    *prometheus.HistogramVec
	HistogramEvaluationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymenergy", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymenergy", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterSetsLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_logged",
		Help:      "The total number of logged exercise sets",
	})
	counterSetsRemoved := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_removed",
		Help:      "The total number of removed exercise sets",
	})
	counterJoulesLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "joules_logged",
		Help:      "The total energy of logged sets, in joules",
	})
	counterMilestonesCrossed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestones_crossed",
		Help:      "The total number of crossed milestones",
	})
	counterAchievementsUnlocked := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "achievements_unlocked",
		Help:      "The total number of unlocked achievements",
	}, []string{"category"})
	counterSummaryCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "summary_cache_hits",
		Help:      "The total number of summaries served from cache",
	})
	counterSummaryCacheMisses := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "summary_cache_misses",
		Help:      "The total number of summaries computed from the store",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeOpenConnections := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "open_connections",
		Help:      "Current number of open client connections",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeTotalJoules := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "total_joules",
		Help:      "Cumulative energy of the whole workout history, in joules",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramEvaluationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "achievement_evaluation_duration_seconds",
		Help:      "Duration of a single achievement evaluation pass in seconds",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	})

	return &Manager{
		CounterRequests:             counterRequests,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		CounterRateLimitedRequests:  counterRateLimitedRequests,
		CounterSetsLogged:           counterSetsLogged,
		CounterSetsRemoved:          counterSetsRemoved,
		CounterJoulesLogged:         counterJoulesLogged,
		CounterMilestonesCrossed:    counterMilestonesCrossed,
		CounterAchievementsUnlocked: counterAchievementsUnlocked,
		CounterSummaryCacheHits:     counterSummaryCacheHits,
		CounterSummaryCacheMisses:   counterSummaryCacheMisses,
		GaugeRequests:               gaugeRequests,
		GaugeOpenConnections:        gaugeOpenConnections,
		GaugeLifeSignal:             gaugeLifeSignal,
		GaugeTotalJoules:            gaugeTotalJoules,
		HistogramRequestDuration:    histogramRequestDuration,
		HistogramEvaluationDuration: histogramEvaluationDuration,
	}
}
