package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analyticsComputed    *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
	transactionsTotal    *prometheus.CounterVec
	recurringSpawned     prometheus.Counter
	snapshotsRecorded    prometheus.Counter
	goalDepositsTotal    prometheus.Counter
	insightsEmitted      prometheus.Gauge
	transactionLogSize   prometheus.Gauge
	savingsScoreObserved prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analyticsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_computations_total",
				Help: "Total number of derived analytics computations by view",
			},
			[]string{"view", "status"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Derived analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"view"},
		),
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_written_total",
				Help: "Total number of transaction writes by operation",
			},
			[]string{"operation"},
		),
		recurringSpawned: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recurring_transactions_spawned_total",
				Help: "Total number of transactions spawned from recurring templates",
			},
		),
		snapshotsRecorded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "networth_snapshots_recorded_total",
				Help: "Total number of net worth snapshots recorded",
			},
		),
		goalDepositsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goal_deposits_total",
				Help: "Total number of goal deposits",
			},
		),
		insightsEmitted: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "insights_emitted",
				Help: "Number of insights produced by the last evaluation",
			},
		),
		transactionLogSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_log_size",
				Help: "Number of transactions in the log at last read",
			},
		),
		savingsScoreObserved: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "savings_score",
				Help: "Savings score total from the last computation",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	view := tags["view"]
	status := tags["status"]
	operation := tags["operation"]

	switch name {
	case "analytics.computed":
		if status == "" {
			status = "success"
		}
		m.analyticsComputed.WithLabelValues(view, status).Inc()
	case "transaction.written":
		if operation != "" {
			m.transactionsTotal.WithLabelValues(operation).Inc()
		}
	case "recurring.spawned":
		m.recurringSpawned.Inc()
	case "snapshot.recorded":
		m.snapshotsRecorded.Inc()
	case "goal.deposit":
		m.goalDepositsTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "stats", "score", "forecast", "comparison", "trend", "insights", "achievements", "networth":
		m.analyticsDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "insights.emitted":
		m.insightsEmitted.Set(value)
	case "transaction.log.size":
		m.transactionLogSize.Set(value)
	case "savings.score":
		m.savingsScoreObserved.Set(value)
	}
}
