package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "menuhub"

var (
	once sync.Once

	statusEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_evaluations_total",
			Help:      "Count of store status evaluations by result.",
		},
		[]string{"result"},
	)

	modeAvailability = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mode_availability_total",
			Help:      "Count of order mode decisions by mode and outcome.",
		},
		[]string{"mode", "available"},
	)

	snapshotChanges = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_changes_total",
			Help:      "Count of stored open/closed snapshots that changed.",
		},
	)

	snapshotSweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_sweep_duration_seconds",
			Help:      "Time to refresh the snapshot of every scheduled merchant.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2, 5, 10},
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(statusEvaluations, modeAvailability, snapshotChanges, snapshotSweepDuration, httpRequests)
	})
}

func IncStatusEvaluation(isOpen bool) {
	result := "closed"
	if isOpen {
		result = "open"
	}
	statusEvaluations.WithLabelValues(result).Inc()
}

func IncModeAvailability(mode string, available bool) {
	modeAvailability.WithLabelValues(mode, strconv.FormatBool(available)).Inc()
}

func AddSnapshotChanges(count int) {
	snapshotChanges.Add(float64(count))
}

func ObserveSweepDuration(d time.Duration) {
	snapshotSweepDuration.Observe(d.Seconds())
}

func IncHTTPRequest(route string, status int) {
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
