package browser

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "drover",
		Name:      "tasks_total",
		Help:      "Automation tasks by kind and outcome.",
	}, []string{"kind", "status"})

	metricTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "drover",
		Name:      "task_duration_seconds",
		Help:      "End-to-end automation task duration.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"kind"})

	metricQueueWaiting = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "drover",
		Name:      "queue_waiting",
		Help:      "Tasks waiting for the browser lane.",
	})

	metricBrowserUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "drover",
		Name:      "browser_initialized",
		Help:      "Whether the browser engine is running (1) or not (0).",
	})
)

func observeTask(kind string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metricTasksTotal.WithLabelValues(kind, status).Inc()
	metricTaskDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
