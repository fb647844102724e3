package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload modes.
const (
	ModeRequests = "requests"
	ModeUpdates  = "request_updates"
	ModeManHours = "actual_man_hours"
)

// Row outcomes.
const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
)

type metrics struct {
	uploadsTotal *prometheus.CounterVec
	rowsTotal    *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		uploadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "manhours",
			Name:      "uploads_total",
			Help:      "Total number of processed spreadsheet uploads.",
		}, []string{"mode"}),
		rowsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "manhours",
			Name:      "upload_rows_total",
			Help:      "Total number of uploaded spreadsheet rows by outcome.",
		}, []string{"mode", "result"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

// ObserveUpload records one finished upload and its row outcomes.
func ObserveUpload(mode string, succeeded, failed int) {
	m := getMetrics()
	m.uploadsTotal.WithLabelValues(mode).Inc()
	m.rowsTotal.WithLabelValues(mode, ResultSucceeded).Add(float64(succeeded))
	m.rowsTotal.WithLabelValues(mode, ResultFailed).Add(float64(failed))
}
