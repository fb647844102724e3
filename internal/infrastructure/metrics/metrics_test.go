package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestObserveUpload(t *testing.T) {
	m := getMetrics()
	uploads := counterValue(t, m.uploadsTotal.WithLabelValues(ModeManHours))
	ok := counterValue(t, m.rowsTotal.WithLabelValues(ModeManHours, ResultSucceeded))
	bad := counterValue(t, m.rowsTotal.WithLabelValues(ModeManHours, ResultFailed))

	ObserveUpload(ModeManHours, 3, 2)

	if got := counterValue(t, m.uploadsTotal.WithLabelValues(ModeManHours)); got != uploads+1 {
		t.Fatalf("uploads = %v, want %v", got, uploads+1)
	}
	if got := counterValue(t, m.rowsTotal.WithLabelValues(ModeManHours, ResultSucceeded)); got != ok+3 {
		t.Fatalf("succeeded = %v, want %v", got, ok+3)
	}
	if got := counterValue(t, m.rowsTotal.WithLabelValues(ModeManHours, ResultFailed)); got != bad+2 {
		t.Fatalf("failed = %v, want %v", got, bad+2)
	}
}

func TestObserveUpload_IsRegistered(t *testing.T) {
	ObserveUpload(ModeRequests, 1, 0)
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "manhours_upload_rows_total" {
			return
		}
	}
	t.Fatal("manhours_upload_rows_total not registered")
}
