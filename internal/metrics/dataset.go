// Package metrics holds the Prometheus collectors for dataset loading and dashboard passes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Load results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Dataset records dataset loads and the size of each filtered view.
// A nil *Dataset is valid and records nothing.
type Dataset struct {
	loads        *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	records      prometheus.Gauge
	filteredRows prometheus.Histogram
}

// NewDataset creates the collectors and registers them on reg.
func NewDataset(reg prometheus.Registerer) (*Dataset, error) {
	m := &Dataset{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_loads_total",
				Help: "Total number of dataset loads by source kind and result.",
			},
			[]string{"source", "result"},
		),
		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dataset_load_duration_seconds",
				Help:    "Time spent fetching and decoding the dataset.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"source"},
		),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the currently cached dataset.",
		}),
		filteredRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_filtered_rows",
			Help:    "Rows remaining after applying the filter selection.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.loads, m.loadDuration, m.records, m.filteredRows} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveLoad records one load attempt. records is ignored on failure.
func (m *Dataset) ObserveLoad(source string, err error, took time.Duration, records int) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.loads.WithLabelValues(source, result).Inc()
	m.loadDuration.WithLabelValues(source).Observe(took.Seconds())
	if err == nil {
		m.records.Set(float64(records))
	}
}

// ObserveView records the size of one filtered view.
func (m *Dataset) ObserveView(rows int) {
	if m == nil {
		return
	}
	m.filteredRows.Observe(float64(rows))
}
