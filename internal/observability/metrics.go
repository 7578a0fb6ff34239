// Package observability builds the logger and the Prometheus metrics of protokoll.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "protokoll"

// Metrics holds the Prometheus counters, histograms, and gauges for the analytics pipeline.
type Metrics struct {
	PipelineRuns     *prometheus.CounterVec // labels: status={no_data,success,partial,failed}
	RunDuration      prometheus.Histogram
	ArtifactsWritten *prometheus.CounterVec // labels: kind
	ArtifactFailures *prometheus.CounterVec // labels: kind

	// Dataset metrics.
	DatasetRecords  prometheus.Gauge
	RecordsRejected prometheus.Counter
	StoreReadErrors prometheus.Counter
	DatasetBuilds   *prometheus.CounterVec // labels: reason={forced,initial}
}

// NewMetrics creates all pipeline metrics and registers them with reg.
// A CLI process uses a private registry so the metrics can be written to a textfile.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.PipelineRuns,
		m.RunDuration,
		m.ArtifactsWritten,
		m.ArtifactFailures,
		m.DatasetRecords,
		m.RecordsRejected,
		m.StoreReadErrors,
		m.DatasetBuilds,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them anywhere,
// which avoids "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PipelineRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Pipeline runs by outcome status.",
		}, []string{"status"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Duration of a complete refresh-compute-render run.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ArtifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Artifacts written by kind.",
		}, []string{"kind"}),
		ArtifactFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_failures_total",
			Help:      "Artifact rendering or write failures by kind.",
		}, []string{"kind"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Usable records in the last built dataset.",
		}),
		RecordsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rejected_total",
			Help:      "Raw records dropped because their date or time could not be parsed.",
		}),
		StoreReadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_read_errors_total",
			Help:      "Failed reads of the record store.",
		}),
		DatasetBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_builds_total",
			Help:      "Dataset rebuilds by reason.",
		}, []string{"reason"}),
	}
}

// WriteTextfile writes every metric gathered by g to path in the text exposition format,
// for pickup by a node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}
