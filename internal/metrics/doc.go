// Package metrics records run metrics for the navigation generator.
//
// Components receive a Recorder. NoopRecorder is the default and does
// nothing; PrometheusRecorder counts into a Prometheus registry that
// WriteTextfile exports in the node-exporter textfile format, so CI jobs can
// pick up node counts, warnings and page outcomes after each run:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	// ... run ...
//	err := metrics.WriteTextfile(reg, "quartonav.prom")
package metrics
