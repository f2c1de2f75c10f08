package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "quartonav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration  prom.Histogram
	runOutcome   *prom.CounterVec
	nodes        prom.Gauge
	warnings     *prom.CounterVec
	pageOutcomes *prom.CounterVec
	configWrites *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg (a
// fresh registry when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a generator run",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"outcome"}),
		nodes: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Navigation nodes in the last run",
		}),
		warnings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Validation warnings by rule",
		}, []string{"rule"}),
		pageOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_outcomes_total",
			Help:      "Page writes by outcome",
		}, []string{"outcome"}),
		configWrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_writes_total",
			Help:      "Configuration document writes by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.runDuration, pr.runOutcome, pr.nodes, pr.warnings, pr.pageOutcomes, pr.configWrites)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetNodes(n int) {
	if p == nil {
		return
	}
	p.nodes.Set(float64(n))
}

func (p *PrometheusRecorder) IncWarning(rule string) {
	if p == nil {
		return
	}
	p.warnings.WithLabelValues(rule).Inc()
}

func (p *PrometheusRecorder) IncPageOutcome(outcome string) {
	if p == nil {
		return
	}
	p.pageOutcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncConfigWrite(changed bool) {
	if p == nil {
		return
	}
	res := "unchanged"
	if changed {
		res = "written"
	}
	p.configWrites.WithLabelValues(res).Inc()
}

// WriteTextfile writes every metric gathered from g to path in the
// node-exporter textfile format.
func WriteTextfile(g prom.Gatherer, path string) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
