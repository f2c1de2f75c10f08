package metrics

import "time"

// RunOutcomeLabel enumerates run outcomes for counters.
type RunOutcomeLabel string

const (
	RunSuccess RunOutcomeLabel = "success"
	RunWarning RunOutcomeLabel = "warning"
	RunFailed  RunOutcomeLabel = "failed"
)

// Recorder defines the observability hooks of a run.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome RunOutcomeLabel)
	SetNodes(n int)
	IncWarning(rule string)
	IncPageOutcome(outcome string)
	IncConfigWrite(changed bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(RunOutcomeLabel) {}
func (NoopRecorder) SetNodes(int) {}
func (NoopRecorder) IncWarning(string) {}
func (NoopRecorder) IncPageOutcome(string) {}
func (NoopRecorder) IncConfigWrite(bool) {}
