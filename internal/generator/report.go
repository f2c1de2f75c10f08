package generator

import (
	"fmt"
	"time"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/metrics"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/pages"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/validate"
)

// ConfigOutcome is what happened to the configuration document.
type ConfigOutcome string

const (
	ConfigWritten   ConfigOutcome = "written"
	ConfigUnchanged ConfigOutcome = "unchanged"
	// ConfigPrinted is a dry run: the document was rendered but not written.
	ConfigPrinted ConfigOutcome = "printed"
	// ConfigSkipped is validation mode: nothing was rendered.
	ConfigSkipped ConfigOutcome = "skipped"
)

// Report captures the result of one run.
type Report struct {
	// RunID tags the log lines of one pass; watch mode runs many.
	RunID string
	Start time.Time
	End   time.Time

	Nodes int
	Roots int

	ConfigPath    string
	ConfigOutcome ConfigOutcome
	// Config is the rendered configuration document (empty in validation mode).
	Config []byte

	Pages      []pages.Result
	Validation *validate.Result
	// Warnings are non-fatal run problems outside validation (e.g. unreadable
	// content records).
	Warnings []error
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Lines are the informational lines for each file written, skipped or left
// unchanged.
func (r *Report) Lines() []string {
	var out []string
	switch r.ConfigOutcome {
	case ConfigWritten:
		out = append(out, fmt.Sprintf("Wrote %s", r.ConfigPath))
	case ConfigUnchanged:
		out = append(out, fmt.Sprintf("%s unchanged", r.ConfigPath))
	}
	for _, p := range r.Pages {
		out = append(out, p.Message())
	}
	return out
}

// PageCounts returns the number of pages per outcome.
func (r *Report) PageCounts() map[pages.Outcome]int {
	out := make(map[pages.Outcome]int, len(pages.Outcomes))
	for _, p := range r.Pages {
		out[p.Outcome]++
	}
	return out
}

// WarningCount counts validation and run warnings.
func (r *Report) WarningCount() int {
	n := len(r.Warnings)
	if r.Validation != nil {
		n += len(r.Validation.Warnings)
	}
	return n
}

// Outcome derives the run outcome for metrics.
func (r *Report) Outcome() metrics.RunOutcomeLabel {
	if r.WarningCount() > 0 {
		return metrics.RunWarning
	}
	return metrics.RunSuccess
}

// Summary is a single log-friendly line.
func (r *Report) Summary() string {
	counts := r.PageCounts()
	return fmt.Sprintf("run=%s nodes=%d roots=%d config=%s pages=%d created=%d refreshed=%d unchanged=%d skipped=%d warnings=%d duration=%s",
		r.RunID, r.Nodes, r.Roots, r.ConfigOutcome, len(r.Pages),
		counts[pages.OutcomeCreated], counts[pages.OutcomeRefreshed], counts[pages.OutcomeUnchanged],
		counts[pages.OutcomeSkippedManual]+counts[pages.OutcomeSkippedExisting],
		r.WarningCount(), r.Duration().Truncate(time.Millisecond))
}
