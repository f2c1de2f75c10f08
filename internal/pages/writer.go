// Package pages writes page files under the project root. Template pages are
// refreshed only while they still carry the auto-generated marker; stubs are
// written once and never touched again.
package pages

import (
	"fmt"
	"log/slog"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/content"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatterops"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/logfields"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/util/fsutil"
)

// Outcome is what happened to one page.
type Outcome string

const (
	OutcomeCreated         Outcome = "created"
	OutcomeRefreshed       Outcome = "refreshed"
	OutcomeUnchanged       Outcome = "unchanged"
	OutcomeSkippedManual   Outcome = "skipped-manual"
	OutcomeSkippedExisting Outcome = "skipped-existing"
)

// Outcomes lists every outcome in report order.
var Outcomes = []Outcome{
	OutcomeCreated,
	OutcomeRefreshed,
	OutcomeUnchanged,
	OutcomeSkippedManual,
	OutcomeSkippedExisting,
}

// Result describes the handling of one page.
type Result struct {
	NodeID   string
	Path     string
	Template content.Template
	Outcome  Outcome
	// Edited marks a generated page whose fingerprint no longer matched when
	// it was refreshed.
	Edited bool
}

// Message is the report line for the result.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeCreated, OutcomeRefreshed:
		if r.Template.Known() {
			return fmt.Sprintf("Wrote content for %s (%s)", r.Path, r.Template)
		}
		return fmt.Sprintf("Created stub %s", r.Path)
	case OutcomeUnchanged:
		return fmt.Sprintf("%s unchanged", r.Path)
	case OutcomeSkippedManual:
		return fmt.Sprintf("Skip content write (manual page): %s", r.Path)
	case OutcomeSkippedExisting:
		return fmt.Sprintf("Keep existing page: %s", r.Path)
	}
	return r.Path
}

// Writer writes pages below a project root.
type Writer struct {
	root string
}

// NewWriter returns a Writer rooted at root.
func NewWriter(root string) *Writer {
	if root == "" {
		root = "."
	}
	return &Writer{root: root}
}

// Write writes p to the page path of n.
//
// Auto-generated pages are written when the target is missing or still
// carries the marker, and only if their bytes differ; any other existing
// page is left alone. Stubs are written only when nothing exists yet.
func (w *Writer) Write(n *nav.Node, p content.Page) (Result, error) {
	res := Result{NodeID: n.ID, Path: n.FilePath, Template: p.Template}

	full, err := fsutil.ResolveUnder(w.root, n.FilePath)
	if err != nil {
		return res, errors.PathEscapesRoot(n.FilePath).WithContext("id", n.ID)
	}

	if !p.Autogen {
		return w.writeStub(res, full, p)
	}

	state, err := frontmatterops.Inspect(full)
	if err != nil {
		return res, errors.ReadFailed(n.FilePath, err)
	}
	if !state.Overwritable() {
		res.Outcome = OutcomeSkippedManual
		slog.Info("Skipping manual page", logfields.NodeID(n.ID), logfields.Path(n.FilePath))
		return res, nil
	}
	if state == frontmatterops.PageAutogenEdited {
		res.Edited = true
		slog.Warn("Generated page was edited by hand; refreshing it anyway",
			logfields.NodeID(n.ID), logfields.Path(n.FilePath))
	}

	data, err := p.Bytes()
	if err != nil {
		return res, errors.InternalError("render page", err).WithContext("id", n.ID)
	}
	changed, err := fsutil.WriteIfChanged(full, data)
	if err != nil {
		return res, errors.WriteFailed(n.FilePath, err)
	}
	switch {
	case !changed:
		res.Outcome = OutcomeUnchanged
	case state == frontmatterops.PageMissing:
		res.Outcome = OutcomeCreated
	default:
		res.Outcome = OutcomeRefreshed
	}
	slog.Debug("Page written", logfields.Path(n.FilePath), logfields.Template(string(p.Template)), logfields.Outcome(string(res.Outcome)))
	return res, nil
}

func (w *Writer) writeStub(res Result, full string, p content.Page) (Result, error) {
	exists, err := fsutil.Exists(full)
	if err != nil {
		return res, errors.ReadFailed(res.Path, err)
	}
	if exists {
		res.Outcome = OutcomeSkippedExisting
		return res, nil
	}
	data, err := p.Bytes()
	if err != nil {
		return res, errors.InternalError("render stub", err).WithContext("id", res.NodeID)
	}
	if _, err := fsutil.WriteIfChanged(full, data); err != nil {
		return res, errors.WriteFailed(res.Path, err)
	}
	res.Outcome = OutcomeCreated
	slog.Debug("Stub written", logfields.Path(res.Path))
	return res, nil
}
