// Package generator runs the navigation pipeline: read the records, build
// and validate the tree, render the configuration document and write pages.
package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/config"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/content"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/logfields"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/metrics"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/pages"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/quarto"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/util/fsutil"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/validate"
)

// Generator runs the pipeline for one configuration.
type Generator struct {
	cfg      config.Config
	recorder metrics.Recorder
}

// New returns a generator for cfg, which must be normalized and validated.
func New(cfg config.Config) *Generator {
	return &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}}
}

// WithRecorder sets the metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// Run executes one pass. Any returned error is fatal; the configuration
// document is never written after one, though pages already written stay.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:         uuid.NewString(),
		Start:         time.Now(),
		ConfigPath:    g.cfg.OutputFile(),
		ConfigOutcome: ConfigSkipped,
	}
	slog.Debug("Run started", slog.String("run_id", report.RunID), logfields.Path(g.cfg.NodesPath))
	err := g.run(ctx, report)
	report.End = time.Now()

	g.recorder.ObserveRunDuration(report.Duration())
	if err != nil {
		g.recorder.IncRunOutcome(metrics.RunFailed)
		return report, err
	}
	g.recorder.IncRunOutcome(report.Outcome())
	slog.Info("Run complete", slog.String("summary", report.Summary()))
	return report, nil
}

func (g *Generator) run(ctx context.Context, report *Report) error {
	tree, roots, err := g.loadTree()
	if err != nil {
		return err
	}
	report.Nodes = tree.Len()
	report.Roots = len(roots)
	g.recorder.SetNodes(tree.Len())

	contents, err := content.Load(g.cfg.ContentPath)
	if err != nil {
		warn := errors.ContentUnreadable(g.cfg.ContentPath, err)
		slog.Warn(warn.Message, logfields.Path(g.cfg.ContentPath), logfields.Error(err))
		report.Warnings = append(report.Warnings, warn)
	}

	report.Validation = validate.Run(tree, contents)
	for _, w := range report.Validation.Warnings {
		g.recorder.IncWarning(w.Rule)
		slog.Debug(w.Message, slog.String("rule", w.Rule), logfields.NodeID(w.NodeID), logfields.Line(w.Line))
	}
	if g.cfg.ValidateOnly {
		return nil
	}

	doc := quarto.Build(tree, roots, quarto.Options{
		SiteTitle:         g.cfg.SiteTitle,
		PreRender:         g.cfg.RegenerationCommand(),
		Resources:         g.cfg.Resources(),
		SidebarStyle:      g.cfg.SidebarStyle,
		SidebarBackground: g.cfg.SidebarBackground,
		Themes:            g.cfg.Themes,
		CSS:               g.cfg.CSS,
		TOC:               g.cfg.TOC,
	})
	report.Config, err = doc.Marshal()
	if err != nil {
		return errors.InternalError("render configuration", err)
	}
	if g.cfg.DryRun {
		report.ConfigOutcome = ConfigPrinted
		return nil
	}

	changed, err := fsutil.WriteIfChanged(report.ConfigPath, report.Config)
	if err != nil {
		return errors.WriteFailed(report.ConfigPath, err)
	}
	report.ConfigOutcome = ConfigUnchanged
	if changed {
		report.ConfigOutcome = ConfigWritten
	}
	g.recorder.IncConfigWrite(changed)
	slog.Debug("Configuration document", logfields.Path(report.ConfigPath), logfields.Outcome(string(report.ConfigOutcome)))

	if !g.cfg.CreatePages {
		return nil
	}
	return g.writePages(ctx, tree, contents, report)
}

func (g *Generator) loadTree() (*nav.Tree, []*nav.Node, error) {
	recs, err := records.ReadFile(g.cfg.NodesPath)
	if err != nil {
		return nil, nil, errors.InputUnreadable(g.cfg.NodesPath, err)
	}
	tree, err := nav.Build(recs)
	if err != nil {
		return nil, nil, err
	}
	roots, err := tree.RequireRoots()
	if err != nil {
		return nil, nil, err
	}
	tree.DerivePaths()
	slog.Debug("Navigation tree built", logfields.Count(tree.Len()), slog.Int("roots", len(roots)))
	return tree, roots, nil
}

func (g *Generator) writePages(ctx context.Context, tree *nav.Tree, contents *content.Set, report *Report) error {
	w := pages.NewWriter(g.cfg.Root)
	for _, n := range tree.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n.Kind == nav.KindExternal || n.FilePath == "" {
			continue
		}

		page, ok, err := content.Render(n, contents.Lookup(n.ID))
		if err != nil {
			return errors.InternalError("render page", err).WithContext("id", n.ID)
		}
		if !ok {
			page = content.Stub(n, tree.ChildrenOf(n.ID))
		}

		res, err := w.Write(n, page)
		if err != nil {
			return err
		}
		report.Pages = append(report.Pages, res)
		g.recorder.IncPageOutcome(string(res.Outcome))
	}
	return nil
}
