package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/config"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/generator"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/logfields"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/metrics"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/validate"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/watch"
)

// Execute runs the command and returns the process exit code.
func (c *CLI) Execute(ctx context.Context, stdout io.Writer) int {
	adapter := errors.NewCLIErrorAdapter(c.Verbose, slog.Default())

	cfg, err := c.Config()
	if err != nil {
		return adapter.Handle(err)
	}

	r := &runner{cli: c, cfg: cfg, out: stdout}
	if cfg.MetricsFile != "" {
		r.registry = prometheus.NewRegistry()
		r.recorder = metrics.NewPrometheusRecorder(r.registry)
	}

	if !cfg.Watch {
		return adapter.Handle(r.once(ctx))
	}

	// A failing first pass is reported, but watching still starts so the
	// next edit can fix it.
	if err := r.once(ctx); err != nil {
		adapter.Handle(err)
	}
	w, err := watch.New(cfg.InputPaths(), watch.DefaultDebounce, r.once)
	if err != nil {
		return adapter.Handle(errors.InternalError("start watcher", err))
	}
	slog.Info("Watching input files", slog.Any("paths", cfg.InputPaths()))
	if err := w.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return adapter.Handle(err)
	}
	return 0
}

type runner struct {
	cli      *CLI
	cfg      config.Config
	out      io.Writer
	registry *prometheus.Registry
	recorder metrics.Recorder
}

// once runs a single generator pass and prints its result.
func (r *runner) once(ctx context.Context) error {
	report, err := generator.New(r.cfg).WithRecorder(r.recorder).Run(ctx)
	r.writeMetrics()
	if err != nil {
		return err
	}

	switch {
	case r.cfg.ValidateOnly:
		f := validate.NewFormatter(r.cli.Format, r.cli.useColor(r.out))
		if err := f.Format(r.out, report.Validation); err != nil {
			return errors.InternalError("print validation result", err)
		}
	case r.cfg.DryRun:
		if _, err := r.out.Write(report.Config); err != nil {
			return errors.InternalError("print configuration", err)
		}
	default:
		for _, line := range report.Lines() {
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				return errors.InternalError("print report", err)
			}
		}
	}
	return nil
}

func (r *runner) writeMetrics() {
	if r.registry == nil {
		return
	}
	if err := metrics.WriteTextfile(r.registry, r.cfg.MetricsFile); err != nil {
		slog.Warn("Failed to write metrics file", logfields.Path(r.cfg.MetricsFile), logfields.Error(err))
	}
}
