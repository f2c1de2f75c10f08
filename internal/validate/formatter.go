package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

// Formatter writes a validation result.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// TextFormatter prints the indented tree followed by the warnings.
type TextFormatter struct {
	kind *color.Color
	mode *color.Color
	warn *color.Color
	ok   *color.Color
}

// NewTextFormatter creates a text formatter. With useColor set, colors follow
// the terminal detection of fatih/color; without it output is plain.
func NewTextFormatter(useColor bool) *TextFormatter {
	f := &TextFormatter{
		kind: color.New(color.FgCyan),
		mode: color.New(color.Faint),
		warn: color.New(color.FgYellow),
		ok:   color.New(color.FgGreen),
	}
	if !useColor {
		for _, c := range []*color.Color{f.kind, f.mode, f.warn, f.ok} {
			c.DisableColor()
		}
	}
	return f
}

// Format outputs the tree and warnings.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintln(w, "=== Navigation tree ==="); err != nil {
		return err
	}
	for _, line := range result.Tree {
		if _, err := fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", line.Depth), f.treeLine(line)); err != nil {
			return err
		}
	}

	if !result.HasWarnings() {
		_, err := fmt.Fprintf(w, "\n%s\n", f.ok.Sprint("No warnings."))
		return err
	}
	if _, err := fmt.Fprintf(w, "\n=== Warnings (%d) ===\n", len(result.Warnings)); err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		loc := ""
		if warning.Line > 0 {
			loc = fmt.Sprintf(" (line %d)", warning.Line)
		}
		if _, err := fmt.Fprintf(w, "- %s%s [%s]\n", f.warn.Sprint(warning.Message), loc, warning.Rule); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) treeLine(line TreeLine) string {
	s := fmt.Sprintf("%s [%s]", line.Label, f.kind.Sprint(line.Kind))
	if line.Kind == nav.KindLanding {
		s += " " + f.mode.Sprintf("-> %s (%s)", line.Mode, line.Origin)
	}
	return s
}

// JSONFormatter writes the result as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput is the JSON document written by JSONFormatter.
type JSONOutput struct {
	Tree         []JSONTreeLine `json:"tree"`
	WarningCount int            `json:"warning_count"`
	Warnings     []Warning      `json:"warnings"`
}

// JSONTreeLine is one tree row in JSON form.
type JSONTreeLine struct {
	Depth  int    `json:"depth"`
	ID     string `json:"id"`
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	Mode   string `json:"mode,omitempty"`
	Origin string `json:"origin,omitempty"`
}

// Format outputs the result in JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	out := JSONOutput{
		WarningCount: len(result.Warnings),
		Warnings:     result.Warnings,
	}
	if out.Warnings == nil {
		out.Warnings = []Warning{}
	}
	for _, line := range result.Tree {
		out.Tree = append(out.Tree, JSONTreeLine{
			Depth:  line.Depth,
			ID:     line.ID,
			Label:  line.Label,
			Kind:   string(line.Kind),
			Mode:   string(line.Mode),
			Origin: string(line.Origin),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// NewFormatter returns the formatter for format ("text" or "json").
func NewFormatter(format string, useColor bool) Formatter {
	if format == "json" {
		return NewJSONFormatter()
	}
	return NewTextFormatter(useColor)
}
