package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyNodeID   = "node_id"
	KeyParentID = "parent_id"
	KeyKind     = "kind"
	KeyLine     = "line"
	KeyPath     = "path"
	KeyTemplate = "template"
	KeyOutcome  = "outcome"
	KeyCount    = "count"
	KeyFile     = "file"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func NodeID(id string) slog.Attr    { return slog.String(KeyNodeID, id) }
func ParentID(id string) slog.Attr  { return slog.String(KeyParentID, id) }
func Kind(k string) slog.Attr       { return slog.String(KeyKind, k) }
func Line(n int) slog.Attr          { return slog.Int(KeyLine, n) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Template(t string) slog.Attr   { return slog.String(KeyTemplate, t) }
func Outcome(o string) slog.Attr    { return slog.String(KeyOutcome, o) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func File(name string) slog.Attr    { return slog.String(KeyFile, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
