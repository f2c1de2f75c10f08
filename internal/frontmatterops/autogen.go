package frontmatterops

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// AutogenKey is the header flag marking a page as safe to overwrite.
const AutogenKey = "autogen"

// IsAutogen reports whether the header carries autogen: true.
func IsAutogen(fields map[string]any) bool {
	switch v := fields[AutogenKey].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return false
}

// PageState classifies an existing page path.
type PageState int

const (
	// PageMissing means nothing exists at the path yet.
	PageMissing PageState = iota
	// PageAutogen is a generated page that may be overwritten.
	PageAutogen
	// PageAutogenEdited is a generated page whose fingerprint no longer
	// matches its content. It may still be overwritten.
	PageAutogenEdited
	// PageManual is a page without the marker (or with an unreadable header).
	PageManual
)

func (s PageState) String() string {
	switch s {
	case PageMissing:
		return "missing"
	case PageAutogen:
		return "autogen"
	case PageAutogenEdited:
		return "autogen-edited"
	case PageManual:
		return "manual"
	}
	return "unknown"
}

// Overwritable reports whether the writer may replace a page in this state.
func (s PageState) Overwritable() bool {
	return s != PageManual
}

// Inspect classifies the page at path. A header that cannot be parsed makes
// the page manual; only I/O failures other than a missing file are errors.
func Inspect(path string) (PageState, error) {
	// #nosec G304 -- page paths are validated against the project root by the caller.
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return PageMissing, nil
	}
	if err != nil {
		return PageManual, err
	}

	fields, body, had, err := Read(content)
	if err != nil || !had || !IsAutogen(fields) {
		return PageManual, nil
	}
	if present, ok, _ := VerifyFingerprint(fields, body); present && !ok {
		return PageAutogenEdited, nil
	}
	return PageAutogen, nil
}
