// Package frontmatterops reads page headers and answers the questions the page
// writer asks about an existing page: is it auto-generated, and has it been
// edited since it was generated.
package frontmatterops

import (
	"os"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatter"
)

// Read splits a page into YAML frontmatter fields and body.
//
// Contract:
// - If the input doesn't start with a frontmatter delimiter, had=false and body is the full input.
// - If the input starts with a delimiter but is missing the closing delimiter, returns ErrMissingClosingDelimiter.
// - If frontmatter is present but empty, fields is an empty map.
func Read(content []byte) (fields map[string]any, body []byte, had bool, err error) {
	raw, body, had, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, nil, false, err
	}

	fields, err = frontmatter.ParseYAML(raw)
	if err != nil {
		return nil, nil, had, err
	}

	return fields, body, had, nil
}

// ReadFile reads and splits the page at path.
func ReadFile(path string) (fields map[string]any, body []byte, had bool, err error) {
	// #nosec G304 -- page paths are validated against the project root by the caller.
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false, err
	}
	return Read(content)
}
