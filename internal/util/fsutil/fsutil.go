// Package fsutil holds the file helpers shared by the configuration and page
// writers.
package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveUnder joins a slash-separated relative path onto root and refuses
// absolute paths and paths that climb out of root.
func ResolveUnder(root, rel string) (string, error) {
	if rel == "" {
		return "", errors.New("path is required")
	}
	if root == "" {
		root = "."
	}

	cleanRel := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleanRel) || cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q must stay under %s", rel, root)
	}

	full := filepath.Join(root, cleanRel)
	back, err := filepath.Rel(root, full)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes %s", rel, root)
	}
	return full, nil
}

// Exists reports whether something exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteIfChanged writes data to path unless the file already holds exactly
// data. Parent directories are created as needed and the write goes through a
// temporary file renamed into place.
func WriteIfChanged(path string, data []byte) (changed bool, err error) {
	// #nosec G304 -- callers resolve path under the project root.
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("read existing %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	tmp := path + ".tmp"
	// #nosec G306 -- site sources are read by the site generator and web tooling.
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("rename into place: %w", err)
	}
	return true, nil
}
