package config

import (
	"fmt"
	"os"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
)

// Validate rejects contradictory modes and unusable paths. It expects a
// normalized configuration.
func (c *Config) Validate() error {
	if c.Watch && c.ValidateOnly {
		return errors.ConfigInvalid("watch", "--watch cannot be combined with --validate")
	}
	if c.Watch && c.DryRun {
		return errors.ConfigInvalid("watch", "--watch cannot be combined with --dry-run")
	}
	if c.NodesPath == "" {
		return errors.ConfigInvalid("nodes", "a navigation records file is required")
	}
	if c.OutputPath == "" {
		return errors.ConfigInvalid("yml-out", "an output path is required")
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return errors.ConfigInvalid("root", fmt.Sprintf("project root %s: %v", c.Root, err))
	}
	if !info.IsDir() {
		return errors.ConfigInvalid("root", fmt.Sprintf("project root %s is not a directory", c.Root))
	}
	return nil
}
