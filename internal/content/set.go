package content

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/logfields"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

// Set holds content configs by node id.
type Set struct {
	byID  map[string]*Config
	order []string
}

// NewSet builds a Set from content records. Records without an id are
// skipped; a later record for the same id replaces the earlier one.
func NewSet(recs []records.Record) *Set {
	s := &Set{byID: make(map[string]*Config)}
	for _, rec := range recs {
		c := NewConfig(rec)
		if c == nil {
			slog.Debug("Skipping content record without id", logfields.Line(rec.Line))
			continue
		}
		if _, dup := s.byID[c.ID]; !dup {
			s.order = append(s.order, c.ID)
		} else {
			slog.Debug("Content record replaces an earlier one", logfields.NodeID(c.ID), logfields.Line(c.Line))
		}
		s.byID[c.ID] = c
	}
	return s
}

// Load reads the content records at path. A missing file yields an empty set
// and no error. Any other read failure also yields an empty set, together
// with the error so the caller can report it; it is never fatal.
func Load(path string) (*Set, error) {
	if path == "" {
		return NewSet(nil), nil
	}
	recs, err := records.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("No content records; pages fall back to stubs", logfields.Path(path))
		return NewSet(nil), nil
	}
	if err != nil {
		return NewSet(nil), err
	}
	s := NewSet(recs)
	slog.Debug("Loaded content records", logfields.Path(path), logfields.Count(s.Len()))
	return s, nil
}

// Lookup returns the config bound to id, or nil.
func (s *Set) Lookup(id string) *Config {
	if s == nil {
		return nil
	}
	return s.byID[id]
}

// All returns the configs in first-seen order.
func (s *Set) All() []*Config {
	if s == nil {
		return nil
	}
	out := make([]*Config, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of distinct ids.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
