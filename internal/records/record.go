package records

import "strings"

// Record is one data row keyed by normalized header name.
type Record struct {
	// Line is the 1-based line in the input file where the row starts (the header is line 1).
	Line   int
	Fields map[string]string
}

// Get returns the trimmed value for key, or "" when the column is absent.
func (r Record) Get(key string) string {
	return r.Fields[key]
}

// Blank reports whether every field of the row is empty.
func (r Record) Blank() bool {
	for _, v := range r.Fields {
		if v != "" {
			return false
		}
	}
	return true
}

// NormalizeKey folds a header name to its canonical form.
func NormalizeKey(k string) string {
	k = strings.TrimSpace(k)
	k = strings.TrimLeft(k, "\ufeff")
	return strings.ToLower(strings.TrimSpace(k))
}
