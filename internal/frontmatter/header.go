package frontmatter

// Quoted is a string value emitted double-quoted (titles, descriptions).
type Quoted string

// Field is one entry of an ordered header.
type Field struct {
	Key   string
	Value any
}

// Header is an ordered set of frontmatter fields. Values may be strings,
// Quoted, bools, ints or nested Headers.
type Header []Field

// Add appends a field.
func (h Header) Add(key string, value any) Header {
	return append(h, Field{Key: key, Value: value})
}

// Get returns the value of key.
func (h Header) Get(key string) (any, bool) {
	for _, f := range h {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Map converts the header to the plain map form ParseYAML returns, so a
// header and its parsed-back copy compare and fingerprint alike.
func (h Header) Map() map[string]any {
	out := make(map[string]any, len(h))
	for _, f := range h {
		out[f.Key] = plainValue(f.Value)
	}
	return out
}

func plainValue(v any) any {
	switch vv := v.(type) {
	case Quoted:
		return string(vv)
	case Header:
		return vv.Map()
	default:
		return v
	}
}
