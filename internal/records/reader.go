package records

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads all records of a delimiter-separated file.
func ReadFile(path string) ([]Record, error) {
	// #nosec G304 -- input paths are chosen by the operator.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f)
}

// Read decodes r (dropping a UTF-8 BOM), sniffs its delimiter and returns the
// non-blank data rows keyed by normalized header name.
func Read(r io.Reader) ([]Record, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = SniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	// Leading-space trimming would swallow empty tab-separated cells.
	cr.TrimLeadingSpace = cr.Comma != '\t'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = NormalizeKey(h)
	}

	var out []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec := Record{Line: line, Fields: make(map[string]string, len(keys))}
		for i, k := range keys {
			if k == "" {
				continue
			}
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			rec.Fields[k] = v
		}
		if rec.Blank() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
