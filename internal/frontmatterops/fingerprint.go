package frontmatterops

import (
	"errors"
	"strings"

	"github.com/inful/mdfp"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatter"
)

// FingerprintKey is the header field holding the content fingerprint.
const FingerprintKey = mdfp.FingerprintField

// ComputeFingerprint computes the canonical content fingerprint for a page.
//
// Canonicalization:
//   - excludes the fingerprint field itself
//   - serializes the remaining fields as sorted YAML with LF newlines
//   - trims a single trailing newline from the serialized YAML before hashing
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}

	fieldsForHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == FingerprintKey {
			continue
		}
		fieldsForHash[k] = v
	}

	frontmatterForHash := ""
	if len(fieldsForHash) > 0 {
		serialized, err := frontmatter.SerializeYAML(fieldsForHash, frontmatter.Style{Newline: "\n"})
		if err != nil {
			return "", err
		}
		frontmatterForHash = trimSingleTrailingNewline(string(serialized))
	}

	return mdfp.CalculateFingerprintFromParts(frontmatterForHash, string(body)), nil
}

// VerifyFingerprint reports whether fields carry a fingerprint and whether it
// still matches the page content.
func VerifyFingerprint(fields map[string]any, body []byte) (present bool, matches bool, err error) {
	stored, ok := fields[FingerprintKey].(string)
	if !ok || strings.TrimSpace(stored) == "" {
		return false, false, nil
	}
	current, err := ComputeFingerprint(fields, body)
	if err != nil {
		return true, false, err
	}
	return true, strings.TrimSpace(stored) == current, nil
}

func trimSingleTrailingNewline(s string) string {
	if before, ok := strings.CutSuffix(s, "\r\n"); ok {
		return before
	}
	if before, ok := strings.CutSuffix(s, "\n"); ok {
		return before
	}
	return s
}

// StampDocument renders a page whose header ends with the fingerprint of the
// header fields before it and the body, as Read will see them later.
func StampDocument(h frontmatter.Header, body string) ([]byte, error) {
	fp, err := ComputeFingerprint(h.Map(), []byte(frontmatter.BodySeparator+body))
	if err != nil {
		return nil, err
	}
	stamped := make(frontmatter.Header, 0, len(h)+1)
	stamped = append(stamped, h...)
	stamped = stamped.Add(FingerprintKey, fp)
	return frontmatter.Document(stamped, body)
}
