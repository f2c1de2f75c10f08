package records

import (
	"bytes"
)

// sniffSampleSize matches the amount of input inspected before choosing a delimiter.
const sniffSampleSize = 4096

// Delimiters lists the candidate delimiters in tie-break order.
var Delimiters = []rune{',', ';', '|', '\t'}

// SniffDelimiter picks the delimiter of a sample.
//
// A delimiter that occurs the same non-zero number of times (outside quotes)
// on every complete sample line wins; among several such candidates the one
// with the most occurrences per line wins. When no candidate is consistent the
// one most frequent on the header line is used, and comma is the fallback.
func SniffDelimiter(sample []byte) rune {
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
		if i := bytes.LastIndexByte(sample, '\n'); i > 0 {
			sample = sample[:i]
		}
	}

	var lines [][]byte
	for _, l := range bytes.Split(sample, []byte("\n")) {
		l = bytes.TrimRight(l, "\r")
		if len(bytes.TrimSpace(l)) == 0 {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return ','
	}

	best, bestCount := rune(0), 0
	for _, d := range Delimiters {
		n := countOutsideQuotes(lines[0], d)
		if n == 0 {
			continue
		}
		consistent := true
		for _, l := range lines[1:] {
			if countOutsideQuotes(l, d) != n {
				consistent = false
				break
			}
		}
		if consistent && n > bestCount {
			best, bestCount = d, n
		}
	}
	if best != 0 {
		return best
	}

	for _, d := range Delimiters {
		if n := countOutsideQuotes(lines[0], d); n > bestCount {
			best, bestCount = d, n
		}
	}
	if best != 0 {
		return best
	}
	return ','
}

func countOutsideQuotes(line []byte, d rune) int {
	n := 0
	quoted := false
	for _, c := range string(line) {
		switch {
		case c == '"':
			quoted = !quoted
		case c == d && !quoted:
			n++
		}
	}
	return n
}
