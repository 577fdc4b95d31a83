package questiongen

import "strings"

// History is the ordered list of fingerprints a session has already been
// served for one test type, oldest first.
type History []string

// Contains reports whether fp duplicates an entry: either text contains
// the other, ignoring case. Empty fingerprints never match.
func (h History) Contains(fp string) bool {
	fp = strings.ToLower(fp)
	if fp == "" {
		return false
	}
	for _, prev := range h {
		if prev == "" {
			continue
		}
		prev = strings.ToLower(prev)
		if strings.Contains(prev, fp) || strings.Contains(fp, prev) {
			return true
		}
	}
	return false
}

// Trim keeps the most recent max entries. It always returns a copy.
func (h History) Trim(max int) History {
	start := 0
	if max >= 0 && len(h) > max {
		start = len(h) - max
	}
	out := make(History, len(h)-start)
	copy(out, h[start:])
	return out
}
