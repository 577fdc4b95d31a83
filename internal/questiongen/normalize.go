package questiongen

import "strings"

const (
	tagOpen   = "<json>"
	tagClose  = "</json>"
	fenceMark = "```"
)

// Normalize strips whitespace and the wrappers models put around JSON: a
// <json>...</json> tag pair and a ``` or ```json code fence. The two
// wrappers are handled independently, tag first, so either, both or
// neither may be present. Text without wrappers comes back trimmed and
// otherwise unchanged.
func Normalize(text string) string {
	s := strings.TrimSpace(text)

	if len(s) >= len(tagOpen)+len(tagClose) &&
		strings.HasPrefix(s, tagOpen) && strings.HasSuffix(s, tagClose) {
		s = strings.TrimSpace(s[len(tagOpen) : len(s)-len(tagClose)])
	}

	if len(s) >= 2*len(fenceMark) &&
		strings.HasPrefix(s, fenceMark) && strings.HasSuffix(s, fenceMark) {
		inner := s[len(fenceMark) : len(s)-len(fenceMark)]
		if len(inner) >= 4 && strings.EqualFold(inner[:4], "json") {
			inner = inner[4:]
		}
		s = strings.TrimSpace(inner)
	}

	return s
}
