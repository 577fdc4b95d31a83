package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Top-level keys of the two documents.
const (
	GrammarDataKey = "GRAMMAR_DATA"
	ReadingDataKey = "READING_DATA"
)

// ParseError reports model output that is not a valid question-set
// document.
type ParseError struct {
	Kind    Kind
	Snippet string // start of the offending text
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s set: %v (text: %q)", e.Kind, e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

const snippetLen = 120

func newParseError(kind Kind, text string, err error) *ParseError {
	snippet := text
	if len(snippet) > snippetLen {
		cut := snippetLen
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut] + "..."
	}
	return &ParseError{Kind: kind, Snippet: snippet, Err: err}
}

// ParseGrammar decodes a normalized grammar-set document. Decoding is
// strict: raw control characters inside strings are an error.
func ParseGrammar(text string) ([]GrammarItem, error) {
	var doc struct {
		Items *[]GrammarItem `json:"GRAMMAR_DATA"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, newParseError(KindGrammar, text, err)
	}
	if doc.Items == nil {
		return nil, newParseError(KindGrammar, text, fmt.Errorf("missing %s key", GrammarDataKey))
	}
	return *doc.Items, nil
}

// ParseReading decodes a normalized reading-set document. Passages often
// carry literal newlines or tabs inside JSON strings, so those are escaped
// before decoding.
func ParseReading(text string) ([]ReadingItem, error) {
	var doc struct {
		Items *[]ReadingItem `json:"READING_DATA"`
	}
	if err := json.Unmarshal([]byte(escapeControlChars(text)), &doc); err != nil {
		return nil, newParseError(KindReading, text, err)
	}
	if doc.Items == nil {
		return nil, newParseError(KindReading, text, fmt.Errorf("missing %s key", ReadingDataKey))
	}
	return *doc.Items, nil
}

// escapeControlChars rewrites raw control characters (U+0000-U+001F) that
// appear inside JSON string literals as escapes. Characters outside
// strings are structural whitespace and are left alone.
func escapeControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString, escaped := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString && c < 0x20:
			switch c {
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				fmt.Fprintf(&b, `\u%04x`, c)
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
