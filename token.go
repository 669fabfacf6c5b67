package locl

import "strings"

// token is one outermost balanced {...} span of a template.
type token struct {
	raw   string // exact substring including the outer braces
	inner string // trimmed content between the outer braces
}

// scanTokens extracts every outermost balanced {...} span from a template in
// a single left-to-right pass. Braces nested inside a span stay part of that
// span's raw text and never produce tokens of their own. An opening brace
// that is never closed yields no token; the text from it onward is left
// untouched.
func scanTokens(template string) []token {
	var tokens []token
	depth := 0
	start := -1

	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				raw := template[start : i+1]
				tokens = append(tokens, token{
					raw:   raw,
					inner: strings.TrimSpace(raw[1 : len(raw)-1]),
				})
			}
		}
	}

	return tokens
}

// splitTopLevel splits s on sep, ignoring separators nested inside braces.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}

	return append(parts, s[last:])
}
