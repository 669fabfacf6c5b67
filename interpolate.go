package locl

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// selectCasePattern matches one "case {text}" pair inside a select expression.
var selectCasePattern = regexp.MustCompile(`(\w+)\s*\{([^{}]*)\}`)

// renderTemplate substitutes every token of a template with its resolved
// value. Without a value bag the template is returned verbatim, unresolved
// placeholders included.
//
// Substitution is textual: each resolved token replaces every occurrence of
// its exact raw text in the output, so identical tokens anywhere in the
// template are all replaced the first time one of them is processed.
func (t *Translator) renderTemplate(template string, values M) string {
	if values == nil {
		return template
	}

	out := template
	for _, tok := range scanTokens(template) {
		replacement, ok := t.resolveToken(tok.inner, values)
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, tok.raw, replacement)
	}
	return out
}

// resolveToken resolves the inner content of one token against the value
// bag. A false return leaves the raw token in place.
func (t *Translator) resolveToken(inner string, values M) (string, bool) {
	if strings.Contains(inner, "select") {
		return t.resolveSelect(inner, values)
	}

	field, pipe, hasPipe := strings.Cut(inner, "|")
	field = strings.TrimSpace(field)

	value, defined := values[field]

	if hasPipe {
		name, rawArgs, _ := strings.Cut(strings.TrimSpace(pipe), ":")
		name = strings.TrimSpace(name)

		if f, ok := t.origin().formatters[name]; ok {
			return f(value, splitFormatterArgs(rawArgs)), true
		}
		t.warn("formatter not found", "formatter", name, "language", t.currentLanguage())
	}

	switch v := value.(type) {
	case time.Time:
		return t.formatLocaleDate(v), true
	case *time.Time:
		if v != nil {
			return t.formatLocaleDate(*v), true
		}
	}

	if f, ok := asFloat(value); ok {
		return t.formatLocaleNumber(f), true
	}

	if defined {
		return fmt.Sprint(value), true
	}

	return "", false
}

// resolveSelect parses "<field>, select, case {text} ..." and picks the case
// matching the field's stringified value, falling back to the "other" case,
// then to the empty string. A missing field selects "other". A type tag that
// is not exactly "select" leaves the token unresolved.
func (t *Translator) resolveSelect(inner string, values M) (string, bool) {
	parts := splitTopLevel(inner, ',')
	if len(parts) < 3 {
		return "", false
	}
	if strings.TrimSpace(parts[1]) != "select" {
		return "", false
	}

	field := strings.TrimSpace(parts[0])
	remainder := strings.Join(parts[2:], ",")

	cases := make(map[string]string)
	for _, m := range selectCasePattern.FindAllStringSubmatch(remainder, -1) {
		cases[m[1]] = m[2]
	}

	selected := "other"
	if v, ok := values[field]; ok {
		selected = fmt.Sprint(v)
	}

	if text, ok := cases[selected]; ok {
		return text, true
	}
	if text, ok := cases["other"]; ok {
		return text, true
	}
	return "", true
}

func splitFormatterArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	args := strings.Split(raw, ",")
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return args
}

// formatLocaleDate renders an instant with the current language's default
// date layout.
func (t *Translator) formatLocaleDate(v time.Time) string {
	return v.Format(dateLayoutFor(t.currentLanguage()))
}

// formatLocaleNumber renders a number with the current language's digit
// grouping and decimal separator.
func (t *Translator) formatLocaleNumber(f float64) string {
	p := message.NewPrinter(language.Make(t.currentLanguage()))
	if f == float64(int64(f)) {
		return p.Sprint(number.Decimal(int64(f)))
	}
	return p.Sprint(number.Decimal(f))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
