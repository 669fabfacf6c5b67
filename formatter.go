package locl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter transforms a raw value plus string arguments into display text.
// Formatters are looked up by name from interpolation pipes ({price |
// currency:EUR}) and from explicit Format calls.
type Formatter func(value any, args []string) string

// dateLayoutFor returns the default date layout for a language.
// The table mirrors common regional conventions; unknown languages fall back
// to the US layout.
func dateLayoutFor(lang string) string {
	switch normalizeLanguage(lang) {
	case "de", "pl", "ru", "uk", "cs":
		return "02.01.2006"
	case "fr", "es", "pt", "it", "ar", "nl":
		return "02/01/2006"
	case "ja":
		return "2006/01/02"
	case "zh":
		return "2006-01-02"
	case "ko":
		return "2006.01.02"
	default:
		return "01/02/2006"
	}
}

func dateLayoutForStyle(lang, style string) string {
	switch style {
	case "medium":
		return "Jan 2, 2006"
	case "long":
		return "January 2, 2006"
	case "full":
		return "Monday, January 2, 2006"
	default:
		return dateLayoutFor(lang)
	}
}

// defaultFormatters builds the built-in registry. User formatters are merged
// over it, overriding on name collision.
func defaultFormatters() map[string]Formatter {
	return map[string]Formatter{
		"upper": func(v any, _ []string) string {
			return strings.ToUpper(stringify(v))
		},
		"lower": func(v any, _ []string) string {
			return strings.ToLower(stringify(v))
		},
		"capitalize": func(v any, _ []string) string {
			s := stringify(v)
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError {
				return s
			}
			return string(unicode.ToUpper(r)) + s[size:]
		},
		"trim": func(v any, _ []string) string {
			return strings.TrimSpace(stringify(v))
		},
		"truncate":     formatTruncate,
		"number":       formatNumber,
		"currency":     formatCurrency,
		"date":         formatDate,
		"relativeDate": formatRelativeDate,
		"json":         formatJSON,
		"yesNo": func(v any, args []string) string {
			return pickBool(v, args, "Yes", "No")
		},
		"boolean": func(v any, args []string) string {
			return pickBool(v, args, "true", "false")
		},
		"padStart": func(v any, args []string) string {
			return pad(v, args, true)
		},
		"padEnd": func(v any, args []string) string {
			return pad(v, args, false)
		},
	}
}

func formatTruncate(v any, args []string) string {
	s := stringify(v)
	length := 10
	suffix := "..."
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
			length = n
		}
	}
	if len(args) > 1 {
		suffix = args[1]
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + suffix
}

func formatNumber(v any, args []string) string {
	f, ok := asFloat(v)
	if !ok {
		return stringify(v)
	}

	locale := "en"
	style := "decimal"
	if len(args) > 0 && args[0] != "" {
		locale = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		style = args[1]
	}

	p := message.NewPrinter(language.Make(locale))
	if style == "percent" {
		return p.Sprint(number.Percent(f))
	}
	if f == float64(int64(f)) {
		return p.Sprint(number.Decimal(int64(f)))
	}
	return p.Sprint(number.Decimal(f))
}

func formatCurrency(v any, args []string) string {
	f, ok := asFloat(v)
	if !ok {
		return stringify(v)
	}

	code := "USD"
	locale := "en"
	if len(args) > 0 && args[0] != "" {
		code = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		locale = args[1]
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	p := message.NewPrinter(language.Make(locale))
	return p.Sprint(currency.Symbol(unit.Amount(f)))
}

func formatDate(v any, args []string) string {
	instant, ok := timeValue(v)
	if !ok {
		return stringify(v)
	}

	locale := "en"
	style := ""
	if len(args) > 0 && args[0] != "" {
		locale = args[0]
	}
	if len(args) > 1 {
		style = args[1]
	}
	return instant.Format(dateLayoutForStyle(locale, style))
}

// formatRelativeDate buckets the distance between the value and now into
// seconds, minutes, hours or days and renders it with ago/in phrasing.
func formatRelativeDate(v any, _ []string) string {
	instant, ok := timeValue(v)
	if !ok {
		return stringify(v)
	}

	delta := time.Until(instant)
	past := delta < 0
	if past {
		delta = -delta
	}

	seconds := int(delta.Seconds())
	var n int
	var unit string
	switch {
	case seconds < 60:
		n, unit = seconds, "second"
	case seconds < 3600:
		n, unit = seconds/60, "minute"
	case seconds < 86400:
		n, unit = seconds/3600, "hour"
	default:
		n, unit = seconds/86400, "day"
	}
	if n != 1 {
		unit += "s"
	}

	if past {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("in %d %s", n, unit)
}

func formatJSON(v any, _ []string) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return stringify(v)
	}
	return string(data)
}

func pickBool(v any, args []string, yes, no string) string {
	if len(args) > 0 && args[0] != "" {
		yes = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		no = args[1]
	}
	if isTruthy(v) {
		return yes
	}
	return no
}

func pad(v any, args []string, start bool) string {
	s := stringify(v)
	target := 0
	fill := " "
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 0 {
			target = n
		}
	}
	if len(args) > 1 && args[1] != "" {
		fill = args[1]
	}

	runes := []rune(s)
	fillRunes := []rune(fill)
	if len(runes) >= target || len(fillRunes) == 0 {
		return s
	}

	padding := make([]rune, 0, target-len(runes))
	for i := 0; len(padding) < target-len(runes); i++ {
		padding = append(padding, fillRunes[i%len(fillRunes)])
	}

	if start {
		return string(padding) + s
	}
	return s + string(padding)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func isTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	default:
		if f, ok := asFloat(v); ok {
			return f != 0
		}
		return true
	}
}

func timeValue(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x != nil {
			return *x, true
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, x); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
