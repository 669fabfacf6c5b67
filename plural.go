package locl

import (
	"regexp"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Category is a CLDR plural category.
type Category string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

// PluralRule determines which plural category applies to a count.
// Registering one via WithPluralRule overrides the CLDR rule for that language.
type PluralRule func(n int) Category

// pluralSuffixPattern recognizes keys that already carry a plural suffix,
// which disables the implicit plural trigger in T. The _zero and _two
// suffixes are intentionally not recognized here; keys ending in them still
// go through the implicit trigger.
var pluralSuffixPattern = regexp.MustCompile(`_(one|few|many|other)$`)

func hasPluralSuffix(key string) bool {
	return pluralSuffixPattern.MatchString(key)
}

// categoryFor resolves the plural category for a count in the given language,
// preferring a registered custom rule over the CLDR cardinal rules.
func (t *Translator) categoryFor(lang string, n int) Category {
	r := t.origin()
	if rule, ok := r.pluralRules[lang]; ok {
		return rule(n)
	}
	if rule, ok := r.pluralRules[normalizeLanguage(lang)]; ok {
		return rule(n)
	}

	abs := n
	if n < 0 {
		abs = -n
	}

	switch plural.Cardinal.MatchPlural(language.Make(lang), abs, 0, 0, 0, 0) {
	case plural.Zero:
		return CategoryZero
	case plural.One:
		return CategoryOne
	case plural.Two:
		return CategoryTwo
	case plural.Few:
		return CategoryFew
	case plural.Many:
		return CategoryMany
	default:
		return CategoryOther
	}
}

// countValue extracts a numeric "count" entry from the value bag.
// Non-numeric counts do not trigger pluralization.
func countValue(values M) (int, bool) {
	v, ok := values["count"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Plural resolves a pluralized translation for count and interpolates it.
// The count is injected into the value bag as "count".
//
// Resolution order: if the key resolves to an object of plural forms, the
// category entry is used, then "other", then the bare key. Otherwise the
// suffix forms key_<category>, key_other and the key itself are tried, each
// through the full language fallback chain.
func (t *Translator) Plural(key string, count int, values ...M) string {
	return t.pluralize(key, count, mergeValues(values), nil)
}

// Pluralf is Plural with an explicit formatter applied to the final result.
func (t *Translator) Pluralf(key string, count int, values M, formatter string, args ...string) string {
	return t.pluralize(key, count, values, &formatRef{name: formatter, args: args})
}

func (t *Translator) pluralize(key string, count int, values M, format *formatRef) string {
	merged := make(M, len(values)+1)
	for k, v := range values {
		merged[k] = v
	}
	merged["count"] = count
	values = merged
	category := t.categoryFor(t.currentLanguage(), count)

	var out string
	base, found := t.lookup(key)
	if obj, ok := base.(map[string]any); found && ok {
		out = t.pluralFromObject(key, obj, category, values)
	} else {
		out = t.pluralFromSuffix(key, base, found, category, values)
	}

	if format != nil {
		out = t.Format(out, format.name, format.args...)
	}
	return out
}

func (t *Translator) pluralFromObject(key string, obj map[string]any, category Category, values M) string {
	if s, ok := obj[string(category)].(string); ok {
		return t.renderTemplate(s, values)
	}
	if s, ok := obj["other"].(string); ok {
		t.warn("plural category missing, using \"other\"", "key", key, "category", string(category), "language", t.currentLanguage())
		return t.renderTemplate(s, values)
	}
	t.warn("plural object has no matching form", "key", key, "category", string(category), "language", t.currentLanguage())
	return key
}

func (t *Translator) pluralFromSuffix(key string, base any, baseFound bool, category Category, values M) string {
	v, ok := t.lookup(key + "_" + string(category))
	if !ok {
		v, ok = t.lookup(key + "_" + string(CategoryOther))
	}
	if !ok && baseFound {
		v, ok = base, true
	}
	if !ok {
		t.reportMissing(key)
		return t.renderTemplate(key, values)
	}
	if s, isStr := v.(string); isStr {
		return t.renderTemplate(s, values)
	}
	return key
}
