// Package locl is a runtime key-lookup, interpolation and pluralization
// engine for translation resources.
//
// A Translator binds a current language, a fallback language, an optional
// namespace scope and a formatter registry over an immutable multi-language
// resource tree. Lookups walk dotted key paths with graceful degradation to
// the fallback language; templates carry {placeholder} tokens with optional
// formatter pipes and one-level select expressions; pluralization picks
// between category-keyed objects and suffix-keyed sibling forms using CLDR
// plural rules.
//
// # Basic Usage
//
//	tr, err := locl.New(
//		locl.WithResources(map[string]any{
//			"en": map[string]any{
//				"greeting": "Hello, {name}!",
//				"messages": map[string]any{
//					"one":   "You have one message.",
//					"other": "You have {count} messages.",
//				},
//			},
//			"de": map[string]any{
//				"greeting": "Hallo, {name}!",
//			},
//		}),
//		locl.WithFallbackLanguage("en"),
//		locl.WithLanguage("de"),
//	)
//
//	tr.T("greeting", locl.M{"name": "World"})
//	// Output: "Hallo, World!"
//
//	tr.Plural("messages", 5)
//	// Output: "You have 5 messages." (resolved through the "en" fallback)
//
// # Interpolation
//
// Tokens are outermost balanced {...} spans. A bare token substitutes the
// named value from the bag; a pipe routes it through a named formatter with
// colon-separated arguments:
//
//	"Hello, {name | upper}!"
//	"Total: {price | currency:EUR,de}"
//
// Select expressions choose between literal case texts:
//
//	"{gender, select, male {He} female {She} other {They}} is a person."
//
// Tokens whose value is absent from the bag are left verbatim, and calls
// without a value bag return the stored literal untouched.
//
// # Scoping
//
// A scope restricts lookups to one or more sub-trees:
//
//	scoped := tr.Clone("", "errors.validation")
//	scoped.T("required") // resolves errors.validation.required
//
// WithConfig instead returns a cached live view over the same instance with
// only language and/or scope substituted; Clone always produces an
// independent instance with its own caches.
//
// # File-Based Resources
//
// Load resources from JSON or YAML files using fs.FS:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	tr, err := locl.New(
//		locl.WithFallbackLanguage("en"),
//		locl.WithJSONDir(subFS),
//	)
//
// File convention: {lang}/{namespace}.json (or .yaml/.yml). Each namespace
// becomes a top-level branch of the language tree, directly usable as a
// scope.
//
// # Error Handling
//
// Only construction can fail. Every runtime miss degrades: unknown keys come
// back as themselves, unknown formatters leave values unformatted, and
// unresolved placeholders survive in the output. With WithDevMode each such
// miss is logged through slog; production instances stay silent.
package locl
