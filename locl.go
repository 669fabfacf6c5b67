package locl

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// M is a value bag for interpolation placeholders.
type M map[string]any

// formatRef is an explicit formatter request attached to a translate call.
type formatRef struct {
	name string
	args []string
}

// Translator binds a current language, a fallback language, an optional
// scope and a formatter registry over an immutable resource tree.
//
// Internal caches are guarded, so concurrent reads are safe; interleaving
// ChangeLanguage with reads is last-writer-wins. Hosts that need stable
// per-request languages should prefer Clone or WithConfig over mutating a
// shared instance.
type Translator struct {
	// shared, immutable after New
	resources    map[string]any
	fallbackLang string
	formatters   map[string]Formatter
	pluralRules  map[string]PluralRule
	missingKey   func(lang, key string)
	logger       *slog.Logger
	languages    []string
	devMode      bool
	useCache     bool

	// guarded by mu
	mu         sync.RWMutex
	language   string
	scopeCache map[string]scopedEntry
	viewCache  map[string]*Translator

	// set only on instances produced by New and Clone
	scope                 []string
	skipDefaultFormatters bool

	// set only on views produced by WithConfig
	base          *Translator
	overrideLang  bool
	overrideScope bool
}

// Option configures a Translator during construction.
type Option func(*Translator) error

// New creates a Translator. Resources and a fallback language are required;
// everything else is optional. The resource tree is deep-copied once, so the
// instance owns its data and later mutations of the input cannot reach it.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		resources:   make(map[string]any),
		formatters:  make(map[string]Formatter),
		pluralRules: make(map[string]PluralRule),
		scopeCache:  make(map[string]scopedEntry),
		viewCache:   make(map[string]*Translator),
		useCache:    true,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(t.resources) == 0 {
		return nil, ErrNoResources
	}
	if t.fallbackLang == "" {
		return nil, ErrNoFallbackLanguage
	}

	// Options collected user formatters directly; merge them over the
	// defaults so user entries win on name collisions.
	if !t.skipDefaultFormatters {
		merged := defaultFormatters()
		for name, f := range t.formatters {
			merged[name] = f
		}
		t.formatters = merged
	}

	if t.language == "" {
		t.language = t.fallbackLang
	} else {
		t.language = t.resolveLanguage(t.language)
	}

	t.languages = availableLanguages(t.resources, t.fallbackLang)

	if t.logger == nil {
		t.logger = slog.Default()
	}

	if t.devMode {
		for _, d := range ValidatePlurals(t.resources) {
			t.logger.Warn("locl: " + d)
		}
	}

	return t, nil
}

// WithResources sets the full resource tree: language code to translation
// tree. Values may be plain strings or nested objects; plural forms are
// either category-keyed objects or _<category> suffixed sibling keys.
func WithResources(resources map[string]any) Option {
	return func(t *Translator) error {
		for lang, tree := range resources {
			t.resources[lang] = normalizeTree(tree)
		}
		return nil
	}
}

// WithFallbackLanguage sets the language searched when the current language
// misses a key. Required.
func WithFallbackLanguage(lang string) Option {
	return func(t *Translator) error {
		t.fallbackLang = lang
		return nil
	}
}

// WithLanguage sets the initial language. It is normalized to its first two
// characters; a language absent from the resources silently falls back to
// the fallback language.
func WithLanguage(lang string) Option {
	return func(t *Translator) error {
		t.language = lang
		return nil
	}
}

// WithScope restricts lookups to one or more dotted sub-trees of the
// resource tree. Multiple paths are merged into a synthetic tree, each
// grafted under its own location.
func WithScope(paths ...string) Option {
	return func(t *Translator) error {
		t.scope = append(t.scope, paths...)
		return nil
	}
}

// WithFormatter registers a named formatter, overriding a default of the
// same name.
func WithFormatter(name string, f Formatter) Option {
	return func(t *Translator) error {
		if f == nil {
			return ErrNilFormatter
		}
		t.formatters[name] = f
		return nil
	}
}

// WithFormatters registers a set of named formatters at once.
func WithFormatters(formatters map[string]Formatter) Option {
	return func(t *Translator) error {
		for name, f := range formatters {
			if f == nil {
				return ErrNilFormatter
			}
			t.formatters[name] = f
		}
		return nil
	}
}

// WithoutDefaultFormatters drops the built-in formatter registry; only
// explicitly registered formatters remain available.
func WithoutDefaultFormatters() Option {
	return func(t *Translator) error {
		t.skipDefaultFormatters = true
		return nil
	}
}

// WithDevMode routes soft-miss diagnostics (missing keys, scopes and
// formatters) to the logger. Production instances stay silent.
func WithDevMode() Option {
	return func(t *Translator) error {
		t.devMode = true
		return nil
	}
}

// WithLogger sets the diagnostic logger used in dev mode.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) error {
		t.logger = logger
		return nil
	}
}

// WithoutCache disables the scoped-subtree cache. Results are identical;
// scopes are just recomputed on every lookup.
func WithoutCache() Option {
	return func(t *Translator) error {
		t.useCache = false
		return nil
	}
}

// WithPluralRule overrides the CLDR plural rule for a language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(t *Translator) error {
		if rule == nil {
			return ErrNilPluralRule
		}
		t.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a key resolves in
// neither the current nor the fallback language. Useful for detecting
// untranslated keys during development or monitoring gaps in translations.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(t *Translator) error {
		t.missingKey = handler
		return nil
	}
}

// T translates a dotted key and interpolates it with the given values.
//
// Without values the stored literal is returned untouched, placeholders
// included. A key that resolves nowhere comes back as itself. A value bag
// carrying a numeric "count" triggers pluralization: the key is rewritten to
// key_<category> and resolved directly (keys already ending in _one, _few,
// _many or _other are exempt). Keys resolving to nested objects are not
// renderable here; use GetObj.
func (t *Translator) T(key string, values ...M) string {
	return t.translate(key, mergeValues(values), nil)
}

// Tt is T for keys assembled at runtime rather than written as literals.
// Behavior is identical; the separate name keeps generated typed accessors
// distinguishable from dynamic call sites.
func (t *Translator) Tt(key string, values ...M) string {
	return t.translate(key, mergeValues(values), nil)
}

// Tf is T with an explicit formatter applied to the final result.
func (t *Translator) Tf(key string, values M, formatter string, args ...string) string {
	return t.translate(key, values, &formatRef{name: formatter, args: args})
}

func (t *Translator) translate(key string, values M, format *formatRef) string {
	if values != nil {
		if count, ok := countValue(values); ok && !hasPluralSuffix(key) {
			return t.implicitPlural(key, count, values, format)
		}
	}

	v, found := t.lookup(key)
	if !found {
		t.reportMissing(key)
		return key
	}
	s, isStr := v.(string)
	if !isStr {
		t.warn("key resolves to an object, not a string", "key", key, "language", t.currentLanguage())
		return key
	}

	out := t.renderTemplate(s, values)
	if format != nil {
		out = t.Format(out, format.name, format.args...)
	}
	return out
}

// implicitPlural resolves key_<category> through the language fallback chain
// only. Unlike Plural it does not chain to _other or the base key; a total
// miss yields the empty string.
func (t *Translator) implicitPlural(key string, count int, values M, format *formatRef) string {
	category := t.categoryFor(t.currentLanguage(), count)
	v, found := t.lookup(key + "_" + string(category))
	if !found {
		t.reportMissing(key + "_" + string(category))
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		return ""
	}
	out := t.renderTemplate(s, values)
	if format != nil {
		out = t.Format(out, format.name, format.args...)
	}
	return out
}

// Get resolves a key through the fallback chain without pluralization or
// interpolation. Objects come back as detached deep copies.
func (t *Translator) Get(key string) (any, bool) {
	v, ok := t.lookup(key)
	if !ok {
		return nil, false
	}
	return copyTree(v), true
}

// GetObj resolves a key to a nested object. Non-object values report false.
// The returned map is a detached deep copy; mutating it never touches the
// underlying resources.
func (t *Translator) GetObj(key string) (map[string]any, bool) {
	v, ok := t.lookup(key)
	if !ok {
		return nil, false
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		return nil, false
	}
	return copyTree(m).(map[string]any), true
}

// Format applies a named formatter to a value. An unknown formatter name
// degrades to plain stringification with a dev-mode warning.
func (t *Translator) Format(value any, formatter string, args ...string) string {
	f, ok := t.origin().formatters[formatter]
	if !ok {
		t.warn("formatter not found", "formatter", formatter)
		return fmt.Sprint(value)
	}
	return f(value, args)
}

// ChangeLanguage switches the current language in place. The language is
// normalized to its first two characters; one absent from the resources
// silently falls back to the fallback language. Called on a view, it
// switches the underlying instance.
func (t *Translator) ChangeLanguage(lang string) {
	r := t.origin()
	resolved := r.resolveLanguage(lang)
	r.mu.Lock()
	r.language = resolved
	r.mu.Unlock()
}

// ViewConfig overrides a view's language and/or scope. Empty fields keep
// delegating to the underlying instance.
type ViewConfig struct {
	Language string
	Scope    []string
}

// WithConfig returns a live view over the same instance with the given
// language and/or scope substituted. Everything else, caches included, is
// shared; a view without a language override follows the base's
// ChangeLanguage. Identical override pairs return the same cached view.
func (t *Translator) WithConfig(cfg ViewConfig) *Translator {
	r := t.origin()

	key := cfg.Language + "\x1f" + strings.Join(cfg.Scope, "\x1f")
	r.mu.Lock()
	defer r.mu.Unlock()

	if view, ok := r.viewCache[key]; ok {
		return view
	}

	view := &Translator{base: r}
	if cfg.Language != "" {
		view.language = r.resolveLanguage(cfg.Language)
		view.overrideLang = true
	}
	if cfg.Scope != nil {
		view.scope = cfg.Scope
		view.overrideScope = true
	}
	r.viewCache[key] = view
	return view
}

// Clone creates a wholly independent Translator sharing the same resources,
// formatters and configuration but with its own language, scope and caches.
// An empty language keeps the current one; omitting scope keeps the current
// scope.
func (t *Translator) Clone(language string, scope ...string) *Translator {
	r := t.origin()

	c := &Translator{
		resources:             r.resources,
		fallbackLang:          r.fallbackLang,
		formatters:            r.formatters,
		pluralRules:           r.pluralRules,
		missingKey:            r.missingKey,
		logger:                r.logger,
		languages:             r.languages,
		devMode:               r.devMode,
		useCache:              r.useCache,
		skipDefaultFormatters: r.skipDefaultFormatters,
		scopeCache:            make(map[string]scopedEntry),
		viewCache:             make(map[string]*Translator),
	}

	if language != "" {
		c.language = r.resolveLanguage(language)
	} else {
		c.language = t.currentLanguage()
	}
	if len(scope) > 0 {
		c.scope = scope
	} else {
		c.scope = t.currentScope()
	}
	return c
}

// Language returns the effective current language.
func (t *Translator) Language() string {
	return t.currentLanguage()
}

// FallbackLanguage returns the fallback language fixed at construction.
func (t *Translator) FallbackLanguage() string {
	return t.origin().fallbackLang
}

// Languages returns the available languages, fallback first, the rest
// sorted alphabetically.
func (t *Translator) Languages() []string {
	return t.origin().languages
}

// origin returns the instance owning shared state: the view's base, or the
// instance itself.
func (t *Translator) origin() *Translator {
	if t.base != nil {
		return t.base
	}
	return t
}

func (t *Translator) currentLanguage() string {
	if t.base != nil && t.overrideLang {
		return t.language
	}
	r := t.origin()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.language
}

func (t *Translator) currentScope() []string {
	if t.base != nil && !t.overrideScope {
		return t.base.scope
	}
	return t.scope
}

// resolveLanguage normalizes a language code to its first two characters and
// checks membership in the resources; a mismatch falls back silently.
func (t *Translator) resolveLanguage(lang string) string {
	norm := normalizeLanguage(lang)
	if _, ok := t.origin().resources[norm]; ok {
		return norm
	}
	return t.origin().fallbackLang
}

func normalizeLanguage(lang string) string {
	if len(lang) > 2 {
		return lang[:2]
	}
	return lang
}

func availableLanguages(resources map[string]any, fallback string) []string {
	langs := make([]string, 0, len(resources))
	for lang := range resources {
		if lang != fallback {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	if _, ok := resources[fallback]; ok {
		langs = append([]string{fallback}, langs...)
	}
	return langs
}

// warn emits a dev-mode diagnostic. Production instances are silent.
func (t *Translator) warn(msg string, args ...any) {
	r := t.origin()
	if !r.devMode || r.logger == nil {
		return
	}
	r.logger.Warn("locl: "+msg, args...)
}

func mergeValues(values []M) M {
	if len(values) == 0 {
		return nil
	}
	if len(values) == 1 {
		return values[0]
	}
	merged := make(M)
	for _, m := range values {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
