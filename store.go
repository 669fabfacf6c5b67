package locl

import "strings"

// scopedEntry caches a resolved scope for one language, including misses.
type scopedEntry struct {
	tree any
}

// normalizeTree deep-copies arbitrary resource input into the canonical
// internal shape: map[string]any nodes with string (or plural-object) leaves.
// The copy is the immutability boundary — the canonical tree is never handed
// out, and nothing the caller keeps can reach it.
func normalizeTree(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = normalizeTree(child)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = child
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = normalizeTree(child)
		}
		return out
	default:
		return v
	}
}

// copyTree returns a detached deep copy of a canonical tree node, safe to
// hand to callers.
func copyTree(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[k] = copyTree(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = copyTree(child)
		}
		return out
	default:
		return v
	}
}

// walkPath descends a tree one dotted segment at a time. Any missing segment
// fails the walk.
func walkPath(node any, path string) (any, bool) {
	cur := node
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// resolveKey looks a dotted key up in a tree. At each node the remaining
// joined path is tried as a literal key first, so resource keys that contain
// dots themselves stay addressable; only then does the walk descend one
// segment.
func resolveKey(node any, key string) (any, bool) {
	segments := strings.Split(key, ".")
	cur := node
	for i := 0; i < len(segments); i++ {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok := m[strings.Join(segments[i:], ".")]; ok {
			return v, true
		}
		if cur, ok = m[segments[i]]; !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// scopedTree returns the translation tree to search for a language under the
// instance's effective scope, consulting the (language, scope) cache when
// caching is enabled. Cache entries are monotonic for the instance lifetime;
// disabling the cache changes only recomputation frequency, never results.
func (t *Translator) scopedTree(lang string) any {
	scope := t.currentScope()
	r := t.origin()

	root, hasLang := r.resources[lang]
	if len(scope) == 0 {
		if !hasLang {
			return nil
		}
		return root
	}

	key := lang + "\x1f" + strings.Join(scope, "\x1f")
	if r.useCache {
		r.mu.RLock()
		entry, ok := r.scopeCache[key]
		r.mu.RUnlock()
		if ok {
			return entry.tree
		}
	}

	tree := t.buildScopedTree(lang, root, scope)

	if r.useCache {
		r.mu.Lock()
		r.scopeCache[key] = scopedEntry{tree: tree}
		r.mu.Unlock()
	}
	return tree
}

func (t *Translator) buildScopedTree(lang string, root any, scope []string) any {
	if len(scope) == 1 {
		tree, ok := walkPath(root, scope[0])
		if !ok {
			t.warn("scope not found", "scope", scope[0], "language", lang)
			return nil
		}
		return tree
	}

	merged := make(map[string]any)
	grafted := false
	for _, path := range scope {
		sub, ok := walkPath(root, path)
		if !ok || sub == "" {
			t.warn("scope not found", "scope", path, "language", lang)
			continue
		}
		graft(merged, path, sub)
		grafted = true
	}
	if !grafted {
		return nil
	}
	return merged
}

// graft places a sub-tree into a synthetic tree at its dotted location,
// creating intermediate containers as needed. An already-populated slot is
// never overwritten; only absent entries are filled in.
func graft(dst map[string]any, path string, sub any) {
	segments := strings.Split(path, ".")
	cur := dst
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			if _, exists := cur[seg]; exists {
				return
			}
			next = make(map[string]any)
			cur[seg] = next
		}
		cur = next
	}
	leaf := segments[len(segments)-1]
	if _, exists := cur[leaf]; !exists {
		cur[leaf] = sub
	}
}

// lookup resolves a dotted key through the current language's scoped tree,
// then the fallback language's. Each miss emits a dev-mode warning; a total
// miss additionally notifies the missing-key handler.
func (t *Translator) lookup(key string) (any, bool) {
	r := t.origin()
	lang := t.currentLanguage()

	if v, ok := resolveKey(t.scopedTree(lang), key); ok {
		return v, true
	}
	t.warn("translation missing", "key", key, "language", lang)

	if lang != r.fallbackLang {
		if v, ok := resolveKey(t.scopedTree(r.fallbackLang), key); ok {
			return v, true
		}
		t.warn("translation missing in fallback language", "key", key, "language", r.fallbackLang)
	}
	return nil, false
}

// reportMissing notifies the missing-key handler about a key that failed
// final resolution.
func (t *Translator) reportMissing(key string) {
	r := t.origin()
	if r.missingKey != nil {
		r.missingKey(t.currentLanguage(), key)
	}
}
