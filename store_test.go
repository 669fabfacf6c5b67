package locl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sztsam/locl"
)

func scopeResources() map[string]any {
	return map[string]any{
		"en": map[string]any{
			"common": map[string]any{
				"hello": "Hello",
				"deep": map[string]any{
					"leaf": "Deep leaf",
				},
			},
			"errors": map[string]any{
				"not_found": "Not found",
				"validation": map[string]any{
					"required": "Field {field} is required",
				},
			},
			"unrelated": "Top-level value",
		},
		"de": map[string]any{
			"common": map[string]any{
				"hello": "Hallo",
			},
		},
	}
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("single scope isolates a sub-tree", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("common"),
		)
		require.NoError(t, err)

		require.Equal(t, "Hello", tr.T("hello"))
		require.Equal(t, "Deep leaf", tr.T("deep.leaf"))

		// Sibling top-level keys are invisible without re-scoping.
		require.Equal(t, "unrelated", tr.T("unrelated"))
		require.Equal(t, "errors.not_found", tr.T("errors.not_found"))
	})

	t.Run("dotted scope path", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("errors.validation"),
		)
		require.NoError(t, err)

		require.Equal(t, "Field email is required", tr.T("required", locl.M{"field": "email"}))
	})

	t.Run("multiple scopes graft under their own roots", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("common", "errors.validation"),
		)
		require.NoError(t, err)

		require.Equal(t, "Hello", tr.T("common.hello"))
		require.Equal(t, "Field x is required", tr.T("errors.validation.required", locl.M{"field": "x"}))
		require.Equal(t, "unrelated", tr.T("unrelated"))
	})

	t.Run("unresolvable scope paths are skipped", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("common", "missing.path"),
		)
		require.NoError(t, err)

		require.Equal(t, "Hello", tr.T("common.hello"))
		require.Equal(t, "missing.path.x", tr.T("missing.path.x"))
	})

	t.Run("scope resolves per queried language", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithLanguage("de"),
			locl.WithScope("common"),
		)
		require.NoError(t, err)

		require.Equal(t, "Hallo", tr.T("hello"))
		// Present only under the fallback language's scoped tree.
		require.Equal(t, "Deep leaf", tr.T("deep.leaf"))
	})

	t.Run("disabled cache yields identical results", func(t *testing.T) {
		t.Parallel()
		cached, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("common", "errors"),
		)
		require.NoError(t, err)

		uncached, err := locl.New(
			locl.WithResources(scopeResources()),
			locl.WithFallbackLanguage("en"),
			locl.WithScope("common", "errors"),
			locl.WithoutCache(),
		)
		require.NoError(t, err)

		keys := []string{"common.hello", "common.deep.leaf", "errors.not_found", "nope"}
		for _, key := range keys {
			require.Equal(t, cached.T(key), uncached.T(key))
			// Repeated lookups hit the cache path on the cached instance.
			require.Equal(t, cached.T(key), uncached.T(key))
		}
	})
}
