package locl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sztsam/locl"
)

func TestValidatePlurals(t *testing.T) {
	t.Parallel()

	t.Run("complete shapes pass", func(t *testing.T) {
		t.Parallel()
		diags := locl.ValidatePlurals(map[string]any{
			"en": map[string]any{
				"messages": map[string]any{
					"one":   "one",
					"other": "many",
				},
				"item_one":   "one item",
				"item_other": "{count} items",
				"plain":      "text",
			},
		})
		require.Empty(t, diags)
	})

	t.Run("plural object missing other", func(t *testing.T) {
		t.Parallel()
		diags := locl.ValidatePlurals(map[string]any{
			"en": map[string]any{
				"messages": map[string]any{
					"one": "one",
				},
			},
		})
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0], "messages")
		assert.Contains(t, diags[0], "other")
	})

	t.Run("suffix key missing other sibling", func(t *testing.T) {
		t.Parallel()
		diags := locl.ValidatePlurals(map[string]any{
			"de": map[string]any{
				"nested": map[string]any{
					"item_one": "ein",
				},
			},
		})
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0], "nested.item_one")
		assert.Contains(t, diags[0], "item_other")
	})

	t.Run("findings across languages accumulate", func(t *testing.T) {
		t.Parallel()
		diags := locl.ValidatePlurals(map[string]any{
			"en": map[string]any{
				"a": map[string]any{"few": "x"},
			},
			"de": map[string]any{
				"b_one": "y",
			},
		})
		require.Len(t, diags, 2)
	})

	t.Run("non-plural objects are ignored", func(t *testing.T) {
		t.Parallel()
		diags := locl.ValidatePlurals(map[string]any{
			"en": map[string]any{
				"menu": map[string]any{
					"open":  "Open",
					"close": "Close",
				},
			},
		})
		require.Empty(t, diags)
	})
}
