package locl

import (
	"fmt"
	"sort"
	"strings"
)

// partialCategories are the plural categories whose presence marks an object
// as a plural form; each demands an accompanying "other".
var partialCategories = []string{"zero", "one", "two", "few", "many"}

// ValidatePlurals checks every language tree for incomplete plural shapes:
// a category-keyed object without an "other" entry, or a key_one suffix key
// without a key_other sibling. It returns one diagnostic per finding, sorted
// for stable output. Dev-mode constructions run this automatically and log
// each finding.
func ValidatePlurals(resources map[string]any) []string {
	var diags []string
	for lang, tree := range resources {
		node, ok := normalizeTree(tree).(map[string]any)
		if !ok {
			continue
		}
		diags = append(diags, validateNode(lang, "", node)...)
	}
	sort.Strings(diags)
	return diags
}

func validateNode(lang, path string, node map[string]any) []string {
	var diags []string

	if isPartialPluralObject(node) {
		diags = append(diags, fmt.Sprintf("plural object at %q (%s) has no \"other\" form", path, lang))
	}

	for key, child := range node {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}

		if base, found := strings.CutSuffix(key, "_one"); found {
			if _, ok := node[base+"_other"]; !ok {
				diags = append(diags, fmt.Sprintf("plural key %q (%s) has no %q sibling", childPath, lang, base+"_other"))
			}
		}

		if m, ok := child.(map[string]any); ok {
			diags = append(diags, validateNode(lang, childPath, m)...)
		}
	}

	return diags
}

// isPartialPluralObject reports whether a node carries plural category
// entries but no "other" form.
func isPartialPluralObject(node map[string]any) bool {
	if _, ok := node["other"].(string); ok {
		return false
	}
	for _, cat := range partialCategories {
		if _, ok := node[cat].(string); ok {
			return true
		}
	}
	return false
}
