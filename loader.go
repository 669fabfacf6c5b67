package locl

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads resources from JSON files in an fs.FS.
// The fs.FS root must contain language directories directly; each file
// becomes a top-level branch of that language's tree, usable as a scope.
// File convention: {lang}/{namespace}.json
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) Option {
	return func(t *Translator) error {
		return loadDir(t, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir loads resources from YAML files in an fs.FS.
// File convention: {lang}/{namespace}.yaml or {lang}/{namespace}.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(t *Translator) error {
		return loadDir(t, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(t *Translator, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		// Case-insensitive comparison handles both .YAML and .yaml extensions across different systems
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		// Extract the language from the directory name and the namespace
		// from the filename.
		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var tree map[string]any
		if err := unmarshal(data, &tree); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		langTree, ok := t.resources[lang].(map[string]any)
		if !ok {
			langTree = make(map[string]any)
			t.resources[lang] = langTree
		}
		langTree[namespace] = normalizeTree(tree)

		return nil
	})
}
