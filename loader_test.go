package locl_test

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sztsam/locl"
)

//go:embed testdata
var testdataFS embed.FS

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	subFS, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)

	t.Run("loads JSON resources from fs.FS", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithFallbackLanguage("en"),
			locl.WithJSONDir(subFS),
		)
		require.NoError(t, err)

		require.Equal(t, "Hello", tr.T("common.hello"))
		require.Equal(t, "Welcome, Alice!", tr.T("common.welcome", locl.M{"name": "Alice"}))
		require.Equal(t, "Save", tr.T("common.buttons.save"))
	})

	t.Run("loads multiple languages", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithFallbackLanguage("en"),
			locl.WithLanguage("de"),
			locl.WithJSONDir(subFS),
		)
		require.NoError(t, err)

		require.Equal(t, "Hallo", tr.T("common.hello"))
		// Only present in English; resolved through the fallback chain.
		require.Equal(t, "Cancel", tr.T("common.buttons.cancel"))
	})

	t.Run("namespace doubles as scope", func(t *testing.T) {
		t.Parallel()
		tr, err := locl.New(
			locl.WithFallbackLanguage("en"),
			locl.WithJSONDir(subFS),
			locl.WithScope("common"),
		)
		require.NoError(t, err)

		require.Equal(t, "Hello", tr.T("hello"))
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	subFS, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)

	tr, err := locl.New(
		locl.WithFallbackLanguage("en"),
		locl.WithYAMLDir(subFS),
	)
	require.NoError(t, err)

	require.Equal(t, "Resource not found", tr.T("errors.not_found"))
	require.Equal(t, "Field email is required", tr.T("errors.validation.required", locl.M{"field": "email"}))
}

func TestLoadersCombine(t *testing.T) {
	t.Parallel()

	subFS, err := fs.Sub(testdataFS, "testdata")
	require.NoError(t, err)

	tr, err := locl.New(
		locl.WithFallbackLanguage("en"),
		locl.WithJSONDir(subFS),
		locl.WithYAMLDir(subFS),
	)
	require.NoError(t, err)

	require.Equal(t, "Hello", tr.T("common.hello"))
	require.Equal(t, "Resource not found", tr.T("errors.not_found"))
}
