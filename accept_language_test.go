package locl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sztsam/locl"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"pl", "en", "de"},
			expected:  "pl",
		},
		{
			name:      "no available languages",
			header:    "en",
			available: nil,
			expected:  "",
		},
		{
			name:      "exact match",
			header:    "de",
			available: []string{"en", "de"},
			expected:  "de",
		},
		{
			name:      "quality values pick the best match",
			header:    "en-US,en;q=0.9,pl;q=0.8",
			available: []string{"pl", "en", "de"},
			expected:  "en",
		},
		{
			name:      "region variant matches base language",
			header:    "de-AT",
			available: []string{"en", "de"},
			expected:  "de",
		},
		{
			name:      "no usable match returns first available",
			header:    "ja",
			available: []string{"pl", "uk"},
			expected:  "pl",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, locl.MatchLanguage(tt.header, tt.available))
		})
	}
}
