package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVibeTaxonomy_Keywords(t *testing.T) {
	taxonomy := NewVibeTaxonomy(DefaultVibes())

	assert.Equal(t, []string{"cozy", "warm", "intimate", "comfortable"}, taxonomy.Keywords("cozy"))
	assert.Nil(t, taxonomy.Keywords("brutalist"))
	assert.Len(t, taxonomy.Options(), 6)
}

func TestVibeTaxonomy_MatchesMood(t *testing.T) {
	taxonomy := NewVibeTaxonomy(DefaultVibes())

	tests := []struct {
		name    string
		vibeIDs []string
		moods   []string
		want    bool
	}{
		{"direct keyword", []string{"cozy"}, []string{"cozy", "warm"}, true},
		{"keyword as substring of mood", []string{"bright"}, []string{"sunlight"}, true},
		{"no overlap", []string{"coastal"}, []string{"industrial", "edgy"}, false},
		{"any selected vibe suffices", []string{"coastal", "modern"}, []string{"sleek"}, true},
		{"unknown id never matches", []string{"brutalist"}, []string{"cozy"}, false},
		{"empty selection", nil, []string{"cozy"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taxonomy.MatchesMood(tt.vibeIDs, tt.moods))
		})
	}
}

func TestVibeTaxonomy_KeywordsIn(t *testing.T) {
	taxonomy := NewVibeTaxonomy(DefaultVibes())

	t.Run("definition order without duplicates", func(t *testing.T) {
		// "warm" appears in two vibes but is reported once.
		got := taxonomy.KeywordsIn("a warm and cozy place with lots of light")
		assert.Equal(t, []string{"light", "cozy", "warm"}, got)
	})

	t.Run("no keywords", func(t *testing.T) {
		assert.Empty(t, taxonomy.KeywordsIn("two bedrooms near downtown"))
	})
}

func TestLoadVibes(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vibes.json")
		payload := `[{"id":"industrial","label":"Industrial & Raw","keywords":["industrial","raw","exposed"]}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		options, err := LoadVibes(path)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "industrial", options[0].ID)
		assert.Equal(t, []string{"industrial", "raw", "exposed"}, options[0].Keywords)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVibes(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vibes.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadVibes(path)
		assert.Error(t, err)
	})
}
