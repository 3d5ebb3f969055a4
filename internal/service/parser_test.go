package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintParser_ExplicitPrices(t *testing.T) {
	parser := NewConstraintParser(NewVibeTaxonomy(DefaultVibes()))

	tests := []struct {
		name     string
		query    string
		minPrice *int
		maxPrice *int
	}{
		{
			name:     "under with dollar sign",
			query:    "apartment under $2000",
			maxPrice: intPtr(2000),
		},
		{
			name:     "under with k suffix",
			query:    "something under 2k",
			maxPrice: intPtr(2000),
		},
		{
			name:     "below keyword",
			query:    "loft below $1500",
			maxPrice: intPtr(1500),
		},
		{
			name:     "trailing dollar sign",
			query:    "cozy apartment in dallas under 2000$",
			maxPrice: intPtr(2000),
		},
		{
			name:     "over keyword",
			query:    "penthouse over $4000",
			minPrice: intPtr(4000),
		},
		{
			name:     "above with k suffix",
			query:    "above 3K please",
			minPrice: intPtr(3000),
		},
		{
			name:     "hyphen range",
			query:    "$1000 - $2500 apartment",
			minPrice: intPtr(1000),
			maxPrice: intPtr(2500),
		},
		{
			name:     "to range",
			query:    "somewhere from 1500 to 3000",
			minPrice: intPtr(1500),
			maxPrice: intPtr(3000),
		},
		{
			name:     "en dash range with k",
			query:    "2k – 4k budget",
			minPrice: intPtr(2000),
			maxPrice: intPtr(4000),
		},
		{
			name:  "no price at all",
			query: "bright modern loft with plants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parser.Parse(tt.query)
			assert.Equal(t, tt.minPrice, c.MinPrice, "min price")
			assert.Equal(t, tt.maxPrice, c.MaxPrice, "max price")
		})
	}
}

func TestConstraintParser_QualitativePrices(t *testing.T) {
	parser := NewConstraintParser(NewVibeTaxonomy(DefaultVibes()))

	t.Run("affordable defaults max price", func(t *testing.T) {
		c := parser.Parse("affordable 2 bedroom apartments in Austin")
		assert.True(t, c.Affordable)
		require.NotNil(t, c.MaxPrice)
		assert.Equal(t, 2000, *c.MaxPrice)
	})

	t.Run("explicit max beats affordable default", func(t *testing.T) {
		c := parser.Parse("cheap place under $1200")
		assert.True(t, c.Affordable)
		require.NotNil(t, c.MaxPrice)
		assert.Equal(t, 1200, *c.MaxPrice)
	})

	t.Run("luxury defaults min price", func(t *testing.T) {
		c := parser.Parse("luxury penthouse with ocean view")
		assert.True(t, c.Luxury)
		require.NotNil(t, c.MinPrice)
		assert.Equal(t, 4000, *c.MinPrice)
	})

	t.Run("explicit min beats luxury default", func(t *testing.T) {
		c := parser.Parse("upscale place over $5000")
		assert.True(t, c.Luxury)
		require.NotNil(t, c.MinPrice)
		assert.Equal(t, 5000, *c.MinPrice)
	})

	t.Run("budget keyword", func(t *testing.T) {
		c := parser.Parse("budget friendly studio")
		assert.True(t, c.Affordable)
	})
}

func TestConstraintParser_Bedrooms(t *testing.T) {
	parser := NewConstraintParser(NewVibeTaxonomy(DefaultVibes()))

	t.Run("explicit bedroom count", func(t *testing.T) {
		c := parser.Parse("2 bedroom apartment")
		require.NotNil(t, c.Bedrooms)
		assert.Equal(t, 2, *c.Bedrooms)
		assert.Zero(t, c.MinBedrooms)
	})

	t.Run("bed without room suffix", func(t *testing.T) {
		c := parser.Parse("3 bed house in Houston")
		require.NotNil(t, c.Bedrooms)
		assert.Equal(t, 3, *c.Bedrooms)
	})

	t.Run("size words set the lower bound", func(t *testing.T) {
		c := parser.Parse("bigger spaces please")
		assert.Nil(t, c.Bedrooms)
		assert.Equal(t, 2, c.MinBedrooms)
	})

	t.Run("spacious", func(t *testing.T) {
		c := parser.Parse("a spacious loft")
		assert.Equal(t, 2, c.MinBedrooms)
	})

	t.Run("both exact and lower bound are kept", func(t *testing.T) {
		c := parser.Parse("a larger 3 bedroom house")
		require.NotNil(t, c.Bedrooms)
		assert.Equal(t, 3, *c.Bedrooms)
		assert.Equal(t, 2, c.MinBedrooms)
	})
}

func TestConstraintParser_VibeKeywords(t *testing.T) {
	parser := NewConstraintParser(NewVibeTaxonomy(DefaultVibes()))

	c := parser.Parse("cozy warm apartment in Portland OR")
	assert.Contains(t, c.VibeKeywords, "cozy")
	assert.Contains(t, c.VibeKeywords, "warm")

	c = parser.Parse("just four walls and a roof")
	assert.Empty(t, c.VibeKeywords)
}

func TestConstraintParser_CaseInsensitive(t *testing.T) {
	parser := NewConstraintParser(NewVibeTaxonomy(DefaultVibes()))

	c := parser.Parse("AFFORDABLE place UNDER $1800")
	assert.True(t, c.Affordable)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 1800, *c.MaxPrice)
}

func intPtr(v int) *int {
	return &v
}
