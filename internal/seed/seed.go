package seed

import "spaceai/internal/model"

// Corpus returns the static demo corpus used whenever the remote
// provider is unavailable or returns nothing. Callers get a fresh copy;
// the records themselves are never mutated after load.
func Corpus() []model.Listing {
	out := make([]model.Listing, len(corpus))
	copy(out, corpus)
	return out
}

var corpus = []model.Listing{
	{
		ID:       "1",
		Title:    "Minimalist Zen Loft",
		Location: "Downtown Austin",
		Price:    2800,
		Mood:     model.JSONArray{"peaceful", "minimalist", "modern"},
		Colors:   model.JSONArray{"white", "gray", "natural"},
		Vibe:     "calm and serene",
		Features: model.JSONArray{"natural light", "plants", "meditation space"},
		Bedrooms: 2,
		Type:     "apartment",
	},
	{
		ID:       "2",
		Title:    "Vibrant Artist's Studio",
		Location: "Brooklyn, NY",
		Price:    3200,
		Mood:     model.JSONArray{"energetic", "creative", "eclectic"},
		Colors:   model.JSONArray{"colorful", "bold", "vibrant"},
		Vibe:     "inspiring and lively",
		Features: model.JSONArray{"high ceilings", "art walls", "workspace"},
		Bedrooms: 1,
		Type:     "loft",
	},
	{
		ID:       "3",
		Title:    "Cozy Scandinavian Retreat",
		Location: "Portland, OR",
		Price:    2400,
		Mood:     model.JSONArray{"cozy", "warm", "hygge"},
		Colors:   model.JSONArray{"warm wood", "soft white", "natural"},
		Vibe:     "comfortable and inviting",
		Features: model.JSONArray{"fireplace", "reading nook", "warm lighting"},
		Bedrooms: 2,
		Type:     "house",
	},
	{
		ID:       "4",
		Title:    "Sleek Tech Haven",
		Location: "San Francisco, CA",
		Price:    4200,
		Mood:     model.JSONArray{"modern", "sophisticated", "smart"},
		Colors:   model.JSONArray{"black", "white", "tech blue"},
		Vibe:     "futuristic and efficient",
		Features: model.JSONArray{"smart home", "tech setup", "city views"},
		Bedrooms: 2,
		Type:     "apartment",
	},
	{
		ID:       "5",
		Title:    "Bohemian Garden Cottage",
		Location: "Sedona, AZ",
		Price:    2100,
		Mood:     model.JSONArray{"bohemian", "natural", "artistic"},
		Colors:   model.JSONArray{"earth tones", "green", "terracotta"},
		Vibe:     "free-spirited and earthy",
		Features: model.JSONArray{"garden", "outdoor space", "natural materials"},
		Bedrooms: 1,
		Type:     "cottage",
	},
	{
		ID:       "6",
		Title:    "Luxe Urban Penthouse",
		Location: "Miami, FL",
		Price:    5800,
		Mood:     model.JSONArray{"luxurious", "glamorous", "sophisticated"},
		Colors:   model.JSONArray{"gold", "white", "navy"},
		Vibe:     "elegant and upscale",
		Features: model.JSONArray{"ocean view", "rooftop", "premium finishes"},
		Bedrooms: 3,
		Type:     "penthouse",
	},
	{
		ID:       "7",
		Title:    "Industrial Chic Warehouse",
		Location: "Chicago, IL",
		Price:    3400,
		Mood:     model.JSONArray{"industrial", "edgy", "urban"},
		Colors:   model.JSONArray{"brick", "metal", "concrete"},
		Vibe:     "raw and authentic",
		Features: model.JSONArray{"exposed brick", "high ceilings", "open floor"},
		Bedrooms: 2,
		Type:     "loft",
	},
	{
		ID:       "8",
		Title:    "Coastal Breeze Villa",
		Location: "Santa Monica, CA",
		Price:    4600,
		Mood:     model.JSONArray{"breezy", "relaxed", "coastal"},
		Colors:   model.JSONArray{"blue", "white", "sand"},
		Vibe:     "light and airy",
		Features: model.JSONArray{"beach access", "ocean view", "terrace"},
		Bedrooms: 3,
		Type:     "villa",
	},
}
