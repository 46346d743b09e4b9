package model

// RateTier is a difficulty band with a display label and accent color.
// Rank orders the tiers; the unknown tier ranks below every numeric tier.
type RateTier struct {
	Rank      int
	Threshold int
	Label     string
	Color     int
}

// UnknownTier is assigned to problems without a difficulty estimate.
var UnknownTier = RateTier{Rank: -1, Threshold: -1, Label: UnknownLabel, Color: 0x000000}

// rateTiers is ordered from the highest threshold to the lowest.
var rateTiers = []RateTier{
	{Rank: 7, Threshold: 2800, Label: "赤", Color: 0xff0000},
	{Rank: 6, Threshold: 2400, Label: "橙", Color: 0xff8000},
	{Rank: 5, Threshold: 2000, Label: "黄", Color: 0xc0c000},
	{Rank: 4, Threshold: 1600, Label: "青", Color: 0x0000ff},
	{Rank: 3, Threshold: 1200, Label: "水", Color: 0x00c0c0},
	{Rank: 2, Threshold: 800, Label: "緑", Color: 0x008000},
	{Rank: 1, Threshold: 400, Label: "茶", Color: 0x804000},
	{Rank: 0, Threshold: 0, Label: "灰", Color: 0x808080},
}

// RateTiers returns the numeric tiers from highest to lowest.
func RateTiers() []RateTier {
	out := make([]RateTier, len(rateTiers))
	copy(out, rateTiers)
	return out
}

// ClassifyDifficulty maps a display difficulty to its tier. Negative values
// fall through to the lowest numeric tier.
func ClassifyDifficulty(d Difficulty) RateTier {
	v, ok := d.Value()
	if !ok {
		return UnknownTier
	}
	for _, tier := range rateTiers {
		if v >= tier.Threshold {
			return tier
		}
	}
	return rateTiers[len(rateTiers)-1]
}
