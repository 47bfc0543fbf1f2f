package waste

import "strings"

// The classifier's fixed output label set, order-significant for display and
// for mapping the model's class index to a label.
const (
	Cardboard = "cardboard"
	Glass     = "glass"
	Metal     = "metal"
	Paper     = "paper"
	Plastic   = "plastic"
	Trash     = "trash"
)

// Categories lists the six labels in model output order.
var Categories = []string{Cardboard, Glass, Metal, Paper, Plastic, Trash}

// markerColors maps each category to its map marker color.
var markerColors = map[string]string{
	Cardboard: "orange",
	Glass:     "blue",
	Metal:     "gray",
	Paper:     "green",
	Plastic:   "red",
	Trash:     "black",
}

// fallbackColor is used for categories outside the fixed set. Unrecognized
// values are preserved in records but cannot be color-mapped.
const fallbackColor = "darkblue"

// IsKnown reports whether the category is one of the six fixed labels.
func IsKnown(category string) bool {
	_, ok := markerColors[strings.ToLower(category)]
	return ok
}

// MarkerColor returns the map color for a category, falling back to a
// neutral color for unrecognized labels.
func MarkerColor(category string) string {
	if c, ok := markerColors[strings.ToLower(category)]; ok {
		return c
	}
	return fallbackColor
}
