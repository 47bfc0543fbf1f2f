package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySet(t *testing.T) {
	assert.Equal(t, []string{"cardboard", "glass", "metal", "paper", "plastic", "trash"}, Categories)
	for _, c := range Categories {
		assert.True(t, IsKnown(c))
	}
	assert.False(t, IsKnown("styrofoam"))
}

func TestMarkerColor(t *testing.T) {
	assert.Equal(t, "red", MarkerColor("plastic"))
	assert.Equal(t, "red", MarkerColor("PLASTIC"))
	assert.Equal(t, "darkblue", MarkerColor("styrofoam"))
}

func TestGuideCoversEveryCategory(t *testing.T) {
	entries := AllGuides()
	require.Len(t, entries, len(Categories))
	for i, e := range entries {
		assert.Equal(t, Categories[i], e.Category)
		assert.NotEmpty(t, e.RecyclingInfo)
		assert.NotEmpty(t, e.Impact)
		assert.NotEmpty(t, e.CarbonFootprint)
	}
}

func TestGuideLookup(t *testing.T) {
	e, ok := Guide("Trash")
	require.True(t, ok)
	assert.False(t, e.CanRecycle)

	_, ok = Guide("unknown")
	assert.False(t, ok)
}
