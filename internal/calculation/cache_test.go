package calculation

import (
	"testing"

	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(unitRequest())
	require.NoError(t, err)
	b, err := Fingerprint(unitRequest())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	changed := unitRequest()
	changed.Profile.AnnualSavings = d(45001)
	c, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	reordered := unitRequest()
	reordered.Selections = domain.Selections{
		{PropertyID: "unit", Quantity: 1},
		{PropertyID: "house", Quantity: 1},
	}
	swapped := unitRequest()
	swapped.Selections = domain.Selections{
		{PropertyID: "house", Quantity: 1},
		{PropertyID: "unit", Quantity: 1},
	}
	x, _ := Fingerprint(reordered)
	y, _ := Fingerprint(swapped)
	assert.NotEqual(t, x, y, "selection order is part of the request")
}

func TestCache(t *testing.T) {
	cache := NewCache()
	_, ok := cache.Get("a")
	assert.False(t, ok)

	projection := &domain.Projection{Summary: domain.ProjectionSummary{PurchasesMade: 2}}
	cache.Put("a", projection)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, projection, got)

	_, ok = cache.Get("b")
	assert.False(t, ok)

	cache.Put("b", &domain.Projection{})
	_, ok = cache.Get("a")
	assert.False(t, ok, "only the latest result is kept")

	cache.Reset()
	_, ok = cache.Get("b")
	assert.False(t, ok)
}
