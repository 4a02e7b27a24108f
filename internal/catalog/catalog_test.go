package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminavenues/internal/domain"
)

func TestNewSeeded_SeedDataIsWellFormed(t *testing.T) {
	c := NewSeeded()
	require.Greater(t, c.Len(), 0)

	seen := make(map[string]bool)
	for _, v := range c.All() {
		assert.NotEmpty(t, v.ID)
		assert.False(t, seen[v.ID], "duplicate venue id %s", v.ID)
		seen[v.ID] = true

		assert.NotEmpty(t, v.Name)
		assert.Greater(t, v.PricePerHour, 0.0)
		assert.Greater(t, v.Capacity, 0)
		assert.GreaterOrEqual(t, v.Rating, 0.0)
		assert.LessOrEqual(t, v.Rating, 5.0)
		assert.GreaterOrEqual(t, v.ReviewsCount, 0)

		_, ok := domain.ParseVenueType(string(v.Type))
		assert.True(t, ok, "venue %s has unknown type %s", v.ID, v.Type)
	}
}

func TestGetByID(t *testing.T) {
	c := NewSeeded()

	v, err := c.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)

	_, err = c.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := NewSeeded()

	first := c.All()
	first[0].Name = "mutated"

	again := c.All()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestSummaries_ProjectionMatchesVenues(t *testing.T) {
	c := NewSeeded()

	sums := c.Summaries()
	require.Len(t, sums, c.Len())

	for i, v := range c.All() {
		assert.Equal(t, v.ID, sums[i].ID)
		assert.Equal(t, v.Name, sums[i].Name)
		assert.Equal(t, v.PricePerHour, sums[i].Price)
		assert.Equal(t, v.Capacity, sums[i].Capacity)
		assert.Equal(t, v.Features, sums[i].Features)
	}
}
