package shop

import (
	"testing"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	shibuya := models.Coordinate{Latitude: 35.6580, Longitude: 139.7016}
	tokyoStation := models.Coordinate{Latitude: 35.6812, Longitude: 139.7671}

	d := Haversine(shibuya, tokyoStation)
	assert.InDelta(t, 6.4, d, 0.2)

	assert.Zero(t, Haversine(shibuya, shibuya))
	assert.InDelta(t, Haversine(tokyoStation, shibuya), d, 1e-9)
}

func TestAnnotateDistances(t *testing.T) {
	shops := []models.Shop{
		{ID: 1, Latitude: 35.6580, Longitude: 139.7016},
		{ID: 2, Latitude: 35.6812, Longitude: 139.7671},
	}

	AnnotateDistances(shops, &models.Coordinate{Latitude: 35.6580, Longitude: 139.7016})
	require.NotNil(t, shops[0].Distance)
	require.NotNil(t, shops[1].Distance)
	assert.Zero(t, *shops[0].Distance)
	assert.Greater(t, *shops[1].Distance, 0.0)
}

func TestAnnotateDistancesNilLocation(t *testing.T) {
	shops := []models.Shop{{ID: 1, Latitude: 35.0, Longitude: 139.0}}
	AnnotateDistances(shops, nil)
	assert.Nil(t, shops[0].Distance)
}
