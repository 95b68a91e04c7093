package handlers

import (
	"net/http/httptest"
	"testing"

	"coffeemap/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextForQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/shops?"+rawQuery, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	query := parseListQuery(contextForQuery(t, ""))

	assert.Equal(t, models.FilterState{}, query.Filter)
	assert.Equal(t, models.SortAsc, query.Sort.Direction)
	assert.Nil(t, query.Location)
}

func TestParseListQueryFullState(t *testing.T) {
	query := parseListQuery(contextForQuery(t,
		"search=+espresso+&category=cafe&price_range=2&features=wifi,+power+"+
			"&favorites_only=true&open_now=true&min_rating=4&max_distance_km=2.5"+
			"&sort=distance&direction=desc&lat=35.65&lng=139.7"))

	assert.Equal(t, models.FilterState{
		Search:        "espresso",
		Category:      "cafe",
		PriceRange:    "2",
		Features:      []string{"wifi", "power"},
		FavoritesOnly: true,
		OpenNow:       true,
		MinRating:     4,
		MaxDistanceKm: 2.5,
		DistanceOn:    true,
	}, query.Filter)

	assert.Equal(t, models.SortState{Key: "distance", Direction: models.SortDesc}, query.Sort)
	require.NotNil(t, query.Location)
	assert.Equal(t, 35.65, query.Location.Latitude)
	assert.Equal(t, 139.7, query.Location.Longitude)
}

func TestParseListQueryMalformedValuesFallBack(t *testing.T) {
	query := parseListQuery(contextForQuery(t,
		"min_rating=lots&max_distance_km=-3&direction=sideways"))

	assert.Zero(t, query.Filter.MinRating)
	assert.False(t, query.Filter.DistanceOn)
	assert.Equal(t, models.SortAsc, query.Sort.Direction)
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *models.Coordinate
	}{
		{"both params present", "lat=35.65&lng=139.7", &models.Coordinate{Latitude: 35.65, Longitude: 139.7}},
		{"missing lng", "lat=35.65", nil},
		{"non-numeric", "lat=here&lng=139.7", nil},
		{"latitude out of bounds", "lat=95&lng=139.7", nil},
		{"longitude out of bounds", "lat=35.65&lng=200", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLocation(contextForQuery(t, tt.query))
			assert.Equal(t, tt.want, got)
		})
	}
}
