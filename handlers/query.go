package handlers

import (
	"strconv"
	"strings"

	"coffeemap/models"
	"coffeemap/services/shop"

	"github.com/gin-gonic/gin"
)

// parseListQuery builds the filter/sort state for a shop listing from
// the request's query string. Unknown or malformed values fall back to
// the neutral setting rather than erroring: a bad filter should never
// break browsing.
func parseListQuery(c *gin.Context) shop.ListQuery {
	q := c.Request.URL.Query()

	filter := models.FilterState{
		Search:     strings.TrimSpace(q.Get("search")),
		Category:   q.Get("category"),
		PriceRange: q.Get("price_range"),
	}

	if raw := q.Get("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.Features = append(filter.Features, f)
			}
		}
	}
	filter.FavoritesOnly = q.Get("favorites_only") == "true"
	filter.OpenNow = q.Get("open_now") == "true"
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil && v > 0 {
		filter.MinRating = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_distance_km"), 64); err == nil && v > 0 {
		filter.DistanceOn = true
		filter.MaxDistanceKm = v
	}

	sortState := models.SortState{
		Key:       q.Get("sort"),
		Direction: q.Get("direction"),
	}
	if sortState.Direction != models.SortDesc {
		sortState.Direction = models.SortAsc
	}

	return shop.ListQuery{
		Filter:   filter,
		Sort:     sortState,
		Location: parseLocation(c),
	}
}

// parseLocation reads the caller's coordinate from lat/lng query
// params. Out-of-bounds or partial coordinates count as unknown.
func parseLocation(c *gin.Context) *models.Coordinate {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}
	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	if !coord.Valid() {
		return nil
	}
	return &coord
}
