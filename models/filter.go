// models/filter.go
package models

// Feature flags selectable in a filter.
const (
	FeatureWifi  = "wifi"
	FeaturePower = "power"
)

// Sort keys understood by the sort engine.
const (
	SortDistance    = "distance"
	SortRating      = "rating"
	SortReviewCount = "review_count"
	SortNewest      = "newest"
	SortPriceLow    = "price_low"
	SortPriceHigh   = "price_high"
	SortName        = "name"
	SortRandom      = "random"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterState bundles every active filter predicate for one listing
// request. Zero values are the neutral settings: an empty or "all"
// criterion passes everything.
type FilterState struct {
	Search        string   `json:"search"`
	Category      string   `json:"category"`    // category constant or "all"
	PriceRange    string   `json:"price_range"` // "1".."4" or "all"
	Features      []string `json:"features"`    // wifi/power, ALL must match
	FavoritesOnly bool     `json:"favorites_only"`
	OpenNow       bool     `json:"open_now"`
	MinRating     float64  `json:"min_rating"`
	MaxDistanceKm float64  `json:"max_distance_km"`
	DistanceOn    bool     `json:"distance_on"`
}

// SortState is the (key, direction) pair for one listing request.
type SortState struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// ShopStats are the counts derived from a filtered listing.
type ShopStats struct {
	FilteredCount int `json:"filteredCount"`
	TotalCount    int `json:"totalCount"`
	OpenCount     int `json:"openCount"`
	FavoriteCount int `json:"favoriteCount"`
}
