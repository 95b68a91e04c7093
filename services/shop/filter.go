package shop

import (
	"strconv"
	"strings"
	"time"

	"coffeemap/models"
)

// FilterShops returns the subset of shops satisfying every active
// predicate of the filter state (logical AND across criteria). Neutral
// settings pass everything, so a default FilterState is the identity on
// membership. The input slice is never mutated.
func FilterShops(shops []models.Shop, state models.FilterState, favoriteIDs map[int64]bool, now time.Time) []models.Shop {
	result := make([]models.Shop, 0, len(shops))
	for i := range shops {
		if matchesFilter(&shops[i], state, favoriteIDs, now) {
			result = append(result, shops[i])
		}
	}
	return result
}

func matchesFilter(s *models.Shop, state models.FilterState, favoriteIDs map[int64]bool, now time.Time) bool {
	// 1. Search text: case-insensitive substring on name, address or
	// description.
	if q := strings.ToLower(strings.TrimSpace(state.Search)); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Address), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			return false
		}
	}

	// 2. Category.
	if state.Category != "" && state.Category != "all" && s.Category != state.Category {
		return false
	}

	// 3. Price tier, string-compared against the shop's tier.
	if state.PriceRange != "" && state.PriceRange != "all" &&
		state.PriceRange != strconv.Itoa(s.PriceRange) {
		return false
	}

	// 4. Features: every selected amenity flag must be true.
	for _, feature := range state.Features {
		switch feature {
		case models.FeatureWifi:
			if !s.HasWifi {
				return false
			}
		case models.FeaturePower:
			if !s.HasPower {
				return false
			}
		default:
			// An unknown feature can never be present on the shop.
			return false
		}
	}

	// 5. Favorites only.
	if state.FavoritesOnly && !favoriteIDs[s.ID] {
		return false
	}

	// 6. Open now.
	if state.OpenNow && !IsOpenAt(s, now) {
		return false
	}

	// 7. Distance radius. Shops without a computed distance fail when
	// the filter is on.
	if state.DistanceOn {
		if s.Distance == nil || *s.Distance > state.MaxDistanceKm {
			return false
		}
	}

	// 8. Minimum rating. Zero reviews means mean 0, which fails any
	// positive threshold.
	if state.MinRating > 0 && s.AverageRating() < state.MinRating {
		return false
	}

	return true
}
