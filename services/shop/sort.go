package shop

import (
	"math/rand"
	"sort"
	"strings"

	"coffeemap/models"
)

// SortShops returns a new ordered copy of the shop list. The input is
// never mutated. The direction flag inverts the comparator for every
// key except price_low, price_high and random, which carry their own
// fixed order. Shops without a computed distance sort last under the
// distance key regardless of direction.
func SortShops(shops []models.Shop, state models.SortState) []models.Shop {
	result := make([]models.Shop, len(shops))
	copy(result, shops)

	if state.Key == models.SortRandom {
		rand.Shuffle(len(result), func(i, j int) {
			result[i], result[j] = result[j], result[i]
		})
		return result
	}

	if state.Key == models.SortDistance {
		sortByDistance(result, state.Direction == models.SortDesc)
		return result
	}

	less := comparatorFor(state.Key)
	if less == nil {
		return result
	}
	if state.Direction == models.SortDesc && invertible(state.Key) {
		base := less
		less = func(a, b *models.Shop) bool { return base(b, a) }
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(&result[i], &result[j])
	})
	return result
}

func invertible(key string) bool {
	return key != models.SortPriceLow && key != models.SortPriceHigh
}

// comparatorFor returns the base ordering for a sort key. Newest is
// most-recent-first by default; every other key orders ascending.
func comparatorFor(key string) func(a, b *models.Shop) bool {
	switch key {
	case models.SortRating:
		return func(a, b *models.Shop) bool { return a.AverageRating() < b.AverageRating() }
	case models.SortReviewCount:
		return func(a, b *models.Shop) bool { return len(a.Reviews) < len(b.Reviews) }
	case models.SortNewest:
		return func(a, b *models.Shop) bool { return a.CreatedAt.After(b.CreatedAt) }
	case models.SortPriceLow:
		return func(a, b *models.Shop) bool { return a.PriceRange < b.PriceRange }
	case models.SortPriceHigh:
		return func(a, b *models.Shop) bool { return a.PriceRange > b.PriceRange }
	case models.SortName:
		return func(a, b *models.Shop) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	default:
		return nil
	}
}

// sortByDistance orders by ascending distance (inverted when desc),
// with nil-distance shops always at the end.
func sortByDistance(shops []models.Shop, desc bool) {
	sort.SliceStable(shops, func(i, j int) bool {
		a, b := shops[i].Distance, shops[j].Distance
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if desc {
			return *a > *b
		}
		return *a < *b
	})
}
