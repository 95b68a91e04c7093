package shop

import (
	"time"

	"coffeemap/models"
)

// ComputeStats derives display counts from a filtered listing. The
// open-now predicate is re-evaluated here because "now" has advanced
// since filtering.
func ComputeStats(filtered, all []models.Shop, favoriteIDs map[int64]bool, now time.Time) models.ShopStats {
	stats := models.ShopStats{
		FilteredCount: len(filtered),
		TotalCount:    len(all),
	}
	for i := range filtered {
		if IsOpenAt(&filtered[i], now) {
			stats.OpenCount++
		}
		if favoriteIDs[filtered[i].ID] {
			stats.FavoriteCount++
		}
	}
	return stats
}
