package shop

import (
	"testing"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	all := testShops()
	filtered := all[:2] // Bright Bean (open Wednesday), Roast House (closed)
	favorites := map[int64]bool{2: true, 3: true}

	stats := ComputeStats(filtered, all, favorites, testNow)

	assert.Equal(t, 2, stats.FilteredCount)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 1, stats.OpenCount)
	assert.Equal(t, 1, stats.FavoriteCount, "favorites outside the filtered set are not counted")
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil, nil, testNow)
	assert.Equal(t, models.ShopStats{}, stats)
}
