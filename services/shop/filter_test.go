package shop

import (
	"testing"
	"time"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noon on a Wednesday
var testNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

func ptr(f float64) *float64 { return &f }

func testShops() []models.Shop {
	return []models.Shop{
		{
			ID:         1,
			Name:       "Bright Bean",
			Address:    "12 Harbor St",
			Category:   models.CategoryCafe,
			PriceRange: 2,
			HasWifi:    true,
			HasPower:   true,
			Hours: []models.ShopHours{
				{DayOfWeek: 3, OpenTime: "08:00", CloseTime: "18:00"},
			},
			Reviews: []models.Review{
				{Rating: 5}, {Rating: 4},
			},
			Distance:  ptr(1.2),
			CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Name:       "Roast House",
			Address:    "90 Mill Rd",
			Category:   models.CategoryRoastery,
			PriceRange: 3,
			HasWifi:    false,
			HasPower:   false,
			Hours: []models.ShopHours{
				{DayOfWeek: 3, IsClosed: true},
			},
			Distance:  ptr(8.5),
			CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         3,
			Name:       "Corner Drip",
			Address:    "5 Mill Rd",
			Category:   models.CategoryCafe,
			PriceRange: 1,
			HasWifi:    true,
			Reviews: []models.Review{
				{Rating: 3},
			},
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func shopIDs(shops []models.Shop) []int64 {
	ids := make([]int64, len(shops))
	for i, s := range shops {
		ids[i] = s.ID
	}
	return ids
}

func TestFilterShopsNeutralStateIsIdentity(t *testing.T) {
	shops := testShops()
	got := FilterShops(shops, models.FilterState{}, nil, testNow)
	assert.Equal(t, []int64{1, 2, 3}, shopIDs(got))
}

func TestFilterShopsDoesNotMutateInput(t *testing.T) {
	shops := testShops()
	FilterShops(shops, models.FilterState{Category: models.CategoryCafe}, nil, testNow)
	assert.Equal(t, []int64{1, 2, 3}, shopIDs(shops))
}

func TestFilterShopsPredicates(t *testing.T) {
	favorites := map[int64]bool{1: true, 3: true}

	tests := []struct {
		name  string
		state models.FilterState
		want  []int64
	}{
		{
			name:  "search matches name case-insensitively",
			state: models.FilterState{Search: "bright"},
			want:  []int64{1},
		},
		{
			name:  "search matches address",
			state: models.FilterState{Search: "Mill Rd"},
			want:  []int64{2, 3},
		},
		{
			name:  "search miss excludes everything",
			state: models.FilterState{Search: "teahouse"},
			want:  []int64{},
		},
		{
			name:  "category all passes everything",
			state: models.FilterState{Category: "all"},
			want:  []int64{1, 2, 3},
		},
		{
			name:  "category narrows",
			state: models.FilterState{Category: models.CategoryRoastery},
			want:  []int64{2},
		},
		{
			name:  "price tier matches exactly",
			state: models.FilterState{PriceRange: "2"},
			want:  []int64{1},
		},
		{
			name:  "all selected features must be present",
			state: models.FilterState{Features: []string{models.FeatureWifi, models.FeaturePower}},
			want:  []int64{1},
		},
		{
			name:  "unknown feature excludes everything",
			state: models.FilterState{Features: []string{"parking"}},
			want:  []int64{},
		},
		{
			name:  "favorites only",
			state: models.FilterState{FavoritesOnly: true},
			want:  []int64{1, 3},
		},
		{
			name:  "open now excludes closed-today and no-hours shops",
			state: models.FilterState{OpenNow: true},
			want:  []int64{1},
		},
		{
			name:  "distance radius excludes far and unlocated shops",
			state: models.FilterState{DistanceOn: true, MaxDistanceKm: 5},
			want:  []int64{1},
		},
		{
			name:  "min rating uses the review mean",
			state: models.FilterState{MinRating: 4},
			want:  []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterShops(testShops(), tt.state, favorites, testNow)
			assert.Equal(t, tt.want, shopIDs(got))
		})
	}
}

func TestFilterShopsZeroReviewsFailPositiveRatingThreshold(t *testing.T) {
	shops := []models.Shop{{ID: 10, Name: "Fresh Opening"}}
	got := FilterShops(shops, models.FilterState{MinRating: 0.5}, nil, testNow)
	assert.Empty(t, got)
}

func TestFilterShopsCafeWithWifiScenario(t *testing.T) {
	shops := []models.Shop{
		{ID: 1, Category: models.CategoryCafe, PriceRange: 2, HasWifi: true,
			Reviews: []models.Review{{Rating: 5}}},
		{ID: 2, Category: models.CategoryRoastery, PriceRange: 4},
	}
	state := models.FilterState{
		Category: models.CategoryCafe,
		Features: []string{models.FeatureWifi},
	}

	filtered := FilterShops(shops, state, nil, testNow)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)

	stats := ComputeStats(filtered, shops, nil, testNow)
	assert.Equal(t, 1, stats.FilteredCount)
	assert.Equal(t, 2, stats.TotalCount)
}

func TestFilterShopsCriteriaCombineWithAnd(t *testing.T) {
	shops := testShops()
	state := models.FilterState{
		Category: models.CategoryCafe,
		Features: []string{models.FeatureWifi},
		OpenNow:  true,
	}

	got := FilterShops(shops, state, nil, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	stats := ComputeStats(got, shops, map[int64]bool{1: true}, testNow)
	assert.Equal(t, models.ShopStats{
		FilteredCount: 1,
		TotalCount:    3,
		OpenCount:     1,
		FavoriteCount: 1,
	}, stats)
}
