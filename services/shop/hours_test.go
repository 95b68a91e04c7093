package shop

import (
	"testing"
	"time"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
)

func TestIsOpenAt(t *testing.T) {
	shop := &models.Shop{
		Hours: []models.ShopHours{
			{DayOfWeek: 3, OpenTime: "08:00", CloseTime: "18:00"},
			{DayOfWeek: 0, IsClosed: true},
			{DayOfWeek: 1, OpenTime: "08:00"},
		},
	}

	wednesday := func(hour, min int) time.Time {
		return time.Date(2026, 3, 4, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"during opening hours", wednesday(12, 30), true},
		{"opening minute is inclusive", wednesday(8, 0), true},
		{"closing minute is exclusive", wednesday(18, 0), false},
		{"one minute before close", wednesday(17, 59), true},
		{"before opening", wednesday(7, 59), false},
		{"closed day", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), false},
		{"entry missing close time", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), false},
		{"no entry for the day", time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpenAt(shop, tt.at))
		})
	}
}

func TestIsOpenAtNoHoursAtAll(t *testing.T) {
	assert.False(t, IsOpenAt(&models.Shop{}, time.Now()))
}
