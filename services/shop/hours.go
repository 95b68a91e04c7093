package shop

import (
	"time"

	"coffeemap/models"
)

// hoursFor returns the hours entry for the given day of week (0=Sunday)
// or nil when the shop has none.
func hoursFor(s *models.Shop, dayOfWeek int) *models.ShopHours {
	for i := range s.Hours {
		if s.Hours[i].DayOfWeek == dayOfWeek {
			return &s.Hours[i]
		}
	}
	return nil
}

// IsOpenAt reports whether the shop is open at the given wall-clock
// time. A shop with no entry for the day, a closed entry, or an entry
// missing either time is treated as closed. Times are compared as
// "HH:MM" strings, open inclusive, close exclusive.
func IsOpenAt(s *models.Shop, t time.Time) bool {
	entry := hoursFor(s, int(t.Weekday()))
	if entry == nil || entry.IsClosed {
		return false
	}
	if entry.OpenTime == "" || entry.CloseTime == "" {
		return false
	}
	now := t.Format("15:04")
	return entry.OpenTime <= now && now < entry.CloseTime
}
