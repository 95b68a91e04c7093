// Package ratelimit implements the per-(user, action) advisory limiter.
// Counters live in the KV store as {count, timestamp} records with a
// one-hour reset-on-expiry window. This is deliberately a fixed window,
// not a sliding one: a burst straddling the boundary can exceed the
// nominal limit. The per-IP middleware is the transport-level guard;
// this limiter only shapes per-user write activity.
package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coffeemap/database/kv"
	"coffeemap/utils"
)

// Rate-limited action types with their hourly limits.
const (
	ActionShopCreate    = "shop_create"
	ActionReviewCreate  = "review_create"
	ActionProfileUpdate = "profile_update"
)

var actionLimits = map[string]int{
	ActionShopCreate:    5,
	ActionReviewCreate:  20,
	ActionProfileUpdate: 10,
}

// Window is the counter reset interval.
const Window = time.Hour

// Limiter gates per-user write actions.
type Limiter struct {
	Store kv.Store
	// now is swapped in tests.
	now func() time.Time
}

// NewLimiter creates a Limiter on the given KV store.
func NewLimiter(store kv.Store) *Limiter {
	return &Limiter{Store: store, now: time.Now}
}

type counterRecord struct {
	Count     int   `json:"count"`
	Timestamp int64 `json:"timestamp"` // window start, unix seconds
}

// Allow reports whether the user may perform the action now, counting
// the action when allowed. A denied call does not increment the
// counter. Unknown actions are always allowed.
func (l *Limiter) Allow(ctx context.Context, userID, action string) (bool, error) {
	limit, ok := actionLimits[action]
	if !ok {
		return true, nil
	}

	key := utils.RateLimitPrefix + userID + ":" + action
	now := l.now()

	record := counterRecord{Timestamp: now.Unix()}
	raw, err := l.Store.Get(ctx, key)
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			// A corrupt record starts a fresh window.
			record = counterRecord{Timestamp: now.Unix()}
		}
	case errors.Is(err, kv.ErrNotFound):
		// fresh counter
	default:
		return false, fmt.Errorf("rate limit lookup failed: %w", err)
	}

	if now.Sub(time.Unix(record.Timestamp, 0)) > Window {
		record = counterRecord{Timestamp: now.Unix()}
	}

	if record.Count >= limit {
		return false, nil
	}

	record.Count++
	data, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("rate limit record marshal failed: %w", err)
	}
	if err := l.Store.Set(ctx, key, string(data)); err != nil {
		return false, fmt.Errorf("rate limit record write failed: %w", err)
	}
	return true, nil
}
