// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis auth token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for auth token cache entries.
const AuthCacheTTL = 24 * time.Hour

// AnonFavoritesPrefix is the KV bucket prefix holding favorite shop ids
// for sessions that have not signed in yet.
const AnonFavoritesPrefix = "anonFavorites:"

// RateLimitPrefix is the KV bucket prefix for per-user action counters.
const RateLimitPrefix = "rateLimit:"
