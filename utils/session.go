// File: utils/session.go
package utils

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// SaveSession records an active token hash for a user. The entry
// expires with the token, so revocation checks stay self-cleaning.
func SaveSession(client *redis.Client, tokenHash, userID string) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthCachePrefix+tokenHash, userID, AuthCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SessionUserID returns the user ID bound to an active token hash, or
// an empty string when the session was revoked or expired.
func SessionUserID(client *redis.Client, tokenHash string) (string, error) {
	ctx := context.Background()
	userID, err := client.Get(ctx, AuthCachePrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return userID, nil
}

// DeleteSession revokes a token hash.
func DeleteSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+tokenHash).Err()
}
