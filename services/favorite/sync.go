package favorite

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"coffeemap/utils"
)

// Migrate copies the anonymous session's favorite IDs into the user's
// backend rows, then clears the KV bucket. The order matters: the
// bucket is only deleted after every upsert succeeded, so a failure
// leaves the anonymous data intact and a later sign-in retries the
// whole migration. Re-upserting IDs that already landed is a no-op on
// the unique (user, shop) pair.
func (s *DefaultFavoriteService) Migrate(userID, anonID string) (int, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	ids, err := s.readAnonIDs(ctx, anonID)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	seen := make(map[int64]bool, len(ids))
	migrated := 0
	for _, shopID := range ids {
		if seen[shopID] {
			continue
		}
		seen[shopID] = true
		if err := s.Repo.Upsert(userID, shopID); err != nil {
			logger.Error("favorite migration aborted; local data kept",
				zap.String("userID", userID),
				zap.Int64("shopID", shopID),
				zap.Error(err))
			return migrated, fmt.Errorf("failed to migrate favorite %d: %w", shopID, err)
		}
		migrated++
	}

	if err := s.KV.Delete(ctx, anonKey(anonID)); err != nil {
		// The rows are in place; the stale bucket only costs a
		// redundant re-migration on the next sign-in.
		logger.Warn("failed to clear migrated anonymous favorites",
			zap.String("anonID", anonID), zap.Error(err))
	}

	logger.Info("migrated anonymous favorites",
		zap.String("userID", userID), zap.Int("count", migrated))
	return migrated, nil
}
