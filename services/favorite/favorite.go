package favorite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeemap/database/kv"
	"coffeemap/utils"
)

// SetFavorite toggles a (user, shop) favorite for a signed-in user.
func (s *DefaultFavoriteService) SetFavorite(userID string, shopID int64, on bool) error {
	if on {
		return s.Repo.Upsert(userID, shopID)
	}
	return s.Repo.Delete(userID, shopID)
}

// FavoriteIDs returns the favorite shop ID set of a signed-in user.
func (s *DefaultFavoriteService) FavoriteIDs(userID string) (map[int64]bool, error) {
	ids, err := s.Repo.ListShopIDs(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func anonKey(anonID string) string {
	return utils.AnonFavoritesPrefix + anonID
}

// readAnonIDs loads the KV bucket of an anonymous session. A missing
// key is an empty list.
func (s *DefaultFavoriteService) readAnonIDs(ctx context.Context, anonID string) ([]int64, error) {
	raw, err := s.KV.Get(ctx, anonKey(anonID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read anonymous favorites: %w", err)
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode anonymous favorites: %w", err)
	}
	return ids, nil
}

// SetAnonFavorite toggles a favorite inside the anonymous session's KV
// bucket.
func (s *DefaultFavoriteService) SetAnonFavorite(anonID string, shopID int64, on bool) error {
	ctx := context.Background()
	ids, err := s.readAnonIDs(ctx, anonID)
	if err != nil {
		return err
	}

	updated := make([]int64, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == shopID {
			found = true
			if !on {
				continue
			}
		}
		updated = append(updated, id)
	}
	if on && !found {
		updated = append(updated, shopID)
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode anonymous favorites: %w", err)
	}
	if err := s.KV.Set(ctx, anonKey(anonID), string(data)); err != nil {
		return fmt.Errorf("failed to store anonymous favorites: %w", err)
	}
	return nil
}

// AnonFavoriteIDs returns the favorite shop ID set stored for an
// anonymous session.
func (s *DefaultFavoriteService) AnonFavoriteIDs(anonID string) (map[int64]bool, error) {
	ids, err := s.readAnonIDs(context.Background(), anonID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
