package favorite

import (
	"context"
	"errors"
	"testing"

	"coffeemap/database/kv"
	"coffeemap/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavoriteRepo records upserted pairs and can fail on demand.
type fakeFavoriteRepo struct {
	pairs     map[int64]bool
	failAfter int // fail on the nth upsert, 0 disables
	calls     int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{pairs: make(map[int64]bool)}
}

func (r *fakeFavoriteRepo) Upsert(userID string, shopID int64) error {
	r.calls++
	if r.failAfter > 0 && r.calls >= r.failAfter {
		return errors.New("write failed")
	}
	r.pairs[shopID] = true
	return nil
}

func (r *fakeFavoriteRepo) Delete(userID string, shopID int64) error {
	delete(r.pairs, shopID)
	return nil
}

func (r *fakeFavoriteRepo) ListShopIDs(userID string) ([]int64, error) {
	ids := make([]int64, 0, len(r.pairs))
	for id := range r.pairs {
		ids = append(ids, id)
	}
	return ids, nil
}

func seedAnonBucket(t *testing.T, store kv.Store, anonID, payload string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), utils.AnonFavoritesPrefix+anonID, payload))
}

func TestMigrateDeduplicatesAndClearsBucket(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := newFakeFavoriteRepo()
	svc := &DefaultFavoriteService{Repo: repo, KV: store}

	seedAnonBucket(t, store, "visitor-1", "[3,7,7,9]")

	migrated, err := svc.Migrate("google:123", "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, 3, migrated)
	assert.Equal(t, map[int64]bool{3: true, 7: true, 9: true}, repo.pairs)

	_, err = store.Get(context.Background(), utils.AnonFavoritesPrefix+"visitor-1")
	assert.ErrorIs(t, err, kv.ErrNotFound, "bucket is cleared after a full migration")
}

func TestMigrateKeepsBucketOnFailure(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := newFakeFavoriteRepo()
	repo.failAfter = 2
	svc := &DefaultFavoriteService{Repo: repo, KV: store}

	seedAnonBucket(t, store, "visitor-2", "[3,7,9]")

	_, err := svc.Migrate("google:123", "visitor-2")
	require.Error(t, err)

	raw, getErr := store.Get(context.Background(), utils.AnonFavoritesPrefix+"visitor-2")
	require.NoError(t, getErr, "bucket survives a failed migration for a later retry")
	assert.Equal(t, "[3,7,9]", raw)
}

func TestMigrateEmptyBucketIsNoop(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := newFakeFavoriteRepo()
	svc := &DefaultFavoriteService{Repo: repo, KV: store}

	migrated, err := svc.Migrate("google:123", "never-seen")
	require.NoError(t, err)
	assert.Zero(t, migrated)
	assert.Zero(t, repo.calls)
}

func TestMigrateRejectsCorruptBucket(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := &DefaultFavoriteService{Repo: newFakeFavoriteRepo(), KV: store}

	seedAnonBucket(t, store, "visitor-3", "not json")

	_, err := svc.Migrate("google:123", "visitor-3")
	assert.Error(t, err)
}

func TestSetAnonFavoriteRoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := &DefaultFavoriteService{Repo: newFakeFavoriteRepo(), KV: store}

	require.NoError(t, svc.SetAnonFavorite("visitor-4", 3, true))
	require.NoError(t, svc.SetAnonFavorite("visitor-4", 7, true))
	require.NoError(t, svc.SetAnonFavorite("visitor-4", 3, true), "re-adding is idempotent")

	ids, err := svc.AnonFavoriteIDs("visitor-4")
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{3: true, 7: true}, ids)

	require.NoError(t, svc.SetAnonFavorite("visitor-4", 3, false))
	ids, err = svc.AnonFavoriteIDs("visitor-4")
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{7: true}, ids)
}
