package favorite

import (
	"coffeemap/database/kv"
	favoriteRepo "coffeemap/database/repository/favorite"
)

// FavoriteService manages favorites in their two homes: MongoDB rows
// for signed-in users and KV-stored ID arrays for anonymous sessions,
// plus the one-way migration between them on sign-in.
type FavoriteService interface {
	// SetFavorite toggles a (user, shop) favorite for a signed-in user.
	SetFavorite(userID string, shopID int64, on bool) error
	// FavoriteIDs returns the favorite shop ID set of a signed-in user.
	FavoriteIDs(userID string) (map[int64]bool, error)
	// SetAnonFavorite toggles a favorite inside the anonymous session's
	// KV bucket.
	SetAnonFavorite(anonID string, shopID int64, on bool) error
	// AnonFavoriteIDs returns the favorite shop ID set stored for an
	// anonymous session.
	AnonFavoriteIDs(anonID string) (map[int64]bool, error)
	// Migrate copies the anonymous bucket into the user's rows and
	// clears the bucket, but only after every row landed. It returns
	// the number of distinct IDs migrated.
	Migrate(userID, anonID string) (int, error)
}

// DefaultFavoriteService is the production implementation.
type DefaultFavoriteService struct {
	Repo favoriteRepo.FavoriteRepository
	KV   kv.Store
}
