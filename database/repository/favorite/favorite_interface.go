package favoriteRepo

// FavoriteRepository defines methods for favorite data access.
type FavoriteRepository interface {
	// Upsert records a (user, shop) favorite pair. Writing an existing
	// pair is a no-op, not an error.
	Upsert(userID string, shopID int64) error
	// Delete removes a (user, shop) favorite pair.
	Delete(userID string, shopID int64) error
	// ListShopIDs retrieves the favorite shop IDs of one user.
	ListShopIDs(userID string) ([]int64, error)
}
