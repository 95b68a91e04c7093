package reviewRepo

import "coffeemap/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new basic review.
	Create(review *models.Review) error
	// CreateDetailed inserts a new detailed review.
	CreateDetailed(review *models.DetailedReview) error
	// ListByShop retrieves the basic reviews of one shop.
	ListByShop(shopID int64) ([]models.Review, error)
	// ListByShops retrieves the basic reviews of many shops in one
	// query, keyed by shop ID.
	ListByShops(shopIDs []int64) (map[int64][]models.Review, error)
	// ListDetailedByShop retrieves the detailed reviews of one shop.
	// Unapproved reviews are included only when includeUnapproved is set.
	ListDetailedByShop(shopID int64, includeUnapproved bool) ([]models.DetailedReview, error)
	// Approve flips the moderation flag on a detailed review.
	Approve(reviewID string) error
}
