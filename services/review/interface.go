package review

import (
	reviewRepo "coffeemap/database/repository/review"
	shopRepo "coffeemap/database/repository/shop"
	"coffeemap/models"
)

// Minimum comment lengths for the two review forms.
const (
	MinCommentLen         = 10
	MinDetailedCommentLen = 20
)

// CreateReviewRequest carries a basic review submission.
type CreateReviewRequest struct {
	ShopID      int64  `json:"shop_id"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment" binding:"required"`
	DisplayName string `json:"display_name"`
}

// CreateDetailedReviewRequest carries a detailed review submission.
type CreateDetailedReviewRequest struct {
	CreateReviewRequest
	SubRatings   models.SubRatings `json:"sub_ratings"`
	VisitPurpose string            `json:"visit_purpose" binding:"required"`
	ImageURLs    []string          `json:"image_urls"`
}

// ReviewService defines business logic for review operations.
type ReviewService interface {
	// CreateReview validates and persists a basic review. The author
	// may be nil for fully anonymous submissions.
	CreateReview(req CreateReviewRequest, author *models.User) (*models.Review, error)
	// CreateDetailedReview validates and persists a detailed review,
	// which stays unapproved until moderated.
	CreateDetailedReview(req CreateDetailedReviewRequest, author *models.User) (*models.DetailedReview, error)
	// ListByShop retrieves the basic reviews of a shop.
	ListByShop(shopID int64) ([]models.Review, error)
	// ListDetailedByShop retrieves the detailed reviews of a shop.
	// Moderators also see unapproved entries.
	ListDetailedByShop(shopID int64, caller *models.User) ([]models.DetailedReview, error)
	// ApproveDetailedReview clears the moderation flag. Moderator or
	// above only.
	ApproveDetailedReview(reviewID string, caller *models.User) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo  reviewRepo.ReviewRepository
	Shops shopRepo.ShopRepository
}
