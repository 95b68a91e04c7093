package review

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"coffeemap/models"
)

// anonymousDisplayName is used when a submission carries no durable
// identity and no display name.
const anonymousDisplayName = "Anonymous"

// CreateReview validates and persists a basic review.
func (s *DefaultReviewService) CreateReview(req CreateReviewRequest, author *models.User) (*models.Review, error) {
	if err := s.validateBase(req, MinCommentLen); err != nil {
		return nil, err
	}

	rev := &models.Review{
		ID:          uuid.NewString(),
		ShopID:      req.ShopID,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		DisplayName: resolveDisplayName(req.DisplayName, author),
	}
	if author != nil {
		rev.UserID = author.ID
	}

	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// CreateDetailedReview validates and persists a detailed review. The
// moderation flag starts unset and the review stays out of public
// listings until a moderator approves it.
func (s *DefaultReviewService) CreateDetailedReview(req CreateDetailedReviewRequest, author *models.User) (*models.DetailedReview, error) {
	if err := s.validateBase(req.CreateReviewRequest, MinDetailedCommentLen); err != nil {
		return nil, err
	}
	if err := validateSubRatings(req.SubRatings); err != nil {
		return nil, err
	}
	if !models.IsValidVisitPurpose(req.VisitPurpose) {
		return nil, fmt.Errorf("unknown visit purpose %q", req.VisitPurpose)
	}
	for _, raw := range req.ImageURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("malformed image URL %q", raw)
		}
	}

	rev := &models.DetailedReview{
		Review: models.Review{
			ID:          uuid.NewString(),
			ShopID:      req.ShopID,
			Rating:      req.Rating,
			Comment:     strings.TrimSpace(req.Comment),
			DisplayName: resolveDisplayName(req.DisplayName, author),
		},
		SubRatings:   req.SubRatings,
		VisitPurpose: req.VisitPurpose,
		ImageURLs:    req.ImageURLs,
		Approved:     false,
	}
	if author != nil {
		rev.UserID = author.ID
	}

	if err := s.Repo.CreateDetailed(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListByShop retrieves the basic reviews of a shop.
func (s *DefaultReviewService) ListByShop(shopID int64) ([]models.Review, error) {
	return s.Repo.ListByShop(shopID)
}

// ListDetailedByShop retrieves the detailed reviews of a shop.
func (s *DefaultReviewService) ListDetailedByShop(shopID int64, caller *models.User) ([]models.DetailedReview, error) {
	includeUnapproved := caller != nil && caller.CanModerate()
	return s.Repo.ListDetailedByShop(shopID, includeUnapproved)
}

// ApproveDetailedReview clears the moderation flag.
func (s *DefaultReviewService) ApproveDetailedReview(reviewID string, caller *models.User) error {
	if caller == nil || !caller.CanModerate() {
		return fmt.Errorf("only a moderator may approve reviews")
	}
	return s.Repo.Approve(reviewID)
}

func (s *DefaultReviewService) validateBase(req CreateReviewRequest, minComment int) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(req.Comment)) < minComment {
		return fmt.Errorf("comment must be at least %d characters", minComment)
	}
	// The shop must exist before a review can hang off it.
	if _, err := s.Shops.GetByID(req.ShopID); err != nil {
		return err
	}
	return nil
}

func validateSubRatings(sr models.SubRatings) error {
	for name, v := range map[string]int{
		"atmosphere":     sr.Atmosphere,
		"coffee quality": sr.CoffeeQuality,
		"service":        sr.Service,
		"value":          sr.Value,
	} {
		if v < 1 || v > 5 {
			return fmt.Errorf("%s rating must be between 1 and 5", name)
		}
	}
	return nil
}

func resolveDisplayName(requested string, author *models.User) string {
	if name := strings.TrimSpace(requested); name != "" {
		return name
	}
	if author != nil && author.Nickname != "" {
		return author.Nickname
	}
	return anonymousDisplayName
}
