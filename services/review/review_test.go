package review

import (
	"errors"
	"testing"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews  []models.Review
	detailed []models.DetailedReview
	approved []string
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) CreateDetailed(review *models.DetailedReview) error {
	r.detailed = append(r.detailed, *review)
	return nil
}

func (r *fakeReviewRepo) ListByShop(shopID int64) ([]models.Review, error) {
	return r.reviews, nil
}

func (r *fakeReviewRepo) ListByShops(shopIDs []int64) (map[int64][]models.Review, error) {
	return nil, nil
}

func (r *fakeReviewRepo) ListDetailedByShop(shopID int64, includeUnapproved bool) ([]models.DetailedReview, error) {
	out := make([]models.DetailedReview, 0, len(r.detailed))
	for _, d := range r.detailed {
		if d.Approved || includeUnapproved {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Approve(reviewID string) error {
	r.approved = append(r.approved, reviewID)
	return nil
}

// fakeShopRepo knows exactly one shop with ID 1.
type fakeShopRepo struct{}

func (fakeShopRepo) GetByID(id int64) (*models.Shop, error) {
	if id != 1 {
		return nil, errors.New("shop not found")
	}
	return &models.Shop{ID: 1, Name: "Bright Bean"}, nil
}
func (fakeShopRepo) GetAll() ([]models.Shop, error)                { return nil, nil }
func (fakeShopRepo) Create(shop *models.Shop) error                { return nil }
func (fakeShopRepo) Update(shop *models.Shop) error                { return nil }
func (fakeShopRepo) Delete(id int64) error                         { return nil }
func (fakeShopRepo) AddImage(id int64, img models.ShopImage) error { return nil }
func (fakeShopRepo) RemoveImage(id int64, imageID string) (*models.ShopImage, error) {
	return nil, nil
}

func newTestService() (*DefaultReviewService, *fakeReviewRepo) {
	repo := &fakeReviewRepo{}
	return &DefaultReviewService{Repo: repo, Shops: fakeShopRepo{}}, repo
}

func validDetailedRequest() CreateDetailedReviewRequest {
	return CreateDetailedReviewRequest{
		CreateReviewRequest: CreateReviewRequest{
			ShopID:  1,
			Rating:  4,
			Comment: "Great pour-over and plenty of seats near power outlets.",
		},
		SubRatings:   models.SubRatings{Atmosphere: 4, CoffeeQuality: 5, Service: 4, Value: 3},
		VisitPurpose: models.VisitPurposeWork,
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  CreateReviewRequest
	}{
		{"rating too low", CreateReviewRequest{ShopID: 1, Rating: 0, Comment: "long enough comment"}},
		{"rating too high", CreateReviewRequest{ShopID: 1, Rating: 6, Comment: "long enough comment"}},
		{"comment too short", CreateReviewRequest{ShopID: 1, Rating: 4, Comment: "short"}},
		{"whitespace does not pad the comment", CreateReviewRequest{ShopID: 1, Rating: 4, Comment: "   hi       "}},
		{"unknown shop", CreateReviewRequest{ShopID: 99, Rating: 4, Comment: "long enough comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(tt.req, nil)
			assert.Error(t, err)
		})
	}
}

func TestCreateReviewDisplayNameResolution(t *testing.T) {
	svc, repo := newTestService()
	req := CreateReviewRequest{ShopID: 1, Rating: 5, Comment: "Best espresso in the neighborhood."}

	_, err := svc.CreateReview(req, nil)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", repo.reviews[0].DisplayName)

	_, err = svc.CreateReview(req, &models.User{ID: "google:1", Nickname: "kaz"})
	require.NoError(t, err)
	assert.Equal(t, "kaz", repo.reviews[1].DisplayName)
	assert.Equal(t, "google:1", repo.reviews[1].UserID)

	req.DisplayName = "Coffee Fan"
	_, err = svc.CreateReview(req, &models.User{ID: "google:1", Nickname: "kaz"})
	require.NoError(t, err)
	assert.Equal(t, "Coffee Fan", repo.reviews[2].DisplayName, "an explicit name wins over the nickname")
}

func TestCreateDetailedReviewStartsUnapproved(t *testing.T) {
	svc, repo := newTestService()

	rev, err := svc.CreateDetailedReview(validDetailedRequest(), &models.User{ID: "google:1"})
	require.NoError(t, err)
	assert.False(t, rev.Approved)
	require.Len(t, repo.detailed, 1)
	assert.False(t, repo.detailed[0].Approved)
}

func TestCreateDetailedReviewValidation(t *testing.T) {
	svc, _ := newTestService()

	t.Run("needs the longer comment", func(t *testing.T) {
		req := validDetailedRequest()
		req.Comment = "only fifteen ch"
		_, err := svc.CreateDetailedReview(req, nil)
		assert.Error(t, err)
	})

	t.Run("sub-ratings out of range", func(t *testing.T) {
		req := validDetailedRequest()
		req.SubRatings.Service = 0
		_, err := svc.CreateDetailedReview(req, nil)
		assert.Error(t, err)
	})

	t.Run("unknown visit purpose", func(t *testing.T) {
		req := validDetailedRequest()
		req.VisitPurpose = "commute"
		_, err := svc.CreateDetailedReview(req, nil)
		assert.Error(t, err)
	})

	t.Run("malformed image URL", func(t *testing.T) {
		req := validDetailedRequest()
		req.ImageURLs = []string{"ftp://example.com/a.jpg"}
		_, err := svc.CreateDetailedReview(req, nil)
		assert.Error(t, err)
	})

	t.Run("https image URL accepted", func(t *testing.T) {
		req := validDetailedRequest()
		req.ImageURLs = []string{"https://cdn.example.com/a.jpg"}
		_, err := svc.CreateDetailedReview(req, nil)
		assert.NoError(t, err)
	})
}

func TestListDetailedByShopModerationGate(t *testing.T) {
	svc, repo := newTestService()
	repo.detailed = []models.DetailedReview{
		{Review: models.Review{ID: "a"}, Approved: true},
		{Review: models.Review{ID: "b"}, Approved: false},
	}

	public, err := svc.ListDetailedByShop(1, nil)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "a", public[0].ID)

	mod, err := svc.ListDetailedByShop(1, &models.User{ID: "google:2", Role: models.RoleModerator})
	require.NoError(t, err)
	assert.Len(t, mod, 2)
}

func TestApproveDetailedReviewRequiresModerator(t *testing.T) {
	svc, repo := newTestService()

	err := svc.ApproveDetailedReview("a", &models.User{ID: "google:1", Role: models.RoleUser})
	assert.Error(t, err)
	assert.Empty(t, repo.approved)

	err = svc.ApproveDetailedReview("a", &models.User{ID: "google:2", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, repo.approved)
}
