package shop

import (
	"context"
	"errors"
	"testing"

	"coffeemap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memShopRepo struct {
	shops  map[int64]*models.Shop
	nextID int64
}

func newMemShopRepo() *memShopRepo {
	return &memShopRepo{shops: make(map[int64]*models.Shop)}
}

func (r *memShopRepo) GetByID(id int64) (*models.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, errors.New("shop not found")
	}
	cp := *s
	return &cp, nil
}

func (r *memShopRepo) GetAll() ([]models.Shop, error) {
	out := make([]models.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memShopRepo) Create(shop *models.Shop) error {
	r.nextID++
	shop.ID = r.nextID
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *memShopRepo) Update(shop *models.Shop) error {
	cp := *shop
	r.shops[shop.ID] = &cp
	return nil
}

func (r *memShopRepo) Delete(id int64) error {
	delete(r.shops, id)
	return nil
}

func (r *memShopRepo) AddImage(id int64, img models.ShopImage) error { return nil }
func (r *memShopRepo) RemoveImage(id int64, imageID string) (*models.ShopImage, error) {
	return nil, nil
}

type stubGeocoder struct {
	coord models.Coordinate
	err   error
	calls int
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	g.calls++
	return g.coord, g.err
}

func validCreateRequest() CreateShopRequest {
	lat, lng := 35.66, 139.70
	return CreateShopRequest{
		Name:       "Bright Bean",
		Address:    "12 Harbor St",
		Category:   models.CategoryCafe,
		PriceRange: 2,
		Latitude:   &lat,
		Longitude:  &lng,
	}
}

func TestCreateShopRequiresSignedInUser(t *testing.T) {
	svc := &DefaultShopService{Repo: newMemShopRepo()}
	_, err := svc.CreateShop(validCreateRequest(), nil)
	assert.Error(t, err)
}

func TestCreateShopValidation(t *testing.T) {
	svc := &DefaultShopService{Repo: newMemShopRepo()}
	creator := &models.User{ID: "google:1"}

	mutate := func(f func(*CreateShopRequest)) CreateShopRequest {
		req := validCreateRequest()
		f(&req)
		return req
	}

	tests := []struct {
		name string
		req  CreateShopRequest
	}{
		{"blank name", mutate(func(r *CreateShopRequest) { r.Name = "   " })},
		{"blank address", mutate(func(r *CreateShopRequest) { r.Address = "" })},
		{"unknown category", mutate(func(r *CreateShopRequest) { r.Category = "teahouse" })},
		{"price range too high", mutate(func(r *CreateShopRequest) { r.PriceRange = 5 })},
		{"malformed phone", mutate(func(r *CreateShopRequest) { r.Phone = "call me" })},
		{"malformed website", mutate(func(r *CreateShopRequest) { r.Website = "example.com" })},
		{"duplicate hours day", mutate(func(r *CreateShopRequest) {
			r.Hours = []models.ShopHours{
				{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "18:00"},
				{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"},
			}
		})},
		{"invalid clock value", mutate(func(r *CreateShopRequest) {
			r.Hours = []models.ShopHours{{DayOfWeek: 1, OpenTime: "8am", CloseTime: "18:00"}}
		})},
		{"coordinate out of bounds", mutate(func(r *CreateShopRequest) {
			bad := 91.0
			r.Latitude = &bad
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateShop(tt.req, creator)
			assert.Error(t, err)
		})
	}
}

func TestCreateShopGeocodesWhenNoCoordinate(t *testing.T) {
	geo := &stubGeocoder{coord: models.Coordinate{Latitude: 35.66, Longitude: 139.70}}
	svc := &DefaultShopService{Repo: newMemShopRepo(), Geocoder: geo}

	req := validCreateRequest()
	req.Latitude = nil
	req.Longitude = nil

	shop, err := svc.CreateShop(req, &models.User{ID: "google:1"})
	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls)
	assert.Equal(t, 35.66, shop.Latitude)
	assert.Equal(t, 139.70, shop.Longitude)
}

func TestCreateShopWithoutCoordinateOrGeocoderFails(t *testing.T) {
	svc := &DefaultShopService{Repo: newMemShopRepo()}

	req := validCreateRequest()
	req.Latitude = nil
	req.Longitude = nil

	_, err := svc.CreateShop(req, &models.User{ID: "google:1"})
	assert.Error(t, err)
}

func TestCreateShopNormalizesTagsAndRecordsCreator(t *testing.T) {
	svc := &DefaultShopService{Repo: newMemShopRepo()}

	req := validCreateRequest()
	req.Tags = []string{" Quiet ", "quiet", "POUR-OVER", ""}

	shop, err := svc.CreateShop(req, &models.User{ID: "google:1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"quiet", "pour-over"}, shop.Tags)
	assert.Equal(t, "google:1", shop.CreatedBy)
	assert.NotZero(t, shop.ID)
}

func TestUpdateShopPermissions(t *testing.T) {
	repo := newMemShopRepo()
	svc := &DefaultShopService{Repo: repo}

	created, err := svc.CreateShop(validCreateRequest(), &models.User{ID: "google:1"})
	require.NoError(t, err)

	req := validCreateRequest()
	req.Name = "Bright Bean Roastery"
	req.Category = models.CategoryRoastery

	_, err = svc.UpdateShop(created.ID, req, &models.User{ID: "google:2", Role: models.RoleUser})
	assert.Error(t, err, "a stranger may not update the shop")

	updated, err := svc.UpdateShop(created.ID, req, &models.User{ID: "google:1"})
	require.NoError(t, err)
	assert.Equal(t, "Bright Bean Roastery", updated.Name)

	req.Name = "Moderated Name"
	updated, err = svc.UpdateShop(created.ID, req, &models.User{ID: "google:3", Role: models.RoleModerator})
	require.NoError(t, err)
	assert.Equal(t, "Moderated Name", updated.Name)
}

func TestDeleteShopRequiresModerator(t *testing.T) {
	repo := newMemShopRepo()
	svc := &DefaultShopService{Repo: repo}

	created, err := svc.CreateShop(validCreateRequest(), &models.User{ID: "google:1"})
	require.NoError(t, err)

	err = svc.DeleteShop(created.ID, &models.User{ID: "google:1", Role: models.RoleUser})
	assert.Error(t, err, "even the creator needs moderator rights to delete")

	require.NoError(t, svc.DeleteShop(created.ID, &models.User{ID: "google:9", Role: models.RoleModerator}))
	_, err = repo.GetByID(created.ID)
	assert.Error(t, err)
}
