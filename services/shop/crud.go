package shop

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"coffeemap/models"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)

// CreateShop validates the request, resolves coordinates and persists
// the shop.
func (s *DefaultShopService) CreateShop(req CreateShopRequest, creator *models.User) (*models.Shop, error) {
	if creator == nil {
		return nil, fmt.Errorf("a signed-in user is required to create a shop")
	}
	if err := validateShopRequest(req); err != nil {
		return nil, err
	}

	coord, err := s.resolveCoordinate(req)
	if err != nil {
		return nil, err
	}

	shop := &models.Shop{
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Description: req.Description,
		Latitude:    coord.Latitude,
		Longitude:   coord.Longitude,
		Category:    req.Category,
		PriceRange:  req.PriceRange,
		Phone:       req.Phone,
		Website:     req.Website,
		HasWifi:     req.HasWifi,
		HasPower:    req.HasPower,
		Payments:    req.Payments,
		Hours:       normalizeHours(req.Hours),
		Tags:        normalizeTags(req.Tags),
		CreatedBy:   creator.ID,
	}
	if err := s.Repo.Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// UpdateShop applies the request to an existing shop. Only the creator
// or a moderator may update.
func (s *DefaultShopService) UpdateShop(id int64, req CreateShopRequest, caller *models.User) (*models.Shop, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if caller == nil || (existing.CreatedBy != caller.ID && !caller.CanModerate()) {
		return nil, fmt.Errorf("only the creator or a moderator may update shop %d", id)
	}
	if err := validateShopRequest(req); err != nil {
		return nil, err
	}

	coord, err := s.resolveCoordinate(req)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Address = strings.TrimSpace(req.Address)
	existing.Description = req.Description
	existing.Latitude = coord.Latitude
	existing.Longitude = coord.Longitude
	existing.Category = req.Category
	existing.PriceRange = req.PriceRange
	existing.Phone = req.Phone
	existing.Website = req.Website
	existing.HasWifi = req.HasWifi
	existing.HasPower = req.HasPower
	existing.Payments = req.Payments
	existing.Hours = normalizeHours(req.Hours)
	existing.Tags = normalizeTags(req.Tags)

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteShop removes a shop. Moderator or above only.
func (s *DefaultShopService) DeleteShop(id int64, caller *models.User) error {
	if caller == nil || !caller.CanModerate() {
		return fmt.Errorf("only a moderator may delete shops")
	}
	return s.Repo.Delete(id)
}

// resolveCoordinate uses the supplied latitude/longitude when present,
// falling back to geocoding the address.
func (s *DefaultShopService) resolveCoordinate(req CreateShopRequest) (models.Coordinate, error) {
	if req.Latitude != nil && req.Longitude != nil {
		coord := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if !coord.Valid() {
			return models.Coordinate{}, fmt.Errorf("coordinate out of bounds: lat %.4f lng %.4f", coord.Latitude, coord.Longitude)
		}
		return coord, nil
	}
	if s.Geocoder == nil {
		return models.Coordinate{}, fmt.Errorf("no coordinate supplied and geocoding is not configured")
	}
	coord, err := s.Geocoder.Geocode(context.Background(), req.Address)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("failed to geocode address %q: %w", req.Address, err)
	}
	return coord, nil
}

func validateShopRequest(req CreateShopRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("shop name is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("shop address is required")
	}
	if !models.IsValidCategory(req.Category) {
		return fmt.Errorf("unknown category %q", req.Category)
	}
	if req.PriceRange < 1 || req.PriceRange > 4 {
		return fmt.Errorf("price range must be between 1 and 4")
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return fmt.Errorf("malformed phone number")
	}
	if req.Website != "" {
		u, err := url.Parse(req.Website)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("malformed website URL")
		}
	}
	seen := make(map[int]bool)
	for _, h := range req.Hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("day of week must be between 0 and 6")
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("duplicate hours entry for day %d", h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true
		if !h.IsClosed {
			if !validClock(h.OpenTime) || !validClock(h.CloseTime) {
				return fmt.Errorf("hours for day %d must carry HH:MM open and close times", h.DayOfWeek)
			}
		}
	}
	return nil
}

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validClock(v string) bool {
	return clockPattern.MatchString(v)
}

func normalizeHours(hours []models.ShopHours) []models.ShopHours {
	out := make([]models.ShopHours, 0, len(hours))
	for _, h := range hours {
		if h.IsClosed {
			h.OpenTime = ""
			h.CloseTime = ""
		}
		out = append(out, h)
	}
	return out
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
