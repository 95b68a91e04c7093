// models/shop.go
package models

import "time"

// Shop categories understood by the directory.
const (
	CategoryCafe      = "cafe"
	CategoryRoastery  = "roastery"
	CategoryChain     = "chain"
	CategorySpecialty = "specialty"
	CategoryBakery    = "bakery"
)

// ValidCategories lists every category a shop may carry.
var ValidCategories = []string{
	CategoryCafe,
	CategoryRoastery,
	CategoryChain,
	CategorySpecialty,
	CategoryBakery,
}

// IsValidCategory reports whether c is a known shop category.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Shop represents a coffee venue with its denormalized details.
// Distance and IsFavorite are computed per request and never persisted.
type Shop struct {
	ID          int64    `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Address     string   `bson:"address" json:"address"`
	Description string   `bson:"description" json:"description"`
	Latitude    float64  `bson:"latitude" json:"latitude"`
	Longitude   float64  `bson:"longitude" json:"longitude"`
	Category    string   `bson:"category" json:"category"`
	PriceRange  int      `bson:"priceRange" json:"price_range"` // 1-4
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Website     string   `bson:"website,omitempty" json:"website,omitempty"`
	HasWifi     bool     `bson:"hasWifi" json:"has_wifi"`
	HasPower    bool     `bson:"hasPower" json:"has_power"`
	Payments    []string `bson:"payments,omitempty" json:"payment_methods,omitempty"`
	CreatedBy   string   `bson:"createdBy" json:"created_by"`

	Hours  []ShopHours `bson:"hours,omitempty" json:"hours,omitempty"`
	Tags   []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	Images []ShopImage `bson:"images,omitempty" json:"images,omitempty"`

	// Reviews are aggregated onto the shop for listing responses.
	Reviews []Review `bson:"reviews,omitempty" json:"reviews,omitempty"`

	// Distance from the caller's location in kilometers, nil when the
	// caller did not supply a location.
	Distance   *float64 `bson:"-" json:"distance,omitempty"`
	IsFavorite bool     `bson:"-" json:"is_favorite"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// AverageRating returns the arithmetic mean of the shop's review
// ratings, or 0 when the shop has no reviews.
func (s *Shop) AverageRating() float64 {
	if len(s.Reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range s.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(s.Reviews))
}

// ShopHours holds the opening hours for one day of the week.
// DayOfWeek follows 0=Sunday .. 6=Saturday. Times are "HH:MM" 24-hour
// strings; both are empty when IsClosed is set.
type ShopHours struct {
	DayOfWeek int    `bson:"dayOfWeek" json:"day_of_week"`
	IsClosed  bool   `bson:"isClosed" json:"is_closed"`
	OpenTime  string `bson:"openTime,omitempty" json:"open_time,omitempty"`
	CloseTime string `bson:"closeTime,omitempty" json:"close_time,omitempty"`
}

// ShopImage is a stored photo of a shop, served from object storage.
type ShopImage struct {
	ID         string    `bson:"id" json:"id"`
	ShopID     int64     `bson:"shopId" json:"shop_id"`
	URL        string    `bson:"url" json:"url"`
	PublicID   string    `bson:"publicId" json:"-"`
	UploadedBy string    `bson:"uploadedBy" json:"uploaded_by"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// Coordinate is a geographic point in floating point degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies inside the WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
