// models/review.go
package models

import "time"

// Visit purposes accepted on detailed reviews.
const (
	VisitPurposeWork    = "work"
	VisitPurposeStudy   = "study"
	VisitPurposeMeeting = "meeting"
	VisitPurposeLeisure = "leisure"
	VisitPurposeDate    = "date"
)

var validVisitPurposes = map[string]bool{
	VisitPurposeWork:    true,
	VisitPurposeStudy:   true,
	VisitPurposeMeeting: true,
	VisitPurposeLeisure: true,
	VisitPurposeDate:    true,
}

// IsValidVisitPurpose reports whether p is a known visit purpose.
func IsValidVisitPurpose(p string) bool {
	return validVisitPurposes[p]
}

// Review is a basic rating plus comment against a shop.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	ShopID      int64     `bson:"shopId" json:"shop_id"`
	UserID      string    `bson:"userId,omitempty" json:"user_id,omitempty"`
	DisplayName string    `bson:"displayName" json:"display_name"`
	Rating      int       `bson:"rating" json:"rating"` // 1-5
	Comment     string    `bson:"comment" json:"comment"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// SubRatings carries the four per-aspect scores of a detailed review.
type SubRatings struct {
	Atmosphere    int `bson:"atmosphere" json:"atmosphere"`
	CoffeeQuality int `bson:"coffeeQuality" json:"coffee_quality"`
	Service       int `bson:"service" json:"service"`
	Value         int `bson:"value" json:"value"`
}

// DetailedReview extends Review with sub-ratings, a visit purpose,
// optional photos and a moderation flag. Unapproved detailed reviews
// stay out of public listings.
type DetailedReview struct {
	Review       `bson:",inline"`
	SubRatings   SubRatings `bson:"subRatings" json:"sub_ratings"`
	VisitPurpose string     `bson:"visitPurpose" json:"visit_purpose"`
	ImageURLs    []string   `bson:"imageUrls,omitempty" json:"image_urls,omitempty"`
	Approved     bool       `bson:"approved" json:"approved"`
}
