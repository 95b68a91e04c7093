// models/favorite.go
package models

import "time"

// Favorite is a user-specific bookmark on a shop. The (UserID, ShopID)
// pair is unique; toggling off deletes the row.
type Favorite struct {
	UserID    string    `bson:"userId" json:"user_id"`
	ShopID    int64     `bson:"shopId" json:"shop_id"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
