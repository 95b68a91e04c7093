// File: database/repository/shop/shopMongoQueries.go
package shopRepo

import (
	"fmt"
	"time"

	"coffeemap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a shop by its numeric ID.
func (r *MongoShopRepo) GetByID(id int64) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shop); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("shop with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch shop with id %d: %w", id, err)
	}
	return &shop, nil
}

// GetAll retrieves the full shop list.
func (r *MongoShopRepo) GetAll() ([]models.Shop, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []models.Shop
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf("failed to decode shops: %w", err)
	}
	return shops, nil
}
