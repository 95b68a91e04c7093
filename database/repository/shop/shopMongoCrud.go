// File: database/repository/shop/shopMongoCrud.go
package shopRepo

import (
	"fmt"
	"time"

	"coffeemap/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new shop document, assigning the next numeric ID.
func (r *MongoShopRepo) Create(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	shop.ID = id

	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, shop); err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// Update modifies an existing shop document.
func (r *MongoShopRepo) Update(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	shop.UpdatedAt = time.Now()
	filter := bson.M{"id": shop.ID}
	update := bson.M{"$set": shop}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update shop with id %d: %w", shop.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %d not found", shop.ID)
	}
	return nil
}

// Delete removes a shop document by its ID.
func (r *MongoShopRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shop with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("shop with id %d not found", id)
	}
	return nil
}

// AddImage appends an image row to a shop.
func (r *MongoShopRepo) AddImage(shopID int64, image models.ShopImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": image},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": shopID}, update)
	if err != nil {
		return fmt.Errorf("failed to add image to shop %d: %w", shopID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %d not found", shopID)
	}
	return nil
}

// RemoveImage pulls an image row from a shop by image ID and returns it.
func (r *MongoShopRepo) RemoveImage(shopID int64, imageID string) (*models.ShopImage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"id": shopID}).Decode(&shop); err != nil {
		return nil, fmt.Errorf("failed to fetch shop with id %d: %w", shopID, err)
	}

	var removed *models.ShopImage
	for i := range shop.Images {
		if shop.Images[i].ID == imageID {
			removed = &shop.Images[i]
			break
		}
	}
	if removed == nil {
		return nil, fmt.Errorf("image %s not found on shop %d", imageID, shopID)
	}

	update := bson.M{
		"$pull": bson.M{"images": bson.M{"id": imageID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": shopID}, update); err != nil {
		return nil, fmt.Errorf("failed to remove image %s from shop %d: %w", imageID, shopID, err)
	}
	return removed, nil
}
