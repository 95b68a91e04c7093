package favoriteRepo

import (
	"context"
	"fmt"
	"time"

	"coffeemap/database"
	"coffeemap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFavoriteRepo implements FavoriteRepository using MongoDB.
type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo creates a new instance of FavoriteRepository using MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	coll := database.DB().Collection("user_favorites")
	repo := &MongoFavoriteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create favorite indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "shopId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert records a (user, shop) favorite pair; an existing pair is left
// untouched.
func (r *MongoFavoriteRepo) Upsert(userID string, shopID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "shopId": shopID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"shopId":    shopID,
			"createdAt": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert favorite (%s, %d): %w", userID, shopID, err)
	}
	return nil
}

// Delete removes a (user, shop) favorite pair.
func (r *MongoFavoriteRepo) Delete(userID string, shopID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "shopId": shopID})
	if err != nil {
		return fmt.Errorf("failed to delete favorite (%s, %d): %w", userID, shopID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("favorite (%s, %d) not found", userID, shopID)
	}
	return nil
}

// ListShopIDs retrieves the favorite shop IDs of one user.
func (r *MongoFavoriteRepo) ListShopIDs(userID string) ([]int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var ids []int64
	for cursor.Next(ctx) {
		var fav models.Favorite
		if err := cursor.Decode(&fav); err != nil {
			return nil, fmt.Errorf("failed to decode favorite: %w", err)
		}
		ids = append(ids, fav.ShopID)
	}
	return ids, nil
}
