package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB. Basic and
// detailed reviews live in separate collections, mirroring the two
// review forms.
type MongoReviewRepo struct {
	reviews  *mongo.Collection
	detailed *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.DB()
	repo := &MongoReviewRepo{
		reviews:  db.Collection("reviews"),
		detailed: db.Collection("detailed_reviews"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shopId", Value: 1}}},
	}

	if _, err := r.reviews.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	if _, err := r.detailed.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create detailed review indexes: %w", err)
	}
	return nil
}

// Create inserts a new basic review.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()
	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// CreateDetailed inserts a new detailed review.
func (r *MongoReviewRepo) CreateDetailed(review *models.DetailedReview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()
	if _, err := r.detailed.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create detailed review: %w", err)
	}
	return nil
}

// ListByShop retrieves the basic reviews of one shop.
func (r *MongoReviewRepo) ListByShop(shopID int64) ([]models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reviews.Find(ctx, bson.M{"shopId": shopID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for shop %d: %w", shopID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// ListByShops retrieves the basic reviews of many shops in one query.
func (r *MongoReviewRepo) ListByShops(shopIDs []int64) (map[int64][]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	byShop := make(map[int64][]models.Review, len(shopIDs))
	if len(shopIDs) == 0 {
		return byShop, nil
	}

	cursor, err := r.reviews.Find(ctx, bson.M{"shopId": bson.M{"$in": shopIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		byShop[review.ShopID] = append(byShop[review.ShopID], review)
	}
	return byShop, nil
}

// ListDetailedByShop retrieves the detailed reviews of one shop.
func (r *MongoReviewRepo) ListDetailedByShop(shopID int64, includeUnapproved bool) ([]models.DetailedReview, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"shopId": shopID}
	if !includeUnapproved {
		filter["approved"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.detailed.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve detailed reviews for shop %d: %w", shopID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.DetailedReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode detailed reviews: %w", err)
	}
	return reviews, nil
}

// Approve flips the moderation flag on a detailed review.
func (r *MongoReviewRepo) Approve(reviewID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.detailed.UpdateOne(ctx,
		bson.M{"id": reviewID},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to approve review %s: %w", reviewID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("detailed review %s not found", reviewID)
	}
	return nil
}
