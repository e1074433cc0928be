package repositories

import (
	"context"
	"time"

	"speedxpress/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoShopRepository is a MongoDB implementation of ShopRepository.
type MongoShopRepository struct {
	coll *mongo.Collection
}

// NewMongoShopRepository creates a MongoShopRepository over coll.
func NewMongoShopRepository(coll *mongo.Collection) *MongoShopRepository {
	return &MongoShopRepository{coll: coll}
}

// Create inserts shop and sets its ID to the generated ObjectID hex.
func (r *MongoShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	shop.ID = ""
	shop.CreatedAt = time.Now()
	shop.UpdatedAt = shop.CreatedAt
	id, err := insertOne(ctx, r.coll, shop, "create shop")
	if err != nil {
		return err
	}
	shop.ID = id
	return nil
}

// GetByID retrieves a shop by its ID.
func (r *MongoShopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var shop models.Shop
	if err := findOne(ctx, r.coll, bson.M{"_id": oid}, &shop, "shop", id); err != nil {
		return nil, err
	}
	return &shop, nil
}

// UpdateProfile sets the non-empty profile fields of an existing shop.
func (r *MongoShopRepository) UpdateProfile(ctx context.Context, id string, profile models.ShopProfile) (*UpsertResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := nonEmpty(bson.M{
		"shopName":    profile.ShopName,
		"ownerName":   profile.OwnerName,
		"shopNumber":  profile.ShopNumber,
		"shopAddress": profile.ShopAddress,
	})
	set["updatedAt"] = time.Now()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, unavailable("update shop "+id, err)
	}
	if res.MatchedCount == 0 {
		return nil, notFound("shop", id)
	}
	return &UpsertResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// ListByOwnerEmail returns the shops registered under email.
func (r *MongoShopRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Shop, error) {
	return findSorted[models.Shop](ctx, r.coll, bson.M{"shopEmail": email}, "list shops")
}

// DeleteByID deletes a shop by its ID.
func (r *MongoShopRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return deleteOne(ctx, r.coll, bson.M{"_id": oid}, "shop", id)
}
