package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection     = "users"
	parcelsCollection   = "parcels"
	customersCollection = "customers"
	shopsCollection     = "shops"
)

// NewMongoStore connects to uri, ensures the unique email indexes and wires
// the Mongo implementations of every collection.
func NewMongoStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(database)
	for _, name := range []string{usersCollection, customersCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create email index on %s: %w", name, err)
		}
	}

	return &Store{
		Users:     NewMongoUserRepository(db.Collection(usersCollection)),
		Customers: NewMongoCustomerRepository(db.Collection(customersCollection)),
		Shops:     NewMongoShopRepository(db.Collection(shopsCollection)),
		Parcels:   NewMongoParcelRepository(db.Collection(parcelsCollection)),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return oid, invalidID(id, err)
	}
	return oid, nil
}

// nonEmpty drops empty strings so that $set only touches supplied fields.
func nonEmpty(m bson.M) bson.M {
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			delete(m, k)
		}
	}
	return m
}

func upsertOne(ctx context.Context, coll *mongo.Collection, filter bson.M, set bson.M, op string) (*UpsertResult, error) {
	now := time.Now()
	set["updatedAt"] = now
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	res, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, unavailable(op, err)
	}

	result := &UpsertResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.UpsertedID = oid.Hex()
	}
	return result, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}, op string) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", unavailable(op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", unavailable(op, fmt.Errorf("unexpected inserted id %v", res.InsertedID))
	}
	return oid.Hex(), nil
}

func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}, entity, key string) error {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound(entity, key)
	}
	if err != nil {
		return unavailable("find "+entity+" "+key, err)
	}
	return nil
}

// findSorted returns matching documents in insertion order.
func findSorted[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, op string) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, unavailable(op, err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, unavailable(op, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M, entity, id string) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return unavailable("delete "+entity+" "+id, err)
	}
	if res.DeletedCount == 0 {
		return notFound(entity, id)
	}
	return nil
}
