package repositories

import (
	"context"

	"speedxpress/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a MongoUserRepository over coll.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

// UpsertByEmail sets the non-empty fields of the user with the given email,
// creating it if it does not exist yet.
func (r *MongoUserRepository) UpsertByEmail(ctx context.Context, email string, user *models.User) (*UpsertResult, error) {
	set := nonEmpty(bson.M{
		"account_type": string(user.AccountType),
		"name":         user.Name,
		"phone":        user.Phone,
		"photoURL":     user.PhotoURL,
	})
	return upsertOne(ctx, r.coll, bson.M{"email": email}, set, "upsert user "+email)
}

// GetByEmail retrieves a user by email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := findOne(ctx, r.coll, bson.M{"email": email}, &user, "user", email); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by its ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := findOne(ctx, r.coll, bson.M{"_id": oid}, &user, "user", id); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByAccountType returns users of one account type in insertion order.
func (r *MongoUserRepository) ListByAccountType(ctx context.Context, accountType models.AccountType) ([]models.User, error) {
	return findSorted[models.User](ctx, r.coll, bson.M{"account_type": string(accountType)}, "list users by account type")
}

// DeleteByID deletes a user by its ID; a non-empty accountType restricts
// the match.
func (r *MongoUserRepository) DeleteByID(ctx context.Context, id string, accountType models.AccountType) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": oid}
	if accountType != "" {
		filter["account_type"] = string(accountType)
	}
	return deleteOne(ctx, r.coll, filter, "user", id)
}
