package repositories

import (
	"context"

	"speedxpress/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCustomerRepository is a MongoDB implementation of CustomerRepository.
type MongoCustomerRepository struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepository creates a MongoCustomerRepository over coll.
func NewMongoCustomerRepository(coll *mongo.Collection) *MongoCustomerRepository {
	return &MongoCustomerRepository{coll: coll}
}

// UpsertByEmail sets the non-empty fields of the customer with the given
// email, creating it if it does not exist yet.
func (r *MongoCustomerRepository) UpsertByEmail(ctx context.Context, email string, customer *models.Customer) (*UpsertResult, error) {
	set := nonEmpty(bson.M{
		"merchantEmail": customer.MerchantEmail,
		"name":          customer.Name,
		"phone":         customer.Phone,
		"division":      customer.Division,
		"district":      customer.District,
		"address":       customer.Address,
	})
	return upsertOne(ctx, r.coll, bson.M{"email": email}, set, "upsert customer "+email)
}

// GetByEmail retrieves a customer by email.
func (r *MongoCustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := findOne(ctx, r.coll, bson.M{"email": email}, &customer, "customer", email); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByID retrieves a customer by its ID.
func (r *MongoCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := findOne(ctx, r.coll, bson.M{"_id": oid}, &customer, "customer", id); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListByMerchant returns the customers registered by one merchant.
func (r *MongoCustomerRepository) ListByMerchant(ctx context.Context, merchantEmail string) ([]models.Customer, error) {
	return findSorted[models.Customer](ctx, r.coll, bson.M{"merchantEmail": merchantEmail}, "list customers")
}

// DeleteByID deletes a customer by its ID.
func (r *MongoCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return deleteOne(ctx, r.coll, bson.M{"_id": oid}, "customer", id)
}
