package repositories

import (
	"context"
	"time"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoParcelRepository is a MongoDB implementation of ParcelRepository.
type MongoParcelRepository struct {
	coll *mongo.Collection
}

// NewMongoParcelRepository creates a MongoParcelRepository over coll.
func NewMongoParcelRepository(coll *mongo.Collection) *MongoParcelRepository {
	return &MongoParcelRepository{coll: coll}
}

// Create inserts parcel and sets its ID to the generated ObjectID hex.
func (r *MongoParcelRepository) Create(ctx context.Context, parcel *models.Parcel) error {
	parcel.ID = ""
	parcel.CreatedAt = time.Now()
	parcel.UpdatedAt = parcel.CreatedAt
	id, err := insertOne(ctx, r.coll, parcel, "create parcel")
	if err != nil {
		return err
	}
	parcel.ID = id
	return nil
}

// GetByID retrieves a single parcel by its ID.
func (r *MongoParcelRepository) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var parcel models.Parcel
	if err := findOne(ctx, r.coll, bson.M{"_id": oid}, &parcel, "parcel", id); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// ListBySender returns the parcels created by senderEmail.
func (r *MongoParcelRepository) ListBySender(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	return findSorted[models.Parcel](ctx, r.coll, bson.M{"senderEmail": senderEmail}, "list parcels by sender")
}

// ListByDistrict returns parcels bound for district, optionally in one status.
func (r *MongoParcelRepository) ListByDistrict(ctx context.Context, district string, status models.ParcelStatus) ([]models.Parcel, error) {
	filter := bson.M{"customerInfo.district": district}
	if status != "" {
		filter["status"] = string(status)
	}
	return findSorted[models.Parcel](ctx, r.coll, filter, "list parcels by district")
}

// ListAll returns every parcel in insertion order.
func (r *MongoParcelRepository) ListAll(ctx context.Context) ([]models.Parcel, error) {
	return findSorted[models.Parcel](ctx, r.coll, bson.M{}, "list parcels")
}

// UpdateStatus sets the delivery status of a parcel.
func (r *MongoParcelRepository) UpdateStatus(ctx context.Context, id string, status models.ParcelStatus) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return unavailable("update parcel status "+id, err)
	}
	if res.MatchedCount == 0 {
		return notFound("parcel", id)
	}
	return nil
}

// MarkPaid flags an unpaid parcel as paid. A parcel that is already paid
// yields a conflict.
func (r *MongoParcelRepository) MarkPaid(ctx context.Context, id string, paymentID string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "paid": false}, bson.M{"$set": bson.M{
		"paid":      true,
		"paymentId": paymentID,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return unavailable("mark parcel paid "+id, err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return unavailable("count parcel "+id, err)
	}
	if n == 0 {
		return notFound("parcel", id)
	}
	return apperr.New(apperr.KindConflict, "parcel is already paid")
}

// DeleteByID deletes a parcel by its ID.
func (r *MongoParcelRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return deleteOne(ctx, r.coll, bson.M{"_id": oid}, "parcel", id)
}
