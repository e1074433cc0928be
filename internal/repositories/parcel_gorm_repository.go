package repositories

import (
	"context"
	"errors"
	"time"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMParcelRepository is a GORM implementation of ParcelRepository.
type GORMParcelRepository struct {
	db *gorm.DB
}

// NewGORMParcelRepository creates a new instance of GORMParcelRepository.
func NewGORMParcelRepository(db *gorm.DB) *GORMParcelRepository {
	return &GORMParcelRepository{db: db}
}

// Create inserts a parcel and assigns its ID.
func (r *GORMParcelRepository) Create(ctx context.Context, parcel *models.Parcel) error {
	parcel.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(parcel).Error; err != nil {
		return unavailable("create parcel", err)
	}
	return nil
}

// GetByID retrieves a single parcel by its ID.
func (r *GORMParcelRepository) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var parcel models.Parcel
	if err := r.db.WithContext(ctx).First(&parcel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("parcel", id)
		}
		return nil, unavailable("get parcel "+id, err)
	}
	return &parcel, nil
}

// ListBySender returns the parcels created by senderEmail.
func (r *GORMParcelRepository) ListBySender(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	return r.find(ctx, "list parcels by sender", r.db.Where("sender_email = ?", senderEmail))
}

// ListByDistrict returns parcels bound for district, optionally in one status.
func (r *GORMParcelRepository) ListByDistrict(ctx context.Context, district string, status models.ParcelStatus) ([]models.Parcel, error) {
	q := r.db.Where("customer_district = ?", district)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	return r.find(ctx, "list parcels by district", q)
}

// ListAll returns every parcel.
func (r *GORMParcelRepository) ListAll(ctx context.Context) ([]models.Parcel, error) {
	return r.find(ctx, "list parcels", r.db)
}

func (r *GORMParcelRepository) find(ctx context.Context, op string, q *gorm.DB) ([]models.Parcel, error) {
	parcels := []models.Parcel{}
	if err := q.WithContext(ctx).Order("created_at asc").Find(&parcels).Error; err != nil {
		return nil, unavailable(op, err)
	}
	if parcels == nil {
		parcels = []models.Parcel{}
	}
	return parcels, nil
}

// UpdateStatus sets the status of an existing parcel.
func (r *GORMParcelRepository) UpdateStatus(ctx context.Context, id string, status models.ParcelStatus) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&models.Parcel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return unavailable("update parcel status "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("parcel", id)
	}
	return nil
}

// MarkPaid records a successful charge. The paid = false guard makes the
// transition happen at most once even under concurrent payments.
func (r *GORMParcelRepository) MarkPaid(ctx context.Context, id string, paymentID string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Parcel{}).
		Where("id = ? AND paid = ?", id, false).
		Updates(map[string]interface{}{
			"paid":       true,
			"payment_id": paymentID,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return unavailable("mark parcel paid "+id, res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&models.Parcel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return unavailable("count parcel "+id, err)
	}
	if count == 0 {
		return notFound("parcel", id)
	}
	return apperr.New(apperr.KindConflict, "parcel is already paid")
}

// DeleteByID deletes a parcel by its ID.
func (r *GORMParcelRepository) DeleteByID(ctx context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Parcel{}, "id = ?", id)
	if res.Error != nil {
		return unavailable("delete parcel "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("parcel", id)
	}
	return nil
}
