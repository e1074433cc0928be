package repositories

import (
	"context"

	"speedxpress/internal/models"
)

// ParcelRepository defines the interface for parcel data access.
type ParcelRepository interface {
	Create(ctx context.Context, parcel *models.Parcel) error
	GetByID(ctx context.Context, id string) (*models.Parcel, error)
	ListBySender(ctx context.Context, senderEmail string) ([]models.Parcel, error)
	// ListByDistrict filters on the recipient district; an empty status matches all.
	ListByDistrict(ctx context.Context, district string, status models.ParcelStatus) ([]models.Parcel, error)
	ListAll(ctx context.Context) ([]models.Parcel, error)
	UpdateStatus(ctx context.Context, id string, status models.ParcelStatus) error
	// MarkPaid flips paid from false to true. It fails with a conflict when
	// the parcel is already paid.
	MarkPaid(ctx context.Context, id string, paymentID string) error
	DeleteByID(ctx context.Context, id string) error
}
