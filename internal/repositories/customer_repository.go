package repositories

import (
	"context"

	"speedxpress/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	UpsertByEmail(ctx context.Context, email string, customer *models.Customer) (*UpsertResult, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	ListByMerchant(ctx context.Context, merchantEmail string) ([]models.Customer, error)
	DeleteByID(ctx context.Context, id string) error
}
