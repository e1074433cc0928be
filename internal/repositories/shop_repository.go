package repositories

import (
	"context"

	"speedxpress/internal/models"
)

// ShopRepository defines the interface for shop data access.
type ShopRepository interface {
	Create(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, id string) (*models.Shop, error)
	// UpdateProfile sets the non-empty profile fields of an existing shop.
	UpdateProfile(ctx context.Context, id string, profile models.ShopProfile) (*UpsertResult, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]models.Shop, error)
	DeleteByID(ctx context.Context, id string) error
}
