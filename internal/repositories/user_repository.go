package repositories

import (
	"context"

	"speedxpress/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	UpsertByEmail(ctx context.Context, email string, user *models.User) (*UpsertResult, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByAccountType(ctx context.Context, accountType models.AccountType) ([]models.User, error)
	// DeleteByID removes a user; a non-empty accountType restricts the match.
	DeleteByID(ctx context.Context, id string, accountType models.AccountType) error
}
