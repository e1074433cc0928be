package repositories

import (
	"context"
	"errors"
	"fmt"

	"speedxpress/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// UpsertByEmail updates the user with the given email, or creates it.
// Zero-valued fields of user are left untouched on update.
func (r *GORMUserRepository) UpsertByEmail(ctx context.Context, email string, user *models.User) (*UpsertResult, error) {
	result := &UpsertResult{Acknowledged: true}
	user.Email = email
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		found := tx.Where("email = ?", email).Limit(1).Find(&existing)
		if found.Error != nil {
			return fmt.Errorf("find user: %w", found.Error)
		}
		if found.RowsAffected == 0 {
			user.ID = uuid.New().String()
			created := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Create(user)
			if created.Error != nil {
				return fmt.Errorf("create user: %w", created.Error)
			}
			if created.RowsAffected == 1 {
				result.UpsertedID = user.ID
				return nil
			}
			// A concurrent request inserted the email first; update its row.
			if err := tx.First(&existing, "email = ?", email).Error; err != nil {
				return fmt.Errorf("find user: %w", err)
			}
		}

		user.ID = ""
		res := tx.Model(&existing).Updates(user)
		if res.Error != nil {
			return fmt.Errorf("update user: %w", res.Error)
		}
		result.MatchedCount = 1
		result.ModifiedCount = res.RowsAffected
		if err := tx.First(user, "id = ?", existing.ID).Error; err != nil {
			return fmt.Errorf("reload user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("upsert user "+email, err)
	}
	return result, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", email)
		}
		return nil, unavailable("get user by email "+email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by its ID.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", id)
		}
		return nil, unavailable("get user "+id, err)
	}
	return &user, nil
}

// ListByAccountType returns users of one account type in insertion order.
func (r *GORMUserRepository) ListByAccountType(ctx context.Context, accountType models.AccountType) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).
		Where("account_type = ?", accountType).
		Order("created_at asc").
		Find(&users).Error
	if err != nil {
		return nil, unavailable("list users by account type", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// DeleteByID deletes a user by its ID.
func (r *GORMUserRepository) DeleteByID(ctx context.Context, id string, accountType models.AccountType) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if accountType != "" {
		q = q.Where("account_type = ?", accountType)
	}
	res := q.Delete(&models.User{})
	if res.Error != nil {
		return unavailable("delete user "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("user", id)
	}
	return nil
}
