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

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{db: db}
}

// UpsertByEmail replaces the non-empty fields of the customer with the given
// email, creating the customer if it does not exist yet.
func (r *GORMCustomerRepository) UpsertByEmail(ctx context.Context, email string, customer *models.Customer) (*UpsertResult, error) {
	result := &UpsertResult{Acknowledged: true}
	customer.Email = email
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		found := tx.Where("email = ?", email).Limit(1).Find(&existing)
		if found.Error != nil {
			return fmt.Errorf("find customer: %w", found.Error)
		}
		if found.RowsAffected == 0 {
			customer.ID = uuid.New().String()
			created := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Create(customer)
			if created.Error != nil {
				return fmt.Errorf("create customer: %w", created.Error)
			}
			if created.RowsAffected == 1 {
				result.UpsertedID = customer.ID
				return nil
			}
			// A concurrent request inserted the email first; update its row.
			if err := tx.First(&existing, "email = ?", email).Error; err != nil {
				return fmt.Errorf("find customer: %w", err)
			}
		}

		customer.ID = ""
		res := tx.Model(&existing).Updates(customer)
		if res.Error != nil {
			return fmt.Errorf("update customer: %w", res.Error)
		}
		result.MatchedCount = 1
		result.ModifiedCount = res.RowsAffected
		if err := tx.First(customer, "id = ?", existing.ID).Error; err != nil {
			return fmt.Errorf("reload customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, unavailable("upsert customer "+email, err)
	}
	return result, nil
}

// GetByEmail retrieves a customer by email.
func (r *GORMCustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("customer", email)
		}
		return nil, unavailable("get customer by email "+email, err)
	}
	return &customer, nil
}

// GetByID retrieves a customer by its ID.
func (r *GORMCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("customer", id)
		}
		return nil, unavailable("get customer "+id, err)
	}
	return &customer, nil
}

// ListByMerchant returns the customers registered by one merchant.
func (r *GORMCustomerRepository) ListByMerchant(ctx context.Context, merchantEmail string) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := r.db.WithContext(ctx).
		Where("merchant_email = ?", merchantEmail).
		Order("created_at asc").
		Find(&customers).Error
	if err != nil {
		return nil, unavailable("list customers", err)
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers, nil
}

// DeleteByID deletes a customer by its ID.
func (r *GORMCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return unavailable("delete customer "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("customer", id)
	}
	return nil
}
