package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/repositories"
)

// CustomerService handles business logic for merchant customers.
type CustomerService struct {
	customers repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customers repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// SaveCustomer upserts the customer keyed by email.
func (s *CustomerService) SaveCustomer(ctx context.Context, email string, customer *models.Customer) (*repositories.UpsertResult, error) {
	return s.customers.UpsertByEmail(ctx, email, customer)
}

// Owners returns the emails allowed to write the customer keyed by email.
// A stored customer belongs to its recorded merchant and to itself; a new
// one to the merchant named in the request and to itself.
func (s *CustomerService) Owners(ctx context.Context, email string, customer *models.Customer) ([]string, error) {
	existing, err := s.customers.GetByEmail(ctx, email)
	if apperr.Is(err, apperr.KindNotFound) {
		return []string{customer.MerchantEmail, email}, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{existing.MerchantEmail, existing.Email}, nil
}

// ListByMerchant returns the customers registered by merchantEmail.
func (s *CustomerService) ListByMerchant(ctx context.Context, merchantEmail string) ([]models.Customer, error) {
	return s.customers.ListByMerchant(ctx, merchantEmail)
}
