package services_test

import (
	"context"

	"speedxpress/internal/models"
	"speedxpress/internal/notify"
	"speedxpress/internal/payments"
	"speedxpress/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, email string, user *models.User) (*repositories.UpsertResult, error) {
	args := m.Called(ctx, email, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.UpsertResult), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListByAccountType(ctx context.Context, accountType models.AccountType) ([]models.User, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id string, accountType models.AccountType) error {
	return m.Called(ctx, id, accountType).Error(0)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) UpsertByEmail(ctx context.Context, email string, customer *models.Customer) (*repositories.UpsertResult, error) {
	args := m.Called(ctx, email, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.UpsertResult), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListByMerchant(ctx context.Context, merchantEmail string) ([]models.Customer, error) {
	args := m.Called(ctx, merchantEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockShopRepository is a mock implementation of repositories.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shop), args.Error(1)
}

func (m *MockShopRepository) UpdateProfile(ctx context.Context, id string, profile models.ShopProfile) (*repositories.UpsertResult, error) {
	args := m.Called(ctx, id, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.UpsertResult), args.Error(1)
}

func (m *MockShopRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Shop, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shop), args.Error(1)
}

func (m *MockShopRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockParcelRepository is a mock implementation of repositories.ParcelRepository
type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Create(ctx context.Context, parcel *models.Parcel) error {
	return m.Called(ctx, parcel).Error(0)
}

func (m *MockParcelRepository) GetByID(ctx context.Context, id string) (*models.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ListBySender(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	args := m.Called(ctx, senderEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ListByDistrict(ctx context.Context, district string, status models.ParcelStatus) ([]models.Parcel, error) {
	args := m.Called(ctx, district, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ListAll(ctx context.Context) ([]models.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdateStatus(ctx context.Context, id string, status models.ParcelStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockParcelRepository) MarkPaid(ctx context.Context, id string, paymentID string) error {
	return m.Called(ctx, id, paymentID).Error(0)
}

func (m *MockParcelRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockNotifier records notification requests.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, subject string, t notify.Template) error {
	return m.Called(ctx, to, subject, t).Error(0)
}

// MockProcessor is a mock card processor.
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Charge(ctx context.Context, req payments.ChargeRequest) (*payments.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.ChargeResult), args.Error(1)
}

// MockCache is a mock account-type cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, email string) (models.AccountType, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.AccountType), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, email string, accountType models.AccountType) error {
	return m.Called(ctx, email, accountType).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockCache) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
