package services_test

import (
	"context"
	"testing"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/repositories"
	"speedxpress/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deletionFixture struct {
	users     *MockUserRepository
	customers *MockCustomerRepository
	parcels   *MockParcelRepository
	cache     *MockCache
	service   *services.DeletionService
}

func newDeletionFixture() *deletionFixture {
	f := &deletionFixture{
		users:     new(MockUserRepository),
		customers: new(MockCustomerRepository),
		parcels:   new(MockParcelRepository),
		cache:     new(MockCache),
	}
	store := &repositories.Store{Users: f.users, Customers: f.customers, Parcels: f.parcels}
	f.service = services.NewDeletionService(store, f.cache, zap.NewNop())
	return f
}

func TestDeletionService_MerchantIsScopedToAccountType(t *testing.T) {
	ctx := context.Background()
	f := newDeletionFixture()

	f.users.On("DeleteByID", ctx, "u-1", models.AccountMerchant).Return(nil).Once()
	f.cache.On("Flush", ctx).Return(nil).Once()

	assert.NoError(t, f.service.Delete(ctx, "merchant", "u-1"))
	f.users.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestDeletionService_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	f := newDeletionFixture()

	f.users.On("DeleteByID", ctx, "u-2", models.AccountEmployee).Return(apperr.New(apperr.KindNotFound, "user not found")).Once()

	err := f.service.Delete(ctx, "employee", "u-2")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	f.cache.AssertNotCalled(t, "Flush", mock.Anything)
}

func TestDeletionService_CustomerAndParcel(t *testing.T) {
	ctx := context.Background()
	f := newDeletionFixture()

	f.customers.On("DeleteByID", ctx, "c-1").Return(nil).Once()
	f.parcels.On("DeleteByID", ctx, "p-1").Return(nil).Once()

	assert.NoError(t, f.service.Delete(ctx, "customer", "c-1"))
	assert.NoError(t, f.service.Delete(ctx, "parcel", "p-1"))
	f.users.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything, mock.Anything)
	f.customers.AssertExpectations(t)
	f.parcels.AssertExpectations(t)
}

func TestDeletionService_RejectsUnknownKind(t *testing.T) {
	f := newDeletionFixture()

	err := f.service.Delete(context.Background(), "shop", "s-1")
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
}

func TestDeletionService_Owners(t *testing.T) {
	ctx := context.Background()
	f := newDeletionFixture()

	f.parcels.On("GetByID", ctx, "p-1").Return(&models.Parcel{ID: "p-1", SenderEmail: "a@x.com"}, nil).Once()
	f.customers.On("GetByID", ctx, "c-1").Return(&models.Customer{Email: "c@x.com", MerchantEmail: "m@x.com"}, nil).Once()
	f.users.On("GetByID", ctx, "u-1").Return(&models.User{Email: "e@x.com", AccountType: models.AccountEmployee}, nil).Once()

	owners, err := f.service.Owners(ctx, "parcel", "p-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, owners)

	owners, err = f.service.Owners(ctx, "customer", "c-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m@x.com", "c@x.com"}, owners)

	owners, err = f.service.Owners(ctx, "employee", "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e@x.com"}, owners)
}

func TestDeletionService_OwnersKindMismatchIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newDeletionFixture()

	f.users.On("GetByID", ctx, "u-1").Return(&models.User{Email: "c@x.com", AccountType: models.AccountCustomer}, nil).Once()

	_, err := f.service.Owners(ctx, "merchant", "u-1")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.service.Owners(ctx, "shop", "s-1")
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument))
}
