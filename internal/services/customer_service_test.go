package services_test

import (
	"context"
	"testing"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/repositories"
	"speedxpress/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	service := services.NewCustomerService(repo)

	customer := &models.Customer{MerchantEmail: "m@x.com", Name: "One"}
	repo.On("UpsertByEmail", ctx, "c@x.com", customer).Return(&repositories.UpsertResult{Acknowledged: true, MatchedCount: 1}, nil).Once()
	repo.On("ListByMerchant", ctx, "m@x.com").Return([]models.Customer{{Email: "c@x.com"}}, nil).Once()

	res, err := service.SaveCustomer(ctx, "c@x.com", customer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	list, err := service.ListByMerchant(ctx, "m@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertExpectations(t)
}

func TestCustomerService_OwnersOfStoredCustomer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	service := services.NewCustomerService(repo)

	repo.On("GetByEmail", ctx, "c@x.com").Return(&models.Customer{Email: "c@x.com", MerchantEmail: "m@x.com"}, nil).Once()

	owners, err := service.Owners(ctx, "c@x.com", &models.Customer{MerchantEmail: "mallory@x.com"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m@x.com", "c@x.com"}, owners)
	repo.AssertExpectations(t)
}

func TestCustomerService_OwnersOfNewCustomer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	service := services.NewCustomerService(repo)

	repo.On("GetByEmail", ctx, "new@x.com").Return(nil, apperr.New(apperr.KindNotFound, "customer not found")).Once()

	owners, err := service.Owners(ctx, "new@x.com", &models.Customer{MerchantEmail: "m@x.com"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m@x.com", "new@x.com"}, owners)
}

func TestCustomerService_OwnersStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	service := services.NewCustomerService(repo)

	repo.On("GetByEmail", ctx, "c@x.com").Return(nil, apperr.New(apperr.KindUnavailable, "store unavailable")).Once()

	_, err := service.Owners(ctx, "c@x.com", &models.Customer{})
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}
