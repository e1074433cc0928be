package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/repositories"

	"go.uber.org/zap"
)

// DeletionService removes records addressed by kind and id.
type DeletionService struct {
	users     repositories.UserRepository
	customers repositories.CustomerRepository
	parcels   repositories.ParcelRepository
	cache     AccountTypeCache
	logger    *zap.Logger
}

// NewDeletionService creates a new DeletionService. cache may be nil.
func NewDeletionService(store *repositories.Store, cache AccountTypeCache, logger *zap.Logger) *DeletionService {
	return &DeletionService{
		users:     store.Users,
		customers: store.Customers,
		parcels:   store.Parcels,
		cache:     cache,
		logger:    logger,
	}
}

// Owners returns the emails allowed to delete the record of the given kind:
// the merchant and the customer for customers, the sender for parcels and
// the user itself for employees and merchants.
func (s *DeletionService) Owners(ctx context.Context, kind, id string) ([]string, error) {
	k, err := models.ParseRecordKind(kind)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidArgument, err.Error(), err)
	}

	switch k {
	case models.KindCustomer:
		customer, err := s.customers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []string{customer.MerchantEmail, customer.Email}, nil
	case models.KindParcel:
		parcel, err := s.parcels.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []string{parcel.SenderEmail}, nil
	default:
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if accountType, _ := k.AccountType(); user.AccountType != accountType {
			return nil, apperr.Newf(apperr.KindNotFound, "%s not found", k)
		}
		return []string{user.Email}, nil
	}
}

// Delete removes the record of the given kind. Employee and merchant
// deletions only match users holding that account type.
func (s *DeletionService) Delete(ctx context.Context, kind, id string) error {
	k, err := models.ParseRecordKind(kind)
	if err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, err.Error(), err)
	}

	switch k {
	case models.KindCustomer:
		err = s.customers.DeleteByID(ctx, id)
	case models.KindParcel:
		err = s.parcels.DeleteByID(ctx, id)
	default:
		accountType, _ := k.AccountType()
		err = s.users.DeleteByID(ctx, id, accountType)
		if err == nil && s.cache != nil {
			if flushErr := s.cache.Flush(ctx); flushErr != nil {
				s.logger.Warn("account type cache flush failed", zap.Error(flushErr))
			}
		}
	}
	if err != nil {
		return err
	}

	s.logger.Info("record deleted", zap.String("kind", string(k)), zap.String("id", id))
	return nil
}
