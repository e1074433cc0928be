package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/repositories"

	"go.uber.org/zap"
)

// AccountTypeCache caches account-type lookups by email.
type AccountTypeCache interface {
	Get(ctx context.Context, email string) (models.AccountType, bool, error)
	Set(ctx context.Context, email string, accountType models.AccountType) error
	Delete(ctx context.Context, email string) error
	Flush(ctx context.Context) error
}

// UserService handles business logic for user records.
type UserService struct {
	users  repositories.UserRepository
	cache  AccountTypeCache
	logger *zap.Logger
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(users repositories.UserRepository, cache AccountTypeCache, logger *zap.Logger) *UserService {
	return &UserService{users: users, cache: cache, logger: logger}
}

// SaveUser upserts the user keyed by email.
func (s *UserService) SaveUser(ctx context.Context, email string, user *models.User) (*repositories.UpsertResult, error) {
	if user.AccountType != "" && !user.AccountType.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "unknown account type %q", user.AccountType)
	}
	result, err := s.users.UpsertByEmail(ctx, email, user)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, email); err != nil {
			s.logger.Warn("account type cache invalidation failed", zap.String("email", email), zap.Error(err))
		}
	}
	return result, nil
}

// GetUser returns the full user record.
func (s *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// GetAccountType returns the account type recorded for email, consulting
// the cache first.
func (s *UserService) GetAccountType(ctx context.Context, email string) (models.AccountType, error) {
	if s.cache != nil {
		accountType, ok, err := s.cache.Get(ctx, email)
		if err != nil {
			s.logger.Warn("account type cache read failed", zap.String("email", email), zap.Error(err))
		} else if ok {
			return accountType, nil
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, email, user.AccountType); err != nil {
			s.logger.Warn("account type cache write failed", zap.String("email", email), zap.Error(err))
		}
	}
	return user.AccountType, nil
}

// ListByAccountType returns every user of the given account type.
func (s *UserService) ListByAccountType(ctx context.Context, accountType string) ([]models.User, error) {
	at := models.AccountType(accountType)
	if !at.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "unknown account type %q", accountType)
	}
	return s.users.ListByAccountType(ctx, at)
}
