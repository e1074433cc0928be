package services

import (
	"context"

	"speedxpress/internal/apperr"
	"speedxpress/internal/models"
	"speedxpress/internal/notify"
	"speedxpress/internal/repositories"

	"go.uber.org/zap"
)

// ShopService handles business logic for merchant shops.
type ShopService struct {
	shops    repositories.ShopRepository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewShopService creates a new ShopService.
func NewShopService(shops repositories.ShopRepository, notifier notify.Notifier, logger *zap.Logger) *ShopService {
	return &ShopService{shops: shops, notifier: notifier, logger: logger}
}

// CreateShop stores a shop and emails its owner. It returns the new id.
func (s *ShopService) CreateShop(ctx context.Context, shop *models.Shop) (string, error) {
	shop.ID = ""
	if err := s.shops.Create(ctx, shop); err != nil {
		return "", err
	}
	s.logger.Info("shop created", zap.String("shopId", shop.ID), zap.String("shopEmail", shop.ShopEmail))

	sendMail(ctx, s.notifier, s.logger, shop.ShopEmail, notify.SubjectShopCreated, notify.ShopCreated(shop))
	return shop.ID, nil
}

// GetShop returns one shop.
func (s *ShopService) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	return s.shops.GetByID(ctx, id)
}

// UpdateProfile sets the non-empty profile fields of an existing shop.
func (s *ShopService) UpdateProfile(ctx context.Context, id string, profile models.ShopProfile) (*repositories.UpsertResult, error) {
	if profile == (models.ShopProfile{}) {
		return nil, apperr.New(apperr.KindInvalidArgument, "no profile fields to update")
	}
	return s.shops.UpdateProfile(ctx, id, profile)
}

// ListByOwner returns the shops registered to ownerEmail.
func (s *ShopService) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Shop, error) {
	return s.shops.ListByOwnerEmail(ctx, ownerEmail)
}

// DeleteShop removes one shop.
func (s *ShopService) DeleteShop(ctx context.Context, id string) error {
	if err := s.shops.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("shop deleted", zap.String("shopId", id))
	return nil
}
