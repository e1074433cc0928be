package repositories

import (
	"context"
	"errors"
	"time"

	"speedxpress/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{
		db: db,
	}
}

// Create creates a new shop in the database.
func (r *GORMShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	shop.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(shop).Error; err != nil {
		return unavailable("create shop", err)
	}
	return nil
}

// GetByID retrieves a shop by its ID.
func (r *GORMShopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("shop", id)
		}
		return nil, unavailable("get shop "+id, err)
	}
	return &shop, nil
}

// UpdateProfile updates the non-empty profile columns of the shop with the
// given id. An unknown id is not found; no shop is created.
func (r *GORMShopRepository) UpdateProfile(ctx context.Context, id string, profile models.ShopProfile) (*UpsertResult, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", id).Updates(profileColumns(profile))
	if res.Error != nil {
		return nil, unavailable("update shop "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound("shop", id)
	}
	return &UpsertResult{
		Acknowledged:  true,
		MatchedCount:  res.RowsAffected,
		ModifiedCount: res.RowsAffected,
	}, nil
}

// ListByOwnerEmail returns the shops registered under email.
func (r *GORMShopRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Shop, error) {
	shops := []models.Shop{}
	err := r.db.WithContext(ctx).
		Where("shop_email = ?", email).
		Order("created_at asc").
		Find(&shops).Error
	if err != nil {
		return nil, unavailable("list shops", err)
	}
	if shops == nil {
		shops = []models.Shop{}
	}
	return shops, nil
}

// DeleteByID deletes a shop by its ID from the database.
func (r *GORMShopRepository) DeleteByID(ctx context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Shop{}, "id = ?", id)
	if res.Error != nil {
		return unavailable("delete shop "+id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("shop", id)
	}
	return nil
}

func profileColumns(profile models.ShopProfile) map[string]interface{} {
	cols := map[string]interface{}{"updated_at": time.Now()}
	for col, v := range map[string]string{
		"shop_name":    profile.ShopName,
		"owner_name":   profile.OwnerName,
		"shop_number":  profile.ShopNumber,
		"shop_address": profile.ShopAddress,
	} {
		if v != "" {
			cols[col] = v
		}
	}
	return cols
}
