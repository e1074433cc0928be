package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGORMStore wires the GORM implementations of every collection onto db.
func NewGORMStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewGORMUserRepository(db),
		Customers: NewGORMCustomerRepository(db),
		Shops:     NewGORMShopRepository(db),
		Parcels:   NewGORMParcelRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// checkUUID rejects malformed identifiers before a query is issued.
func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalidID(id, err)
	}
	return nil
}
