package repositories

import (
	"context"
	"errors"
	"fmt"

	"speedxpress/internal/apperr"
)

// UpsertResult summarises an upsert-by-key write.
type UpsertResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// Store groups the four collections behind one handle so the server can be
// wired against either backend.
type Store struct {
	Users     UserRepository
	Customers CustomerRepository
	Shops     ShopRepository
	Parcels   ParcelRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

var errNoRows = errors.New("no matching record")

func invalidID(id string, err error) error {
	return apperr.Wrap(apperr.KindInvalidArgument, fmt.Sprintf("invalid identifier %q", id), err)
}

func notFound(entity, id string) error {
	return apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("%s not found", entity), fmt.Errorf("%s %s: %w", entity, id, errNoRows))
}

func unavailable(op string, err error) error {
	return apperr.Wrap(apperr.KindUnavailable, "store unavailable", fmt.Errorf("%s: %w", op, err))
}
