package cache

import (
	"context"
	"errors"
	"time"

	"speedxpress/internal/models"

	"github.com/redis/go-redis/v9"
)

const accountTypePrefix = "speedxpress:account-type:"

// AccountTypeCache caches the account type of a user keyed by email.
type AccountTypeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAccountTypeCache connects to redis at addr. Entries expire after ttl.
func NewAccountTypeCache(addr, password string, db int, ttl time.Duration) *AccountTypeCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &AccountTypeCache{client: client, ttl: ttl}
}

// Get returns the cached account type. ok is false on a miss.
func (c *AccountTypeCache) Get(ctx context.Context, email string) (models.AccountType, bool, error) {
	val, err := c.client.Get(ctx, accountTypePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return models.AccountType(val), true, nil
}

// Set stores the account type of email.
func (c *AccountTypeCache) Set(ctx context.Context, email string, accountType models.AccountType) error {
	return c.client.Set(ctx, accountTypePrefix+email, string(accountType), c.ttl).Err()
}

// Delete evicts the entry for email.
func (c *AccountTypeCache) Delete(ctx context.Context, email string) error {
	return c.client.Del(ctx, accountTypePrefix+email).Err()
}

// Flush drops every cached account type. Used after deletes by id, where
// the email of the removed user is not known.
func (c *AccountTypeCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, accountTypePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Ping checks the redis connection.
func (c *AccountTypeCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the redis client.
func (c *AccountTypeCache) Close() error {
	return c.client.Close()
}
