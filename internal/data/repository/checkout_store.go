package repository

import (
	"context"
	"fmt"
	"time"

	"skyyatra/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

// CheckoutStore holds checkouts between the pay click and the payment
// callback.
type CheckoutStore interface {
	Save(ctx context.Context, checkout *entity.Checkout, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*entity.Checkout, error)
	Delete(ctx context.Context, id string) error
	// ClaimConfirmation reports true to exactly one caller per checkout;
	// that caller owns the pending -> confirmed transition.
	ClaimConfirmation(ctx context.Context, id string, ttl time.Duration) (bool, error)
}

type checkoutStore struct {
	store ttlStore[entity.Checkout]
}

func NewRedisCheckoutStore(rdb redis.Cmdable) CheckoutStore {
	return &checkoutStore{store: &redisTTLStore[entity.Checkout]{rdb: rdb, prefix: "checkout:"}}
}

func NewMemoryCheckoutStore() CheckoutStore {
	return &checkoutStore{store: newMemoryTTLStore[entity.Checkout]()}
}

func (s *checkoutStore) Save(ctx context.Context, checkout *entity.Checkout, ttl time.Duration) error {
	if err := s.store.put(ctx, checkout.ID, checkout, ttl); err != nil {
		return fmt.Errorf("save checkout %s: %w", checkout.ID, err)
	}
	return nil
}

func (s *checkoutStore) FindByID(ctx context.Context, id string) (*entity.Checkout, error) {
	checkout, err := s.store.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find checkout %s: %w", id, err)
	}
	return checkout, nil
}

func (s *checkoutStore) Delete(ctx context.Context, id string) error {
	if err := s.store.del(ctx, id); err != nil {
		return fmt.Errorf("delete checkout %s: %w", id, err)
	}
	return nil
}

func (s *checkoutStore) ClaimConfirmation(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	claimed, err := s.store.claim(ctx, id, ttl)
	if err != nil {
		return false, fmt.Errorf("claim checkout %s: %w", id, err)
	}
	return claimed, nil
}
