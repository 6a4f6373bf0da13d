package repository

import (
	"context"
	"fmt"
	"time"

	"skyyatra/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

// ConfirmationStore keeps the bundle a confirmation page renders, keyed by
// booking reference.
type ConfirmationStore interface {
	Save(ctx context.Context, confirmation *entity.Confirmation, ttl time.Duration) error
	FindByReference(ctx context.Context, reference string) (*entity.Confirmation, error)
}

type confirmationStore struct {
	store ttlStore[entity.Confirmation]
}

func NewRedisConfirmationStore(rdb redis.Cmdable) ConfirmationStore {
	return &confirmationStore{store: &redisTTLStore[entity.Confirmation]{rdb: rdb, prefix: "confirmation:"}}
}

func NewMemoryConfirmationStore() ConfirmationStore {
	return &confirmationStore{store: newMemoryTTLStore[entity.Confirmation]()}
}

func (s *confirmationStore) Save(ctx context.Context, confirmation *entity.Confirmation, ttl time.Duration) error {
	if err := s.store.put(ctx, confirmation.BookingID, confirmation, ttl); err != nil {
		return fmt.Errorf("save confirmation %s: %w", confirmation.BookingID, err)
	}
	return nil
}

func (s *confirmationStore) FindByReference(ctx context.Context, reference string) (*entity.Confirmation, error) {
	confirmation, err := s.store.get(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("find confirmation %s: %w", reference, err)
	}
	return confirmation, nil
}
