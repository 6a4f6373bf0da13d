package repository

import (
	"context"
	"fmt"
	"time"

	"skyyatra/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps search sessions. Every Save restarts the idle ttl.
type SessionStore interface {
	Save(ctx context.Context, session *entity.SearchSession, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*entity.SearchSession, error)
}

type sessionStore struct {
	store ttlStore[entity.SearchSession]
}

func NewRedisSessionStore(rdb redis.Cmdable) SessionStore {
	return &sessionStore{store: &redisTTLStore[entity.SearchSession]{rdb: rdb, prefix: "search_session:"}}
}

func NewMemorySessionStore() SessionStore {
	return &sessionStore{store: newMemoryTTLStore[entity.SearchSession]()}
}

func (s *sessionStore) Save(ctx context.Context, session *entity.SearchSession, ttl time.Duration) error {
	if err := s.store.put(ctx, session.ID, session, ttl); err != nil {
		return fmt.Errorf("save search session %s: %w", session.ID, err)
	}
	return nil
}

func (s *sessionStore) FindByID(ctx context.Context, id string) (*entity.SearchSession, error) {
	session, err := s.store.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find search session %s: %w", id, err)
	}
	return session, nil
}

// DraftStore keeps booking drafts. Every Save restarts the idle ttl.
type DraftStore interface {
	Save(ctx context.Context, draft *entity.BookingDraft, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*entity.BookingDraft, error)
}

type draftStore struct {
	store ttlStore[entity.BookingDraft]
}

func NewRedisDraftStore(rdb redis.Cmdable) DraftStore {
	return &draftStore{store: &redisTTLStore[entity.BookingDraft]{rdb: rdb, prefix: "draft:"}}
}

func NewMemoryDraftStore() DraftStore {
	return &draftStore{store: newMemoryTTLStore[entity.BookingDraft]()}
}

func (s *draftStore) Save(ctx context.Context, draft *entity.BookingDraft, ttl time.Duration) error {
	if err := s.store.put(ctx, draft.ID, draft, ttl); err != nil {
		return fmt.Errorf("save draft %s: %w", draft.ID, err)
	}
	return nil
}

func (s *draftStore) FindByID(ctx context.Context, id string) (*entity.BookingDraft, error) {
	draft, err := s.store.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find draft %s: %w", id, err)
	}
	return draft, nil
}
