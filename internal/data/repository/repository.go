package repository

import (
	"time"

	"skyyatra/pkg/database"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	Flight       FlightRepository
	Booking      BookingRepository
	Checkout     CheckoutStore
	Confirmation ConfirmationStore
	Sessions     SessionStore
	Drafts       DraftStore
}

// NewRepository builds the collaborators. Without Redis the flight lookup
// is uncached and the ttl stores live in process memory.
func NewRepository(db database.PgxIface, rdb *redis.Client, searchCacheTTL time.Duration, log *zap.Logger) *Repository {
	repo := &Repository{
		Flight:  NewFlightRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}

	if rdb == nil {
		log.Info("Redis not configured, using in-memory stores")
		repo.Checkout = NewMemoryCheckoutStore()
		repo.Confirmation = NewMemoryConfirmationStore()
		repo.Sessions = NewMemorySessionStore()
		repo.Drafts = NewMemoryDraftStore()
		return repo
	}

	if searchCacheTTL > 0 {
		repo.Flight = NewCachedFlightRepository(repo.Flight, rdb, searchCacheTTL, log)
	}
	repo.Checkout = NewRedisCheckoutStore(rdb)
	repo.Confirmation = NewRedisConfirmationStore(rdb)
	repo.Sessions = NewRedisSessionStore(rdb)
	repo.Drafts = NewRedisDraftStore(rdb)

	return repo
}
