package usecase

import (
	"fmt"
	"time"

	"skyyatra/internal/data/repository"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Search  SearchService
	Draft   DraftService
	Booking BookingService
	Payment PaymentService
	History HistoryService
	Admin   AdminService
}

func NewService(
	repo *repository.Repository,
	publisher EventPublisher,
	config *utils.Config,
	loc *time.Location,
	log *zap.Logger,
) (*Service, error) {
	rnd := utils.DefaultRandom()

	normalizer := NewItineraryNormalizer(repo.Flight, NewFallbackGenerator(rnd), loc, log)
	booking := NewBookingService(repo, rnd, config, log)

	admin, err := NewAdminService(repo, config, loc, log)
	if err != nil {
		return nil, fmt.Errorf("init admin service: %w", err)
	}

	return &Service{
		Search:  NewSearchService(normalizer, repo.Sessions, log),
		Draft:   NewDraftService(repo.Drafts, log),
		Booking: booking,
		Payment: NewPaymentService(repo, booking, publisher, rnd, config, loc, log),
		History: NewHistoryService(repo, loc, log),
		Admin:   admin,
	}, nil
}
