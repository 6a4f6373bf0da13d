package usecase

import (
	"context"
	"errors"
	"fmt"

	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking writes one row per passenger, all on the same flight, or
	// none at all.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	rnd      utils.Random
	capacity int
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, rnd utils.Random, config *utils.Config, log *zap.Logger) BookingService {
	if rnd == nil {
		rnd = utils.DefaultRandom()
	}
	capacity := config.Booking.SeatCapacity
	if capacity <= 0 {
		capacity = 180
	}
	return &bookingService{
		repo:     repo,
		rnd:      rnd,
		capacity: capacity,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// 1. Identity first, nothing is written without it
	if userID == "" {
		return nil, ErrAuthRequired
	}

	// 2. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	// 3. Flight must exist
	flight, err := s.repo.Flight.FindByID(ctx, req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %d: %w", req.FlightID, ErrNotFound)
	}

	// 4. Persist the whole batch
	rows, err := s.repo.Booking.CreateBatch(ctx, userID, flight.ID, len(req.Passengers), s.capacity)
	if errors.Is(err, repository.ErrSeatsExhausted) {
		return nil, ErrFlightFull
	}
	if err != nil {
		s.log.Error("Failed to persist booking", zap.Error(err), zap.Int64("flight_id", flight.ID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	reference := utils.NewBookingReference(s.rnd)

	s.log.Info("Booking created",
		zap.String("reference", reference.Code()),
		zap.Int64("flight_id", flight.ID),
		zap.Int("passengers", len(rows)),
	)

	return &response.BookingCreatedResponse{
		BookingID: reference.Code(),
		Bookings:  rows,
	}, nil
}
