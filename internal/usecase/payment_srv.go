package usecase

import (
	"context"
	"fmt"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/messaging"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

// EventPublisher announces confirmed bookings to downstream consumers.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event messaging.BookingConfirmedEvent) error
}

type PaymentService interface {
	// StartCheckout prices the bundle and returns the options for the hosted
	// checkout. The checkout stays pending until confirmed or timed out.
	StartCheckout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.CheckoutResponse, error)
	CheckoutStatus(ctx context.Context, userID, checkoutID string) (*response.CheckoutStatusResponse, error)
	// ConfirmPayment consumes the checkout's success callback.
	ConfirmPayment(ctx context.Context, userID string, req *request.ConfirmPaymentRequest) (*response.ConfirmationResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	bookings  BookingService
	publisher EventPublisher
	rnd       utils.Random
	config    utils.PaymentConfig
	timeout   time.Duration
	keepFor   time.Duration
	loc       *time.Location
	log       *zap.Logger
	now       func() time.Time
}

func NewPaymentService(
	repo *repository.Repository,
	bookings BookingService,
	publisher EventPublisher,
	rnd utils.Random,
	config *utils.Config,
	loc *time.Location,
	log *zap.Logger,
) PaymentService {
	if rnd == nil {
		rnd = utils.DefaultRandom()
	}
	timeout := time.Duration(config.Payment.CheckoutTimeoutMinutes) * time.Minute
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	keepFor := time.Duration(config.Booking.ConfirmationTTLHours) * time.Hour
	if keepFor <= 0 {
		keepFor = 24 * time.Hour
	}
	return &paymentService{
		repo:      repo,
		bookings:  bookings,
		publisher: publisher,
		rnd:       rnd,
		config:    config.Payment,
		timeout:   timeout,
		keepFor:   keepFor,
		loc:       loc,
		log:       log.With(zap.String("service", "payment")),
		now:       time.Now,
	}
}

func (s *paymentService) StartCheckout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	itinerary := *req.Itinerary
	var bookingIDs []int64

	// inventory itineraries are re-priced from the row and persisted before payment
	if !itinerary.Synthetic && itinerary.ID > 0 {
		flight, err := s.repo.Flight.FindByID(ctx, itinerary.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
		}
		if flight == nil {
			return nil, fmt.Errorf("flight %d: %w", itinerary.ID, ErrNotFound)
		}
		itinerary = ItineraryFromFlight(flight, s.loc)

		created, err := s.bookings.CreateBooking(ctx, userID, &request.CreateBookingRequest{
			FlightID:   flight.ID,
			Passengers: req.Passengers,
		})
		if err != nil {
			return nil, err
		}
		for _, b := range created.Bookings {
			bookingIDs = append(bookingIDs, b.ID)
		}
	}

	price := DerivePrice(itinerary.Price, len(req.Passengers))
	lead := req.Passengers[0]
	now := s.now()

	checkout := &entity.Checkout{
		ID:         utils.GenerateUUID().String(),
		UserID:     userID,
		Itinerary:  itinerary,
		Passengers: req.Passengers,
		Price:      price,
		BookingIDs: bookingIDs,
		Status:     entity.CheckoutPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.timeout),
	}

	// kept past expiry so a late callback can be told it expired
	if err := s.repo.Checkout.Save(ctx, checkout, 2*s.timeout); err != nil {
		s.log.Error("Failed to store checkout", zap.Error(err), zap.String("checkout_id", checkout.ID))
		return nil, fmt.Errorf("store checkout: %w", err)
	}

	s.log.Info("Checkout started",
		zap.String("checkout_id", checkout.ID),
		zap.String("flight_number", itinerary.FlightNumber),
		zap.Int("total", price.Total),
	)

	return &response.CheckoutResponse{
		CheckoutID: checkout.ID,
		Status:     checkout.Status,
		Price:      price,
		BookingIDs: bookingIDs,
		ExpiresAt:  checkout.ExpiresAt,
		Options: response.CheckoutOptions{
			Key:         s.config.KeyID,
			Amount:      MinorUnits(price.Total),
			Currency:    s.config.Currency,
			Name:        s.config.MerchantName,
			Description: fmt.Sprintf("Flight booking - %s %s", itinerary.AirlineName, itinerary.FlightNumber),
			Image:       s.config.Image,
			Prefill: response.CheckoutPrefill{
				Name:    lead.FullName(),
				Email:   lead.Email,
				Contact: lead.Phone,
			},
			Theme: response.CheckoutTheme{Color: s.config.ThemeColor},
		},
	}, nil
}

func (s *paymentService) CheckoutStatus(ctx context.Context, userID, checkoutID string) (*response.CheckoutStatusResponse, error) {
	checkout, err := s.findCheckout(ctx, userID, checkoutID)
	if err != nil {
		return nil, err
	}

	return &response.CheckoutStatusResponse{
		CheckoutID: checkout.ID,
		Status:     s.effectiveStatus(checkout),
		ExpiresAt:  checkout.ExpiresAt,
	}, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, userID string, req *request.ConfirmPaymentRequest) (*response.ConfirmationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	checkout, err := s.findCheckout(ctx, userID, req.CheckoutID)
	if err != nil {
		return nil, err
	}

	switch s.effectiveStatus(checkout) {
	case entity.CheckoutConfirmed:
		return nil, fmt.Errorf("checkout %s already confirmed: %w", checkout.ID, ErrInvalidTransition)
	case entity.CheckoutExpired:
		return nil, ErrCheckoutExpired
	}

	// concurrent callbacks for one checkout race here; only the winner mints a reference
	claimed, err := s.repo.Checkout.ClaimConfirmation(ctx, checkout.ID, s.keepFor)
	if err != nil {
		s.log.Error("Failed to claim checkout", zap.Error(err), zap.String("checkout_id", checkout.ID))
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	if !claimed {
		return nil, fmt.Errorf("checkout %s already confirmed: %w", checkout.ID, ErrInvalidTransition)
	}

	outcome := entity.PaymentOutcome{PaymentID: req.PaymentID, Amount: checkout.Price.Total}
	confirmation := s.mintConfirmation(checkout, outcome)

	if err := s.repo.Confirmation.Save(ctx, confirmation, s.keepFor); err != nil {
		s.log.Error("Failed to store confirmation", zap.Error(err), zap.String("reference", confirmation.BookingID))
		return nil, fmt.Errorf("store confirmation: %w", err)
	}

	checkout.Status = entity.CheckoutConfirmed
	if err := s.repo.Checkout.Save(ctx, checkout, s.keepFor); err != nil {
		s.log.Warn("Failed to mark checkout confirmed", zap.Error(err), zap.String("checkout_id", checkout.ID))
	}

	event := messaging.BookingConfirmedEvent{
		Reference:      confirmation.BookingID,
		UserID:         checkout.UserID,
		Airline:        checkout.Itinerary.AirlineName,
		FlightNumber:   checkout.Itinerary.FlightNumber,
		Route:          routeLabel(checkout.Itinerary),
		PassengerCount: len(checkout.Passengers),
		Amount:         outcome.Amount,
		PaymentID:      outcome.PaymentID,
		BookingIDs:     checkout.BookingIDs,
		ConfirmedAt:    confirmation.CreatedAt,
	}
	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
			s.log.Warn("Failed to publish booking event", zap.Error(err), zap.String("reference", event.Reference))
		}
	}

	s.log.Info("Payment confirmed",
		zap.String("reference", confirmation.BookingID),
		zap.String("payment_id", outcome.PaymentID),
		zap.Int("amount", outcome.Amount),
	)

	return confirmationView(confirmation), nil
}

func (s *paymentService) findCheckout(ctx context.Context, userID, checkoutID string) (*entity.Checkout, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}

	checkout, err := s.repo.Checkout.FindByID(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	// another user's checkout is reported as missing
	if checkout == nil || checkout.UserID != userID {
		return nil, fmt.Errorf("checkout %s: %w", checkoutID, ErrNotFound)
	}
	return checkout, nil
}

func (s *paymentService) effectiveStatus(checkout *entity.Checkout) entity.CheckoutStatus {
	if checkout.Status == entity.CheckoutPending && !s.now().Before(checkout.ExpiresAt) {
		return entity.CheckoutExpired
	}
	return checkout.Status
}

func (s *paymentService) mintConfirmation(checkout *entity.Checkout, outcome entity.PaymentOutcome) *entity.Confirmation {
	return &entity.Confirmation{
		BookingID:  utils.NewBookingReference(s.rnd).Code(),
		Itinerary:  checkout.Itinerary,
		Passengers: checkout.Passengers,
		Amount:     outcome.Amount,
		PaymentID:  outcome.PaymentID,
		UserID:     checkout.UserID,
		CreatedAt:  s.now(),
	}
}
