package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

const draftIdleTTL = 30 * time.Minute

// DraftService holds the selected itinerary and the passenger form between
// the results page and the payment page.
type DraftService interface {
	CreateDraft(ctx context.Context, itinerary entity.Itinerary) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (*response.DraftResponse, error)
	AddPassenger(ctx context.Context, id string) (*response.DraftResponse, error)
	UpdatePassenger(ctx context.Context, id string, index int, field PassengerField, value string) (*response.DraftResponse, error)
	Proceed(ctx context.Context, id string) (*response.PaymentBundle, error)
}

type draftService struct {
	drafts  repository.DraftStore
	log     *zap.Logger
	now     func() time.Time
	idleTTL time.Duration

	mu sync.Mutex
}

func NewDraftService(drafts repository.DraftStore, log *zap.Logger) DraftService {
	return &draftService{
		drafts:  drafts,
		log:     log.With(zap.String("service", "draft")),
		now:     time.Now,
		idleTTL: draftIdleTTL,
	}
}

func (s *draftService) CreateDraft(ctx context.Context, itinerary entity.Itinerary) (*response.DraftResponse, error) {
	if errs := utils.ValidateStruct(itinerary); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	draft := &entity.BookingDraft{
		ID:         utils.GenerateUUID().String(),
		Itinerary:  itinerary,
		Passengers: NewPassengerForm().Passengers(),
		TouchedAt:  s.now(),
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}

	s.log.Debug("Draft created",
		zap.String("draft_id", draft.ID),
		zap.String("flight_number", itinerary.FlightNumber),
	)

	return draftView(draft), nil
}

func (s *draftService) GetDraft(ctx context.Context, id string) (*response.DraftResponse, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return draftView(draft), nil
}

func (s *draftService) AddPassenger(ctx context.Context, id string) (*response.DraftResponse, error) {
	return s.edit(ctx, id, func(form PassengerForm) (PassengerForm, error) {
		return form.AddPassenger(), nil
	})
}

func (s *draftService) UpdatePassenger(ctx context.Context, id string, index int, field PassengerField, value string) (*response.DraftResponse, error) {
	return s.edit(ctx, id, func(form PassengerForm) (PassengerForm, error) {
		return form.UpdateField(index, field, value)
	})
}

// Proceed hands over the payment bundle once every passenger field is filled.
func (s *draftService) Proceed(ctx context.Context, id string) (*response.PaymentBundle, error) {
	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	form := PassengerFormOf(draft.Passengers)
	if errs := form.Validate(); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	return &response.PaymentBundle{
		Itinerary:  draft.Itinerary,
		Passengers: form.Passengers(),
		Price:      DerivePrice(draft.Itinerary.Price, form.Len()),
	}, nil
}

func (s *draftService) edit(ctx context.Context, id string, change func(PassengerForm) (PassengerForm, error)) (*response.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	form, err := change(PassengerFormOf(draft.Passengers))
	if err != nil {
		return nil, err
	}
	draft.Passengers = form.Passengers()
	draft.TouchedAt = s.now()

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draftView(draft), nil
}

func (s *draftService) load(ctx context.Context, id string) (*entity.BookingDraft, error) {
	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load draft", zap.Error(err), zap.String("draft_id", id))
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	if draft == nil {
		return nil, ErrNotFound
	}
	return draft, nil
}

func (s *draftService) save(ctx context.Context, draft *entity.BookingDraft) error {
	if err := s.drafts.Save(ctx, draft, s.idleTTL); err != nil {
		s.log.Error("Failed to store draft", zap.Error(err), zap.String("draft_id", draft.ID))
		return err
	}
	return nil
}

func draftView(draft *entity.BookingDraft) *response.DraftResponse {
	return &response.DraftResponse{
		ID:         draft.ID,
		Itinerary:  draft.Itinerary,
		Passengers: append([]entity.Passenger(nil), draft.Passengers...),
		Price:      DerivePrice(draft.Itinerary.Price, len(draft.Passengers)),
	}
}
