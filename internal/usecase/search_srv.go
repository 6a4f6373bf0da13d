package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/dto/response"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type SearchState string

const (
	StateSearching SearchState = "searching"
	StateResults   SearchState = "results"
)

const searchSessionIdleTTL = 30 * time.Minute

type SearchService interface {
	Cities() []entity.City
	Search(ctx context.Context, criteria *entity.SearchCriteria) (*response.SearchResponse, error)

	// Search sessions: Searching -> Results on submit, Results -> Searching on back.
	CreateSession(ctx context.Context) (*response.SearchSessionResponse, error)
	GetSession(ctx context.Context, id string) (*response.SearchSessionResponse, error)
	Submit(ctx context.Context, id string, criteria entity.SearchCriteria) (*response.SearchSessionResponse, error)
	Back(ctx context.Context, id string) (*response.SearchSessionResponse, error)
}

type searchService struct {
	normalizer *ItineraryNormalizer
	sessions   repository.SessionStore
	log        *zap.Logger
	now        func() time.Time
	idleTTL    time.Duration

	// serialises read-modify-write of sessions within this process
	mu sync.Mutex
}

func NewSearchService(normalizer *ItineraryNormalizer, sessions repository.SessionStore, log *zap.Logger) SearchService {
	return &searchService{
		normalizer: normalizer,
		sessions:   sessions,
		log:        log.With(zap.String("service", "search")),
		now:        time.Now,
		idleTTL:    searchSessionIdleTTL,
	}
}

func (s *searchService) Cities() []entity.City {
	return KnownCities()
}

func (s *searchService) Search(ctx context.Context, criteria *entity.SearchCriteria) (*response.SearchResponse, error) {
	if criteria != nil {
		if err := validateCriteria(criteria); err != nil {
			return nil, err
		}
	}

	itineraries, source := s.normalizer.Normalize(ctx, criteria)

	return &response.SearchResponse{
		Criteria:    criteria,
		Source:      string(source),
		Count:       len(itineraries),
		Itineraries: itineraries,
	}, nil
}

func (s *searchService) CreateSession(ctx context.Context) (*response.SearchSessionResponse, error) {
	session := &entity.SearchSession{
		ID:        utils.GenerateUUID().String(),
		State:     string(StateSearching),
		UpdatedAt: s.now(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return sessionView(session), nil
}

func (s *searchService) GetSession(ctx context.Context, id string) (*response.SearchSessionResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return sessionView(session), nil
}

func (s *searchService) Submit(ctx context.Context, id string, criteria entity.SearchCriteria) (*response.SearchSessionResponse, error) {
	if err := validateCriteria(&criteria); err != nil {
		return nil, err
	}

	s.mu.Lock()
	session, err := s.load(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if SearchState(session.State) != StateSearching {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}

	submitted := criteria
	session.State = string(StateResults)
	session.Criteria = &submitted
	session.Itineraries = nil
	session.Source = ""
	session.Loading = true
	session.Generation++
	session.UpdatedAt = s.now()
	generation := session.Generation
	err = s.save(ctx, session)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	itineraries, source := s.normalizer.Normalize(ctx, &submitted)

	s.mu.Lock()
	defer s.mu.Unlock()

	// the session may have gone back (or away) while the lookup ran
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if SearchState(current.State) != StateResults || current.Generation != generation {
		s.log.Debug("Discarding stale search result", zap.String("session_id", id))
		return sessionView(current), nil
	}

	current.Itineraries = itineraries
	current.Source = string(source)
	current.Loading = false
	current.UpdatedAt = s.now()
	if err := s.save(ctx, current); err != nil {
		return nil, err
	}
	return sessionView(current), nil
}

func (s *searchService) Back(ctx context.Context, id string) (*response.SearchSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if SearchState(session.State) == StateResults {
		session.State = string(StateSearching)
		session.Criteria = nil
		session.Itineraries = nil
		session.Source = ""
		session.Loading = false
		session.Generation++
		session.UpdatedAt = s.now()
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return sessionView(session), nil
}

func (s *searchService) load(ctx context.Context, id string) (*entity.SearchSession, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load search session", zap.Error(err), zap.String("session_id", id))
		return nil, fmt.Errorf("%w: %v", ErrLookupFailure, err)
	}
	if session == nil {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *searchService) save(ctx context.Context, session *entity.SearchSession) error {
	if err := s.sessions.Save(ctx, session, s.idleTTL); err != nil {
		s.log.Error("Failed to store search session", zap.Error(err), zap.String("session_id", session.ID))
		return err
	}
	return nil
}

func sessionView(session *entity.SearchSession) *response.SearchSessionResponse {
	itineraries := make([]entity.Itinerary, len(session.Itineraries))
	copy(itineraries, session.Itineraries)
	return &response.SearchSessionResponse{
		ID:          session.ID,
		State:       session.State,
		Loading:     session.Loading,
		Criteria:    session.Criteria,
		Source:      session.Source,
		Itineraries: itineraries,
		UpdatedAt:   session.UpdatedAt,
	}
}

// validateCriteria upper-cases the city codes and drops a return date the
// trip type cannot use.
func validateCriteria(criteria *entity.SearchCriteria) error {
	criteria.Origin = strings.ToUpper(criteria.Origin)
	criteria.Destination = strings.ToUpper(criteria.Destination)
	if criteria.TripType != entity.TripRoundTrip {
		criteria.ReturnDate = ""
	}
	if errs := utils.ValidateStruct(criteria); len(errs) > 0 {
		return newValidationError(errs)
	}
	return nil
}
