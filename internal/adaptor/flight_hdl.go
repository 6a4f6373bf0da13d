package adaptor

import (
	"encoding/json"
	"net/http"

	"skyyatra/internal/data/entity"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.SearchService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetCities handles GET /api/cities
func (h *FlightHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Cities())
}

// SearchFlights handles GET /api/flights/search
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), criteriaFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CreateSession handles POST /api/search/sessions
func (h *FlightHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "create search session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/search/sessions/{id}
func (h *FlightHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get search session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitSearch handles POST /api/search/sessions/{id}/submit
func (h *FlightHandler) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	var criteria entity.SearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"), criteria)
	if err != nil {
		handleServiceError(w, h.log, err, "submit search")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// BackToSearch handles POST /api/search/sessions/{id}/back
func (h *FlightHandler) BackToSearch(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "back to search")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// criteriaFromQuery returns nil when no search field is given at all, which
// the normalizer answers with fallback itineraries.
func criteriaFromQuery(r *http.Request) *entity.SearchCriteria {
	query := r.URL.Query()
	if query.Get("origin") == "" && query.Get("destination") == "" && query.Get("trip_type") == "" {
		return nil
	}

	criteria := &entity.SearchCriteria{
		Origin:         query.Get("origin"),
		Destination:    query.Get("destination"),
		DepartDate:     query.Get("depart_date"),
		ReturnDate:     query.Get("return_date"),
		TripType:       entity.TripType(query.Get("trip_type")),
		PassengerCount: utils.ParseInt(query.Get("passengers"), 1),
		FareClass:      entity.FareClass(query.Get("fare_class")),
	}
	if criteria.TripType == "" {
		criteria.TripType = entity.TripOneWay
	}
	if criteria.FareClass == "" {
		criteria.FareClass = entity.FareEconomy
	}
	return criteria
}
