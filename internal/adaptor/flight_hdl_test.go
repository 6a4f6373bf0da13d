package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skyyatra/internal/adaptor"
	"skyyatra/internal/data/entity"
	"skyyatra/internal/dto/response"
	"skyyatra/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func flightRouter(svc *mockSearch) *chi.Mux {
	h := adaptor.NewFlightHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/cities", h.GetCities)
	r.Get("/api/flights/search", h.SearchFlights)
	r.Post("/api/search/sessions", h.CreateSession)
	r.Post("/api/search/sessions/{id}/submit", h.SubmitSearch)
	r.Post("/api/search/sessions/{id}/back", h.BackToSearch)
	return r
}

func TestSearchFlightsWithoutCriteria(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Search", mock.Anything, (*entity.SearchCriteria)(nil)).Return(&response.SearchResponse{
		Source: string(usecase.SourceFallback),
		Count:  1,
		Itineraries: []entity.Itinerary{
			{ID: 1, AirlineName: "IndiGo", FlightNumber: "6E 2000", Synthetic: true},
		},
	}, nil)

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flights/search", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data response.SearchResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "fallback", data.Source)
	require.Len(t, data.Itineraries, 1)
	assert.Equal(t, "6E 2000", data.Itineraries[0].FlightNumber)
	svc.AssertExpectations(t)
}

func TestSearchFlightsQueryDefaults(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Search", mock.Anything, mock.AnythingOfType("*entity.SearchCriteria")).
		Return(&response.SearchResponse{Source: string(usecase.SourceInventory)}, nil)

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/flights/search?origin=DEL&destination=BOM&depart_date=2026-11-02", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	criteria := svc.Calls[0].Arguments.Get(1).(*entity.SearchCriteria)
	assert.Equal(t, "DEL", criteria.Origin)
	assert.Equal(t, "BOM", criteria.Destination)
	assert.Equal(t, entity.TripOneWay, criteria.TripType)
	assert.Equal(t, entity.FareEconomy, criteria.FareClass)
	assert.Equal(t, 1, criteria.PassengerCount)
}

func TestSearchFlightsInvalidCriteria(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Search", mock.Anything, mock.Anything).Return(nil, &usecase.ValidationError{
		Fields: map[string]string{"passengers": "Maximum value is 9"},
	})

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/flights/search?origin=DEL&destination=BOM&passengers=20", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Maximum value is 9", decodeEnvelope(t, rec).Errors["passengers"])
}

func TestGetCities(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Cities").Return(usecase.KnownCities())

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var cities []entity.City
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &cities))
	assert.Equal(t, "DEL", cities[0].Code)
}

func TestSubmitSearchWrongStateIsConflict(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Submit", mock.Anything, "s-1", mock.AnythingOfType("entity.SearchCriteria")).
		Return(nil, usecase.ErrInvalidTransition)

	body := `{"origin":"DEL","destination":"BOM","depart_date":"2026-11-02","trip_type":"oneway","passengers":1,"fare_class":"economy"}`
	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search/sessions/s-1/submit", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBackToSearchUnknownSession(t *testing.T) {
	svc := &mockSearch{}
	svc.On("Back", mock.Anything, "missing").Return(nil, usecase.ErrNotFound)

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search/sessions/missing/back", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSession(t *testing.T) {
	svc := &mockSearch{}
	svc.On("CreateSession", mock.Anything).Return(&response.SearchSessionResponse{
		ID:    "s-1",
		State: string(usecase.StateSearching),
	}, nil)

	rec := httptest.NewRecorder()
	flightRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search/sessions", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data response.SearchSessionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "searching", data.State)
}
