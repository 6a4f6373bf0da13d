package adaptor_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skyyatra/internal/adaptor"
	"skyyatra/internal/dto/request"
	"skyyatra/internal/dto/response"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), userID, userID+"@example.com"))
}

func bookingRouter(svc *mockBooking, history *mockHistory) *chi.Mux {
	h := adaptor.NewBookingHandler(svc, history, "/search", zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/bookings", h.CreateBooking)
	r.Get("/api/user/bookings", h.GetUserBookings)
	r.Get("/api/confirmations/{reference}", h.GetConfirmation)
	return r
}

const bookingBody = `{"flight_id":7,"passenger_details":[{"first_name":"Asha","last_name":"Rao","email":"asha@example.com","phone":"9876543210"}]}`

func TestCreateBookingCreated(t *testing.T) {
	svc := &mockBooking{}
	svc.On("CreateBooking", mock.Anything, "user-1", mock.AnythingOfType("*request.CreateBookingRequest")).
		Return(&response.BookingCreatedResponse{BookingID: "SY00000ABC"}, nil)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody)), "user-1")
	rec := httptest.NewRecorder()
	bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)

	var data response.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "SY00000ABC", data.BookingID)

	passed := svc.Calls[0].Arguments.Get(2).(*request.CreateBookingRequest)
	assert.Equal(t, int64(7), passed.FlightID)
	require.Len(t, passed.Passengers, 1)
	assert.Equal(t, "Asha", passed.Passengers[0].FirstName)
	svc.AssertExpectations(t)
}

func TestCreateBookingAnonymousIsUnauthorized(t *testing.T) {
	svc := &mockBooking{}
	svc.On("CreateBooking", mock.Anything, "", mock.Anything).Return(nil, usecase.ErrAuthRequired)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody))
	rec := httptest.NewRecorder()
	bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, usecase.ErrAuthRequired.Error(), env.Message)
}

func TestCreateBookingValidationFields(t *testing.T) {
	svc := &mockBooking{}
	verr := &usecase.ValidationError{Fields: map[string]string{
		"passenger_details[0].email": "Invalid email format",
	}}
	svc.On("CreateBooking", mock.Anything, "user-1", mock.Anything).Return(nil, verr)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody)), "user-1")
	rec := httptest.NewRecorder()
	bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "Invalid email format", env.Errors["passenger_details[0].email"])
}

func TestCreateBookingStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"flight full", usecase.ErrFlightFull, http.StatusConflict},
		{"unknown flight", usecase.ErrNotFound, http.StatusNotFound},
		{"lookup failure", usecase.ErrLookupFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBooking{}
			svc.On("CreateBooking", mock.Anything, "user-1", mock.Anything).Return(nil, tt.err)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody)), "user-1")
			rec := httptest.NewRecorder()
			bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestCreateBookingFlightLookupFailureMessage(t *testing.T) {
	svc := &mockBooking{}
	svc.On("CreateBooking", mock.Anything, "user-1", mock.Anything).
		Return(nil, fmt.Errorf("find flight 7: %w", usecase.ErrLookupFailure))

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody)), "user-1")
	rec := httptest.NewRecorder()
	bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	msg := decodeEnvelope(t, rec).Message
	assert.Equal(t, "Failed to load data", msg)
	assert.NotContains(t, msg, "bookings")
}

func TestCreateBookingMalformedBody(t *testing.T) {
	svc := &mockBooking{}

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{")), "user-1")
	rec := httptest.NewRecorder()
	bookingRouter(svc, &mockHistory{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetConfirmationWithoutBundleRedirects(t *testing.T) {
	history := &mockHistory{}
	history.On("GetConfirmation", mock.Anything, "SYNOPE0000").Return(nil, usecase.ErrMissingBundle)

	req := httptest.NewRequest(http.MethodGet, "/api/confirmations/SYNOPE0000", nil)
	rec := httptest.NewRecorder()
	bookingRouter(&mockBooking{}, history).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/search", rec.Header().Get("Location"))
}

func TestGetConfirmationFound(t *testing.T) {
	history := &mockHistory{}
	history.On("GetConfirmation", mock.Anything, "SY0000ABCD").Return(&response.ConfirmationResponse{
		BookingID: "SY0000ABCD",
		Amount:    5900,
		Route:     "DEL → BOM",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/confirmations/SY0000ABCD", nil)
	rec := httptest.NewRecorder()
	bookingRouter(&mockBooking{}, history).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data response.ConfirmationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, 5900, data.Amount)
	assert.Equal(t, "DEL → BOM", data.Route)
}

func TestGetUserBookingsPassesIdentity(t *testing.T) {
	history := &mockHistory{}
	history.On("UserBookings", mock.Anything, "user-9").Return([]response.BookingHistoryItem{
		{ID: 3, Reference: "00000003", SeatNumber: 12, Amount: 4400},
	}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil), "user-9")
	rec := httptest.NewRecorder()
	bookingRouter(&mockBooking{}, history).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []response.BookingHistoryItem
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "00000003", items[0].Reference)
	history.AssertExpectations(t)
}
