package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"skyyatra/internal/dto/request"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service   usecase.BookingService
	history   usecase.HistoryService
	entryPath string
	log       *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, history usecase.HistoryService, entryPath string, log *zap.Logger) *BookingHandler {
	if entryPath == "" {
		entryPath = "/"
	}
	return &BookingHandler{
		service:   service,
		history:   history,
		entryPath: entryPath,
		log:       log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings. Anonymous callers get an
// empty list.
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	bookings, err := h.history.UserBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetConfirmation handles GET /api/confirmations/{reference}
func (h *BookingHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	confirmation, err := h.history.GetConfirmation(r.Context(), reference)
	if errors.Is(err, usecase.ErrMissingBundle) {
		h.log.Info("No confirmation bundle, redirecting to entry", zap.String("reference", reference))
		utils.ResponseRedirect(w, r, h.entryPath)
		return
	}
	if err != nil {
		handleServiceError(w, h.log, err, "get confirmation")
		return
	}

	utils.ResponseSuccess(w, "success", confirmation)
}
