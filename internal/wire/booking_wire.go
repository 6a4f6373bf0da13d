package wire

import (
	"skyyatra/internal/adaptor"
	"skyyatra/pkg/middleware"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== IDENTITY ROUTES ====================
	// The token is optional here; the booking service rejects anonymous inserts.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(config.JWT.Secret, log))

		// POST /api/bookings - persist one row per passenger
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - caller's booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/confirmations/{reference} - 303 to the entry page when unknown
	r.Get("/api/confirmations/{reference}", bookingHandler.GetConfirmation)
}
