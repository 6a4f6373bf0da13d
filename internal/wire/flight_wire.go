package wire

import (
	"skyyatra/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/cities", flightHandler.GetCities)

	// GET /api/flights/search - one-shot search, falls back to synthetic flights
	r.Get("/api/flights/search", flightHandler.SearchFlights)

	// Search sessions: form -> results -> back to form
	r.Route("/api/search/sessions", func(r chi.Router) {
		r.Post("/", flightHandler.CreateSession)
		r.Get("/{id}", flightHandler.GetSession)
		r.Post("/{id}/submit", flightHandler.SubmitSearch)
		r.Post("/{id}/back", flightHandler.BackToSearch)
	})
}
