package wire

import (
	"skyyatra/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDraft(r chi.Router, draftHandler *adaptor.DraftHandler) {
	// ==================== PUBLIC ROUTES ====================
	// Booking drafts carry the selected flight and passenger form to payment
	r.Route("/api/drafts", func(r chi.Router) {
		r.Post("/", draftHandler.CreateDraft)
		r.Get("/{id}", draftHandler.GetDraft)
		r.Post("/{id}/passengers", draftHandler.AddPassenger)
		r.Patch("/{id}/passengers/{index}", draftHandler.UpdatePassenger)
		r.Post("/{id}/proceed", draftHandler.Proceed)
	})
}
