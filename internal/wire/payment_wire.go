package wire

import (
	"skyyatra/internal/adaptor"
	"skyyatra/pkg/middleware"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== IDENTITY ROUTES ====================
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.Identity(config.JWT.Secret, log))

		r.Post("/checkout", paymentHandler.StartCheckout)
		r.Get("/checkout/{id}", paymentHandler.GetCheckout)
		r.Post("/confirm", paymentHandler.ConfirmPayment)
	})
}
