package adaptor

import (
	"encoding/json"
	"net/http"

	"skyyatra/internal/dto/request"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// StartCheckout handles POST /api/payments/checkout
func (h *PaymentHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	checkout, err := h.service.StartCheckout(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "start checkout")
		return
	}

	utils.ResponseCreated(w, "success", checkout)
}

// GetCheckout handles GET /api/payments/checkout/{id}
func (h *PaymentHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	status, err := h.service.CheckoutStatus(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get checkout")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// ConfirmPayment handles POST /api/payments/confirm, the checkout success callback.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	confirmation, err := h.service.ConfirmPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", confirmation)
}
