package adaptor

import (
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Flight  *FlightHandler
	Draft   *DraftHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Flight:  NewFlightHandler(service.Search, log),
		Draft:   NewDraftHandler(service.Draft, log),
		Booking: NewBookingHandler(service.Booking, service.History, config.App.EntryPath, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Admin:   NewAdminHandler(service.Admin, service.History, log),
	}
}
