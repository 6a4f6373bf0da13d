package adaptor

import (
	"encoding/json"
	"net/http"

	"skyyatra/internal/dto/request"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	history usecase.HistoryService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, history usecase.HistoryService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		history: history,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Login(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", nil)
}

// ListBookings handles GET /api/admin/bookings (admin)
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.AdminBookingFilter{
		Query: query.Get("q"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
	}

	bookings, err := h.history.AllBookings(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Dashboard handles GET /api/admin/dashboard (admin)
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "admin dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}
