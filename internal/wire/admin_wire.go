package wire

import (
	"skyyatra/internal/adaptor"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	adminService usecase.AdminService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/admin/login", adminHandler.Login)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminBasic(adminService.Authenticate, log))

		r.Get("/api/admin/bookings", adminHandler.ListBookings)
		r.Get("/api/admin/dashboard", adminHandler.Dashboard)
	})
}
