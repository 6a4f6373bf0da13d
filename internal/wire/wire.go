package wire

import (
	"fmt"
	"net/http"
	"time"

	"skyyatra/internal/adaptor"
	"skyyatra/internal/data/repository"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/middleware"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers and mounts every route.
func Wiring(
	repo *repository.Repository,
	publisher usecase.EventPublisher,
	config *utils.Config,
	loc *time.Location,
	logger *zap.Logger,
) (*App, error) {
	service, err := usecase.NewService(repo, publisher, config, loc, logger)
	if err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router: setupRouter(handler, service, config, logger),
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	wireFlight(r, handler.Flight)
	wireDraft(r, handler.Draft)
	wireBooking(r, handler.Booking, config, logger)
	wirePayment(r, handler.Payment, config, logger)
	wireAdmin(r, handler.Admin, service.Admin, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
