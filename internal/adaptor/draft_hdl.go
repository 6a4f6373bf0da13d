package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"skyyatra/internal/dto/request"
	"skyyatra/internal/usecase"
	"skyyatra/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DraftHandler struct {
	service usecase.DraftService
	log     *zap.Logger
}

func NewDraftHandler(service usecase.DraftService, log *zap.Logger) *DraftHandler {
	return &DraftHandler{
		service: service,
		log:     log.With(zap.String("handler", "draft")),
	}
}

// CreateDraft handles POST /api/drafts
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.CreateDraft(r.Context(), *req.Itinerary)
	if err != nil {
		handleServiceError(w, h.log, err, "create draft")
		return
	}

	utils.ResponseCreated(w, "success", draft)
}

// GetDraft handles GET /api/drafts/{id}
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.GetDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// AddPassenger handles POST /api/drafts/{id}/passengers
func (h *DraftHandler) AddPassenger(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.AddPassenger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "add passenger")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// UpdatePassenger handles PATCH /api/drafts/{id}/passengers/{index}
func (h *DraftHandler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid passenger index", nil)
		return
	}

	var req request.UpdatePassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.UpdatePassenger(r.Context(), chi.URLParam(r, "id"), index, usecase.PassengerField(req.Field), req.Value)
	if err != nil {
		handleServiceError(w, h.log, err, "update passenger")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// Proceed handles POST /api/drafts/{id}/proceed
func (h *DraftHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.Proceed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "proceed to payment")
		return
	}

	utils.ResponseSuccess(w, "success", bundle)
}
