package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/growth"
	"github.com/sharonsgarden/garden-api/internal/logger"
)

// PlantSeedRequest represents the request to plant a new seed
type PlantSeedRequest struct {
	Kind        string `json:"kind" validate:"required,seedkind"`
	Username    string `json:"username" validate:"max=100"`
	ColorTag    string `json:"color_tag" validate:"max=30"`
	DisplayName string `json:"display_name" validate:"max=100"`
	Note        string `json:"note" validate:"max=500"`
}

// UpdateSeedRequest represents the request to update a seed's cosmetic fields.
// Absent fields are left unchanged.
type UpdateSeedRequest struct {
	ColorTag    *string `json:"color_tag" validate:"omitempty,max=30"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Note        *string `json:"note" validate:"omitempty,max=500"`
}

// SeedHandler handles seed lifecycle HTTP requests
type SeedHandler struct {
	growthSvc growth.Service
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(growthSvc growth.Service) *SeedHandler {
	return &SeedHandler{growthSvc: growthSvc}
}

// PlantSeed handles POST /seeds
func (h *SeedHandler) PlantSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	actorID, ok := RequireActor(r, w)
	if !ok {
		return
	}

	var req PlantSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
		return
	}

	kind := domain.SeedKind(strings.ToLower(req.Kind))
	meta := domain.SeedMeta{}
	if req.ColorTag != "" {
		meta.ColorTag = &req.ColorTag
	}
	if req.DisplayName != "" {
		meta.DisplayName = &req.DisplayName
	}
	if req.Note != "" {
		meta.Note = &req.Note
	}

	seed, err := h.growthSvc.PlantSeed(r.Context(), actorID, req.Username, kind, meta)
	if err != nil {
		log.Error(ErrMsgPlantSeedFailed, "error", err, "ownerID", actorID, "kind", kind)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgSeedPlantedSuccess, Data: seed})
}

// GetSeed handles GET /seeds/{seedID}
func (h *SeedHandler) GetSeed(w http.ResponseWriter, r *http.Request) {
	seedID := chi.URLParam(r, "seedID")

	seed, err := h.growthSvc.GetSeed(r.Context(), seedID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetSeedFailed, "error", err, "seedID", seedID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, seed)
}

// ListGarden handles GET /gardens/{ownerID}
func (h *SeedHandler) ListGarden(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	summary, err := h.growthSvc.ListGarden(r.Context(), ownerID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListGardenFailed, "error", err, "ownerID", ownerID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// UpdateSeed handles PATCH /seeds/{seedID}
func (h *SeedHandler) UpdateSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	seedID := chi.URLParam(r, "seedID")

	actorID, ok := RequireActor(r, w)
	if !ok {
		return
	}

	var req UpdateSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update seed"); err != nil {
		return
	}

	seed, err := h.growthSvc.UpdateSeedMeta(r.Context(), actorID, seedID, domain.SeedMeta{
		ColorTag:    req.ColorTag,
		DisplayName: req.DisplayName,
		Note:        req.Note,
	})
	if err != nil {
		log.Error(ErrMsgUpdateSeedFailed, "error", err, "seedID", seedID, "actorID", actorID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, seed)
}
