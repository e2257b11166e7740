package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharonsgarden/garden-api/internal/growth"
	"github.com/sharonsgarden/garden-api/internal/logger"
)

// WaterHandler handles watering HTTP requests
type WaterHandler struct {
	growthSvc growth.Service
}

// NewWaterHandler creates a new water handler
func NewWaterHandler(growthSvc growth.Service) *WaterHandler {
	return &WaterHandler{growthSvc: growthSvc}
}

// WaterSeed handles POST /seeds/{seedID}/water
func (h *WaterHandler) WaterSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	seedID := chi.URLParam(r, "seedID")

	actorID, ok := RequireActor(r, w)
	if !ok {
		return
	}

	result, err := h.growthSvc.WaterSeed(r.Context(), actorID, seedID)
	if err != nil {
		log.Error(ErrMsgWaterSeedFailed, "error", err, "seedID", seedID, "actorID", actorID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	message := MsgSeedWateredSuccess
	if result.BloomTransitioned {
		message = MsgSeedBloomedSuccess
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: message, Data: result})
}
