package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sharonsgarden/garden-api/internal/ledger"
	"github.com/sharonsgarden/garden-api/internal/logger"
)

// MaxBulkSeedIDs bounds a single bulk status query
const MaxBulkSeedIDs = 100

// StatusHandler answers "can this actor water these seeds today" queries
type StatusHandler struct {
	ledgerSvc ledger.Service
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(ledgerSvc ledger.Service) *StatusHandler {
	return &StatusHandler{ledgerSvc: ledgerSvc}
}

// StatusResponse is the bulk watering status payload
type StatusResponse struct {
	ActorID string          `json:"actor_id"`
	DayKey  string          `json:"day_key"`
	Status  map[string]bool `json:"status"`
}

// BulkStatus handles GET /seeds/status?ids=a,b,c
func (h *StatusHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	actorID, ok := RequireActor(r, w)
	if !ok {
		return
	}

	rawIDs, ok := GetQueryParam(r, w, "ids")
	if !ok {
		return
	}

	seedIDs := make([]string, 0, 8)
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			seedIDs = append(seedIDs, id)
		}
	}
	if len(seedIDs) > MaxBulkSeedIDs {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgTooManySeedIDs, MaxBulkSeedIDs))
		return
	}

	status, err := h.ledgerSvc.BulkStatus(r.Context(), actorID, seedIDs)
	if err != nil {
		log.Error(ErrMsgGetStatusFailed, "error", err, "actorID", actorID, "seeds", len(seedIDs))
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{
		ActorID: actorID,
		DayKey:  h.ledgerSvc.Today(),
		Status:  status,
	})
}
