package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharonsgarden/garden-api/internal/logger"
	"github.com/sharonsgarden/garden-api/internal/reward"
)

// BadgeHandler serves badge unlocks and stored bloom rewards
type BadgeHandler struct {
	rewardSvc reward.Service
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(rewardSvc reward.Service) *BadgeHandler {
	return &BadgeHandler{rewardSvc: rewardSvc}
}

// ListBadges handles GET /users/{userID}/badges
func (h *BadgeHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	badges, err := h.rewardSvc.ListBadges(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListBadgesFailed, "error", err, "userID", userID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: badges})
}

// GetReward handles GET /seeds/{seedID}/reward
func (h *BadgeHandler) GetReward(w http.ResponseWriter, r *http.Request) {
	seedID := chi.URLParam(r, "seedID")

	outcome, err := h.rewardSvc.GetBySeed(r.Context(), seedID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetRewardFailed, "error", err, "seedID", seedID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}
