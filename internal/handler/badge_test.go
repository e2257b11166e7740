package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/handler"
)

func newBadgeRouter(h *handler.BadgeHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/users/{userID}/badges", h.ListBadges)
	r.Get("/seeds/{seedID}/reward", h.GetReward)
	return r
}

func TestBadgeHandler_ListBadges(t *testing.T) {
	handler.InitValidator()

	mockSvc := new(MockRewardService)
	mockSvc.On("ListBadges", mock.Anything, "sharon").
		Return([]domain.BadgeUnlock{
			{UserID: "sharon", BadgeID: "first_bloom", UnlockedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			{UserID: "sharon", BadgeID: "devoted_waterer", UnlockedAt: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)},
		}, nil)

	router := newBadgeRouter(handler.NewBadgeHandler(mockSvc))
	req := httptest.NewRequest(http.MethodGet, "/users/sharon/badges", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.BadgeUnlock `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first_bloom", resp.Data[0].BadgeID)
}

func TestBadgeHandler_GetReward(t *testing.T) {
	handler.InitValidator()

	t.Run("Stored Reward", func(t *testing.T) {
		mockSvc := new(MockRewardService)
		mockSvc.On("GetBySeed", mock.Anything, "seed-1").
			Return(&domain.RewardOutcome{
				SeedID:  "seed-1",
				UserID:  "sharon",
				Kind:    domain.RewardKindSticker,
				Sticker: &domain.StickerReward{StickerID: "sticker-petal-03"},
			}, nil)

		router := newBadgeRouter(handler.NewBadgeHandler(mockSvc))
		req := httptest.NewRequest(http.MethodGet, "/seeds/seed-1/reward", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.RewardOutcome
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.RewardKindSticker, got.Kind)
		require.NotNil(t, got.Sticker)
	})

	t.Run("No Reward Yet", func(t *testing.T) {
		mockSvc := new(MockRewardService)
		mockSvc.On("GetBySeed", mock.Anything, "seed-2").
			Return(nil, domain.ErrRewardNotFound)

		router := newBadgeRouter(handler.NewBadgeHandler(mockSvc))
		req := httptest.NewRequest(http.MethodGet, "/seeds/seed-2/reward", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgRewardNotFoundError)
	})
}
