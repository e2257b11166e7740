package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/handler"
)

func TestStatusHandler_BulkStatus(t *testing.T) {
	handler.InitValidator()

	t.Run("Mixed Status", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("BulkStatus", mock.Anything, "visitor-1", []string{"seed-1", "seed-2"}).
			Return(map[string]bool{"seed-1": true, "seed-2": false}, nil)
		mockSvc.On("Today").Return("2025-06-15")

		h := handler.NewStatusHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/seeds/status?ids=seed-1,seed-2", nil)
		req.Header.Set(handler.HeaderActorID, "visitor-1")
		rec := httptest.NewRecorder()

		h.BulkStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "visitor-1", resp.ActorID)
		assert.Equal(t, "2025-06-15", resp.DayKey)
		assert.True(t, resp.Status["seed-1"])
		assert.False(t, resp.Status["seed-2"])
	})

	t.Run("Whitespace And Empty Ids Trimmed", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("BulkStatus", mock.Anything, "visitor-1", []string{"seed-1", "seed-2"}).
			Return(map[string]bool{"seed-1": true, "seed-2": true}, nil)
		mockSvc.On("Today").Return("2025-06-15")

		h := handler.NewStatusHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/seeds/status?ids=%20seed-1%20,,seed-2", nil)
		req.Header.Set(handler.HeaderActorID, "visitor-1")
		rec := httptest.NewRecorder()

		h.BulkStatus(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing Ids Param", func(t *testing.T) {
		h := handler.NewStatusHandler(new(MockLedgerService))
		req := httptest.NewRequest(http.MethodGet, "/seeds/status", nil)
		req.Header.Set(handler.HeaderActorID, "visitor-1")
		rec := httptest.NewRecorder()

		h.BulkStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Too Many Ids", func(t *testing.T) {
		ids := make([]string, handler.MaxBulkSeedIDs+1)
		for i := range ids {
			ids[i] = "seed"
		}

		h := handler.NewStatusHandler(new(MockLedgerService))
		req := httptest.NewRequest(http.MethodGet, "/seeds/status?ids="+strings.Join(ids, ","), nil)
		req.Header.Set(handler.HeaderActorID, "visitor-1")
		rec := httptest.NewRecorder()

		h.BulkStatus(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Ledger Unavailable", func(t *testing.T) {
		mockSvc := new(MockLedgerService)
		mockSvc.On("BulkStatus", mock.Anything, "visitor-1", []string{"seed-1"}).
			Return(nil, domain.ErrLedgerUnavailable)

		h := handler.NewStatusHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/seeds/status?ids=seed-1", nil)
		req.Header.Set(handler.HeaderActorID, "visitor-1")
		rec := httptest.NewRecorder()

		h.BulkStatus(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgLedgerDownError)
	})
}
