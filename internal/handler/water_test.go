package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sharonsgarden/garden-api/internal/domain"
	"github.com/sharonsgarden/garden-api/internal/handler"
)

func newWaterRouter(h *handler.WaterHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/seeds/{seedID}/water", h.WaterSeed)
	return r
}

func TestWaterHandler_WaterSeed(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name            string
		actorID         string
		setupMock       func(*MockGrowthService)
		expectedStatus  int
		expectedError   string
		expectedMessage string
		checkResult     func(*testing.T, *domain.WateringResult)
	}{
		{
			name:    "Accepted Watering",
			actorID: "visitor-1",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-1", "seed-1").
					Return(&domain.WateringResult{SeedID: "seed-1", NewWaterCount: 4}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: handler.MsgSeedWateredSuccess,
			checkResult: func(t *testing.T, result *domain.WateringResult) {
				assert.Equal(t, 4, result.NewWaterCount)
				assert.False(t, result.BloomTransitioned)
			},
		},
		{
			name:    "Bloom Transition",
			actorID: "visitor-7",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-7", "seed-1").
					Return(&domain.WateringResult{
						SeedID:            "seed-1",
						NewWaterCount:     domain.BloomThreshold,
						Bloomed:           true,
						BloomTransitioned: true,
						Reward: &domain.RewardOutcome{
							SeedID: "seed-1",
							Kind:   domain.RewardKindQuote,
							Quote:  &domain.QuoteReward{Text: "Keep going."},
						},
					}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: handler.MsgSeedBloomedSuccess,
			checkResult: func(t *testing.T, result *domain.WateringResult) {
				assert.True(t, result.BloomTransitioned)
				require.NotNil(t, result.Reward)
				assert.Equal(t, domain.RewardKindQuote, result.Reward.Kind)
			},
		},
		{
			name:    "Already Watered Today",
			actorID: "visitor-1",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-1", "seed-1").
					Return(nil, domain.ErrAlreadyWateredToday)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgAlreadyWateredError,
		},
		{
			name:    "Already Bloomed",
			actorID: "visitor-1",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-1", "seed-1").
					Return(nil, domain.ErrAlreadyBloomed)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgAlreadyBloomedError,
		},
		{
			name:    "Ledger Unavailable",
			actorID: "visitor-1",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-1", "seed-1").
					Return(nil, domain.ErrLedgerUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  handler.ErrMsgLedgerDownError,
		},
		{
			name:    "Concurrent Conflict",
			actorID: "visitor-1",
			setupMock: func(m *MockGrowthService) {
				m.On("WaterSeed", mock.Anything, "visitor-1", "seed-1").
					Return(nil, domain.ErrConcurrentConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgConflictError,
		},
		{
			name:           "Missing Actor Header",
			actorID:        "",
			setupMock:      func(m *MockGrowthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgMissingActorHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGrowthService)
			tt.setupMock(mockSvc)
			router := newWaterRouter(handler.NewWaterHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/seeds/seed-1/water", nil)
			if tt.actorID != "" {
				req.Header.Set(handler.HeaderActorID, tt.actorID)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
			}
			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Message string                `json:"message"`
					Data    domain.WateringResult `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				if tt.checkResult != nil {
					tt.checkResult(t, &resp.Data)
				}
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
