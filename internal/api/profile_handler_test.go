package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benkyo/doushi-api/internal/api"
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileGet(t *testing.T) {
	userID := uuid.New()

	t.Run("returns profile", func(t *testing.T) {
		profile := &domain.LearnerProfile{
			UserID:        userID,
			Streak:        5,
			LastStudyDate: domain.NewDate(2025, time.March, 10),
			DailyHistory: []domain.DailyStat{
				{Date: domain.NewDate(2025, time.March, 10), Questions: 12, Correct: 10, VerbIDs: []uuid.UUID{uuid.New(), uuid.New()}},
			},
			TotalPractices: 40,
			TotalCorrect:   33,
			TotalQuestions: 40,
		}

		svc := new(MockProfileService)
		svc.On("GetProfile", mock.Anything, userID).Return(profile, nil)

		handler := api.NewProfileHandler(svc)
		req := authenticatedRequest(t, http.MethodGet, "/profile", nil, userID)
		w := httptest.NewRecorder()
		handler.Get(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 5, resp.Streak)
		assert.Equal(t, "2025-03-10", resp.LastStudyDate)
		require.Len(t, resp.DailyHistory, 1)
		assert.Equal(t, 2, resp.DailyHistory[0].Verbs)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := api.NewProfileHandler(new(MockProfileService))
		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfileReset(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc := new(MockProfileService)
		svc.On("Reset", mock.Anything, userID).Return(nil)

		handler := api.NewProfileHandler(svc)
		req := authenticatedRequest(t, http.MethodPost, "/profile/reset", nil, userID)
		w := httptest.NewRecorder()
		handler.Reset(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("failure maps to 500", func(t *testing.T) {
		svc := new(MockProfileService)
		svc.On("Reset", mock.Anything, userID).Return(errors.New("delete failed"))

		handler := api.NewProfileHandler(svc)
		req := authenticatedRequest(t, http.MethodPost, "/profile/reset", nil, userID)
		w := httptest.NewRecorder()
		handler.Reset(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
