package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/team_generator/internal/statistics/model"
	"github.com/festy23/team_generator/internal/statistics/service"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) GetRosterStatistics(ctx context.Context) (*model.RosterStatisticsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RosterStatisticsResponse), args.Error(1)
}

func (m *mockService) GetTeamSizes(ctx context.Context) (*model.TeamSizesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamSizesResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/statistics/rosters", h.GetRosterStatistics)
	router.GET("/statistics/teams", h.GetTeamSizes)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_GetRosterStatistics(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetRosterStatistics", mock.Anything).Return(&model.RosterStatisticsResponse{
			Statistics: model.RosterStatistics{TotalRosters: 2, GeneratedRosters: 1, TotalNames: 7, AverageNamesPerRoster: 3.5, AverageTeamCount: 2},
		}, nil)

		w := get(setupRouter(New(mockSvc, zap.NewNop().Sugar())), "/statistics/rosters")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"statistics":{"total_rosters":2,"generated_rosters":1,"total_names":7,"average_names_per_roster":3.5,"average_team_count":2}}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetRosterStatistics", mock.Anything).Return(nil, errors.New("database error"))

		w := get(setupRouter(New(mockSvc, zap.NewNop().Sugar())), "/statistics/rosters")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var errorResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResp))
		assert.Equal(t, "INTERNAL_ERROR", errorResp.Error.Code)
		assert.Equal(t, "internal server error", errorResp.Error.Message)
	})
}

func TestHandler_GetTeamSizes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetTeamSizes", mock.Anything).Return(&model.TeamSizesResponse{
			TeamSizes:  []model.TeamSizeStatistics{{TeamSize: 2, Teams: 4}},
			TotalTeams: 4,
		}, nil)

		w := get(setupRouter(New(mockSvc, zap.NewNop().Sugar())), "/statistics/teams")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"team_sizes":[{"team_size":2,"teams":4}],"total_teams":4}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetTeamSizes", mock.Anything).Return(nil, errors.New("database error"))

		w := get(setupRouter(New(mockSvc, zap.NewNop().Sugar())), "/statistics/teams")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
