package handler

import (
	"bytes"
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

	teamModel "github.com/festy23/team_generator/internal/generator/model"
	rosterModel "github.com/festy23/team_generator/internal/roster/model"
	"github.com/festy23/team_generator/internal/roster/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) response(args mock.Arguments) (*rosterModel.RosterResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rosterModel.RosterResponse), args.Error(1)
}

func (m *mockService) CreateRoster(ctx context.Context) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx))
}

func (m *mockService) GetRoster(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx, rosterID))
}

func (m *mockService) AddName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx, req))
}

func (m *mockService) RemoveName(ctx context.Context, req *rosterModel.NameRequest) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx, req))
}

func (m *mockService) Generate(ctx context.Context, req *rosterModel.GenerateRequest) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx, req))
}

func (m *mockService) Reset(ctx context.Context, rosterID string) (*rosterModel.RosterResponse, error) {
	return m.response(m.Called(ctx, rosterID))
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())
	router := gin.New()
	router.POST("/roster/create", h.CreateRoster)
	router.GET("/roster/get", h.GetRoster)
	router.POST("/roster/addName", h.AddName)
	router.POST("/roster/removeName", h.RemoveName)
	router.POST("/roster/generate", h.Generate)
	router.POST("/roster/reset", h.Reset)
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHandler_CreateRoster(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("CreateRoster", mock.Anything).Return(&rosterModel.RosterResponse{
			RosterID: "r1",
			Names:    []string{},
			Teams:    []teamModel.Team{},
		}, nil)

		w := postJSON(router, "/roster/create", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]rosterModel.RosterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "r1", response["roster"].RosterID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("CreateRoster", mock.Anything).Return(nil, errors.New("database error"))

		w := postJSON(router, "/roster/create", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Error.Code)
	})
}

func TestHandler_GetRoster(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("GetRoster", mock.Anything, "r1").Return(&rosterModel.RosterResponse{
			RosterID:    "r1",
			Names:       []string{"A", "B"},
			TeamCount:   1,
			Teams:       []teamModel.Team{{ID: 1, Name: "Team 1", Members: []string{"B", "A"}}},
			IsGenerated: true,
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/roster/get?roster_id=r1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"roster_id": "r1",
			"names": ["A", "B"],
			"team_count": 1,
			"teams": [{"id": 1, "name": "Team 1", "members": ["B", "A"]}],
			"is_generated": true
		}`, w.Body.String())
	})

	t.Run("missing parameter", func(t *testing.T) {
		router := setupRouter(new(mockService))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/roster/get", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("GetRoster", mock.Anything, "missing").Return(nil, rosterModel.ErrRosterNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/roster/get?roster_id=missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, w).Error.Code)
	})
}

func TestHandler_AddName(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate", rosterModel.ErrDuplicateName, http.StatusBadRequest, "DUPLICATE_NAME"},
		{"empty", rosterModel.ErrEmptyName, http.StatusBadRequest, "INVALID_REQUEST"},
		{"too long", rosterModel.ErrNameTooLong, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found", rosterModel.ErrRosterNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"internal", errors.New("database error"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mockService)
			router := setupRouter(mockSvc)
			req := &rosterModel.NameRequest{RosterID: "r1", Name: "Alice"}
			mockSvc.On("AddName", mock.Anything, req).Return(nil, tt.err)

			w := postJSON(router, "/roster/addName", `{"roster_id":"r1","name":"Alice"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
			mockSvc.AssertExpectations(t)
		})
	}

	t.Run("duplicate message", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("AddName", mock.Anything, mock.Anything).Return(nil, rosterModel.ErrDuplicateName)

		w := postJSON(router, "/roster/addName", `{"roster_id":"r1","name":"Alice"}`)

		assert.Equal(t, "this name has already been added", decodeError(t, w).Error.Message)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("AddName", mock.Anything, &rosterModel.NameRequest{RosterID: "r1", Name: "Alice"}).
			Return(&rosterModel.RosterResponse{RosterID: "r1", Names: []string{"Alice"}, Teams: []teamModel.Team{}}, nil)

		w := postJSON(router, "/roster/addName", `{"roster_id":"r1","name":"Alice"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var response rosterModel.RosterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"Alice"}, response.Names)
	})

	t.Run("missing roster id", func(t *testing.T) {
		router := setupRouter(new(mockService))

		w := postJSON(router, "/roster/addName", `{"name":"Alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
	})
}

func TestHandler_RemoveName(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(mockSvc)
	mockSvc.On("RemoveName", mock.Anything, &rosterModel.NameRequest{RosterID: "r1", Name: "Alice"}).
		Return(&rosterModel.RosterResponse{RosterID: "r1", Names: []string{}, Teams: []teamModel.Team{}}, nil)

	w := postJSON(router, "/roster/removeName", `{"roster_id":"r1","name":"Alice"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestHandler_Generate(t *testing.T) {
	validationErrors := []error{
		teamModel.ErrNoNames,
		teamModel.ErrInvalidTeamCount,
		teamModel.ErrTeamCountExceedsNames,
	}

	for _, validationErr := range validationErrors {
		t.Run(validationErr.Error(), func(t *testing.T) {
			mockSvc := new(mockService)
			router := setupRouter(mockSvc)
			mockSvc.On("Generate", mock.Anything, mock.Anything).Return(nil, validationErr)

			w := postJSON(router, "/roster/generate", `{"roster_id":"r1","team_count":"9"}`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeError(t, w)
			assert.Equal(t, "INVALID_INPUT", response.Error.Code)
			assert.Equal(t, validationErr.Error(), response.Error.Message)
		})
	}

	t.Run("passes raw team count text", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("Generate", mock.Anything, &rosterModel.GenerateRequest{RosterID: "r1", TeamCount: " 2 "}).
			Return(&rosterModel.RosterResponse{RosterID: "r1", TeamCount: 2, IsGenerated: true}, nil)

		w := postJSON(router, "/roster/generate", `{"roster_id":"r1","team_count":" 2 "}`)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_Reset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(mockSvc)
		mockSvc.On("Reset", mock.Anything, "r1").
			Return(&rosterModel.RosterResponse{RosterID: "r1", Names: []string{}, Teams: []teamModel.Team{}}, nil)

		w := postJSON(router, "/roster/reset", `{"roster_id":"r1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		router := setupRouter(new(mockService))

		w := postJSON(router, "/roster/reset", `invalid`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
