package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func doRequest(router *gin.Engine) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("database is healthy", func(t *testing.T) {
		router := gin.New()
		RegisterRoutes(router, setupTestDB(t), zap.NewNop().Sugar())

		w, resp := doRequest(router)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, Response{Status: "ok", Database: "up"}, resp)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("database is closed", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		router := gin.New()
		RegisterRoutes(router, db, zap.NewNop().Sugar())

		w, resp := doRequest(router)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, Response{Status: "unhealthy", Database: "down"}, resp)
	})
}

func TestHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("failing check is logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		handler := New(func(ctx context.Context) error {
			return errors.New("connection refused")
		}, zap.New(core).Sugar())

		router := gin.New()
		router.GET("/health", handler.Check)

		w, _ := doRequest(router)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, 1, logs.FilterMessage("health check failed").Len())
	})

	t.Run("check receives a deadline", func(t *testing.T) {
		var hasDeadline bool
		handler := New(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}, zap.NewNop().Sugar())

		router := gin.New()
		router.GET("/health", handler.Check)

		w, _ := doRequest(router)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasDeadline)
	})
}
