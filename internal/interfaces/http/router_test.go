package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	sharedConfig "github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/logger"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{
		Auth: sharedConfig.AuthConfig{
			JWT:   sharedConfig.JWTConfig{Secret: "test-secret", Issuer: "requesthub", AccessExpMinutes: 5},
			Draft: sharedConfig.DraftConfig{Secret: "draft-secret", ExpHours: 1},
		},
		Storage: sharedConfig.StorageConfig{
			Region:          "us-east-1",
			Endpoint:        "http://127.0.0.1:1",
			AccessKeyID:     "test",
			SecretAccessKey: "test",
			UsePathStyle:    true,
			TimeoutSeconds:  1,
		},
	}

	r, err := NewRouter(context.Background(), db, cfg, logger.Discard())
	require.NoError(t, err)
	r.SetupRoutes()
	t.Cleanup(r.Shutdown)
	return r
}

func doJSON(t *testing.T, r *Router, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	var resp apiResponse
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestRouter_RequestLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/requests", map[string]string{
		"full_name":     "Ada Lovelace",
		"email":         "ada@example.com",
		"request_type":  "analytics",
		"project_title": "Forecasting",
		"description":   "Forecast quarterly revenue for the board.",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotEmpty(t, created.RequestID)

	w, _ = doJSON(t, r, http.MethodGet, "/api/requests/"+created.RequestID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/requests", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	clientToken, err := r.JWTService().Generate("client-1", constants.RoleClient)
	require.NoError(t, err)
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/requests", nil, clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := r.JWTService().Generate("ops", constants.RoleAdmin)
	require.NoError(t, err)
	w, resp = doJSON(t, r, http.MethodGet, "/api/admin/requests?status=pending", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/admin/requests/"+created.RequestID+"/status",
		map[string]string{"status": "rejected"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Clients may only approve.
	w, _ = doJSON(t, r, http.MethodPatch, "/api/requests/"+created.RequestID+"/status",
		map[string]string{"status": "accepted"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}

func TestRouter_OpsEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mw := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(mw, req)
	assert.Equal(t, http.StatusOK, mw.Code)
	assert.Contains(t, mw.Body.String(), "http_requests_total")
}

func TestRouter_ExportRouteNotShadowed(t *testing.T) {
	r := setupTestRouter(t)
	adminToken, err := r.JWTService().Generate("ops", constants.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/requests/export", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ContentTypeXLSX, w.Header().Get("Content-Type"))
}
