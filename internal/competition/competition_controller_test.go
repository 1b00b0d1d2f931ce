package competition

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/pkg/responses"
)

func setupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterCompetitionRoutes(router.Group("/api/stats"), db, &config.Config{})
	return router
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCurrentCompetitionPaused(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	w := performRequest(router, "/api/stats/current-competition")
	assert.Equal(t, http.StatusOK, w.Code, "paused is a success shape, not an error")

	var body PausedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "paused", body.Status)
	assert.Equal(t, "No competition currently running", body.Message)
}

func TestGetLatestCompetitionNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	w := performRequest(router, "/api/stats/latest-competition")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "No completed competition found", body.Message)
}

func TestGetCompetitionsRejectsOutOfRangeLimit(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	for _, path := range []string{
		"/api/stats/competitions?limit=0",
		"/api/stats/competitions?limit=101",
		"/api/stats/competitions?offset=-1",
	} {
		w := performRequest(router, path)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, path)

		var body responses.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid query parameters", body.Message)
		assert.NotEmpty(t, body.Fields)
	}
}

func TestGetCompetitionsDefaults(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	w := performRequest(router, "/api/stats/competitions")
	assert.Equal(t, http.StatusOK, w.Code)

	var body []Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body)
}
