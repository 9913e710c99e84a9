package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbench/agentbench-api/internal/dispatch"
	"github.com/agentbench/agentbench-api/internal/models"
	"github.com/agentbench/agentbench-api/internal/platform"
	"github.com/agentbench/agentbench-api/internal/services"
)

func newResultsRouter(t *testing.T, runs int) *gin.Engine {
	t.Helper()
	gen := &stubGenerator{result: &dispatch.Result{
		Text:    "The summary covers the main key points and a conclusion.",
		Elapsed: 500 * time.Millisecond,
	}}
	svc := services.NewTestService(gen, platform.New(), nil, nil)
	for i := 0; i < runs; i++ {
		_, err := svc.Run(context.Background(), &services.RunTestInput{
			AgentName: "seeded-agent",
			Provider:  models.ProviderOpenAI,
			TaskKind:  models.TaskSummarization,
			Input:     "some input",
		})
		require.NoError(t, err)
	}

	router := gin.New()
	h := NewResultsHandler(svc)
	router.GET("/api/v1/results", h.List)
	router.GET("/api/v1/agents", h.Profiles)
	router.GET("/api/v1/comparison", h.Comparison)
	router.GET("/api/v1/stats", h.Stats)
	router.GET("/api/v1/history", h.History)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestListHandler_LimitsResults(t *testing.T) {
	router := newResultsRouter(t, 5)

	var resp struct {
		TotalTests int                   `json:"total_tests"`
		Results    []platform.TestResult `json:"results"`
	}
	w := getJSON(t, router, "/api/v1/results?limit=3", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, resp.TotalTests)
	assert.Len(t, resp.Results, 3)
}

func TestListHandler_DefaultLimit(t *testing.T) {
	router := newResultsRouter(t, 2)

	var resp struct {
		Results []platform.TestResult `json:"results"`
	}
	w := getJSON(t, router, "/api/v1/results", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Results, 2)
}

func TestListHandler_IgnoresBadLimit(t *testing.T) {
	router := newResultsRouter(t, 1)

	var resp struct {
		Results []platform.TestResult `json:"results"`
	}
	w := getJSON(t, router, "/api/v1/results?limit=oops", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Results, 1)
}

func TestProfilesHandler(t *testing.T) {
	router := newResultsRouter(t, 3)

	var profiles []platform.AgentProfile
	w := getJSON(t, router, "/api/v1/agents", &profiles)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, profiles, 1)
	assert.Equal(t, "seeded-agent", profiles[0].AgentName)
	assert.Equal(t, 3, profiles[0].TotalTests)
	assert.NotEmpty(t, profiles[0].Grade)
}

func TestComparisonHandler(t *testing.T) {
	router := newResultsRouter(t, 2)

	var resp struct {
		AgentsTested  int                        `json:"agents_tested"`
		Comparison    []platform.ComparisonEntry `json:"comparison"`
		BestPerformer *platform.ComparisonEntry  `json:"best_performer"`
	}
	w := getJSON(t, router, "/api/v1/comparison", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, resp.AgentsTested)
	require.NotNil(t, resp.BestPerformer)
	assert.Equal(t, "seeded-agent", resp.BestPerformer.AgentName)
}

func TestComparisonHandler_EmptyPlatform(t *testing.T) {
	router := newResultsRouter(t, 0)

	var resp struct {
		AgentsTested  int                       `json:"agents_tested"`
		BestPerformer *platform.ComparisonEntry `json:"best_performer"`
	}
	w := getJSON(t, router, "/api/v1/comparison", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.AgentsTested)
	assert.Nil(t, resp.BestPerformer)
}

func TestStatsHandler(t *testing.T) {
	router := newResultsRouter(t, 4)

	var stats platform.Stats
	w := getJSON(t, router, "/api/v1/stats", &stats)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, stats.TotalTests)
	assert.Equal(t, 4, stats.SuccessfulTests)
	assert.Equal(t, 100.0, stats.SuccessRate)
}

func TestHistoryHandler_WithoutPersistence(t *testing.T) {
	router := newResultsRouter(t, 1)

	w := getJSON(t, router, "/api/v1/history", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Persistence is not configured")
}
