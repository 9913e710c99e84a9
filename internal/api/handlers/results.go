package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentbench/agentbench-api/internal/services"
	"github.com/gin-gonic/gin"
)

const defaultResultsLimit = 20

// ResultsHandler serves aggregated test results and agent rankings.
type ResultsHandler struct {
	svc *services.TestService
}

func NewResultsHandler(svc *services.TestService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// List returns recent test results, most recent first.
func (h *ResultsHandler) List(c *gin.Context) {
	limit := defaultResultsLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	plat := h.svc.Platform()
	c.JSON(http.StatusOK, gin.H{
		"total_tests": plat.TotalResults(),
		"results":     plat.Recent(limit),
	})
}

// Profiles returns per-agent aggregates, best average first.
func (h *ResultsHandler) Profiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Platform().Profiles())
}

// Comparison ranks all scored agents head to head.
func (h *ResultsHandler) Comparison(c *gin.Context) {
	comparison := h.svc.Platform().Comparison()
	response := gin.H{
		"agents_tested": len(comparison),
		"comparison":    comparison,
	}
	if len(comparison) > 0 {
		response["best_performer"] = comparison[0]
	} else {
		response["best_performer"] = nil
	}
	c.JSON(http.StatusOK, response)
}

// Stats returns platform-wide counters.
func (h *ResultsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Platform().Stats())
}

// History returns persisted records from the database, newest first.
func (h *ResultsHandler) History(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.svc.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	if records == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Persistence is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}
