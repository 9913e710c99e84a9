package handlers

import (
	"errors"
	"net/http"

	"github.com/agentbench/agentbench-api/internal/api/middleware"
	"github.com/agentbench/agentbench-api/internal/dispatch"
	"github.com/agentbench/agentbench-api/internal/models"
	"github.com/agentbench/agentbench-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TestsHandler runs agent tests.
type TestsHandler struct {
	svc *services.TestService
}

func NewTestsHandler(svc *services.TestService) *TestsHandler {
	return &TestsHandler{svc: svc}
}

// RunTestRequest is the API shape for one agent test.
type RunTestRequest struct {
	AgentName      string         `json:"agent_name" binding:"required"`
	AgentEndpoint  string         `json:"agent_endpoint"`
	AgentAPIKey    string         `json:"agent_api_key"`
	AgentType      string         `json:"agent_type" binding:"required"`
	TaskType       string         `json:"task_type" binding:"required"`
	TestInput      string         `json:"test_input" binding:"required"`
	TestParameters map[string]any `json:"test_parameters"`
}

// Run executes a test against an external agent and returns the scored
// result.
func (h *TestsHandler) Run(c *gin.Context) {
	var req RunTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, ok := models.ParseProviderKind(req.AgentType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid agent_type. Allowed: openai, anthropic, google, huggingface, custom",
		})
		return
	}

	taskKind := models.TaskKind(req.TaskType)
	if !taskKind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task_type"})
		return
	}

	result, err := h.svc.Run(c.Request.Context(), &services.RunTestInput{
		AgentName: req.AgentName,
		Provider:  provider,
		Endpoint:  req.AgentEndpoint,
		APIKey:    req.AgentAPIKey,
		TaskKind:  taskKind,
		Input:     req.TestInput,
		Params:    req.TestParameters,
		RequestID: c.GetString("request_id"),
	})
	if err != nil {
		h.writeDispatchError(c, result, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"result":     result,
	})
}

// writeDispatchError maps the dispatch error taxonomy onto HTTP statuses.
// The failed result is still returned so the caller has the test id.
func (h *TestsHandler) writeDispatchError(c *gin.Context, result interface{}, err error) {
	middleware.CaptureError(c, err)

	var providerErr *dispatch.ProviderError
	var transportErr *dispatch.TransportError
	var unsupportedErr *dispatch.UnsupportedProviderError

	switch {
	case errors.As(err, &unsupportedErr), errors.Is(err, dispatch.ErrMissingEndpoint):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           err.Error(),
			"provider_status": providerErr.Status,
			"transient":       providerErr.Transient,
			"result":          result,
			"request_id":      c.GetString("request_id"),
		})
	case errors.As(err, &transportErr):
		status := http.StatusBadGateway
		if transportErr.Reason == dispatch.ReasonTimeout {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{
			"error":      err.Error(),
			"reason":     string(transportErr.Reason),
			"result":     result,
			"request_id": c.GetString("request_id"),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
	}
}
