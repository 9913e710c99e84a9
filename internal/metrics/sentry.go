package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordTestRun records the outcome of one agent test dispatch
func (m *SentryMetrics) RecordTestRun(ctx context.Context, provider, taskKind string, score float64, duration time.Duration) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("agent.provider", provider)
		transaction.SetTag("agent.task_kind", taskKind)
		transaction.SetData("agent.overall_score", score)
		transaction.SetData("agent.duration_ms", duration.Milliseconds())
		return
	}

	span := sentry.StartSpan(ctx, "agent.test")
	defer span.Finish()

	span.SetTag("provider", provider)
	span.SetTag("task_kind", taskKind)
	span.SetData("overall_score", score)
	span.SetData("duration_ms", duration.Milliseconds())
	span.Description = fmt.Sprintf("Agent test: %s/%s", provider, taskKind)
}
