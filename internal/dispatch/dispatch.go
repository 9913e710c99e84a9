// Package dispatch normalizes heterogeneous HTTP text-generation APIs
// behind one call contract: build a task prompt, issue a single outbound
// request in the provider's wire format, and extract plain text from the
// provider's response envelope. It performs no retries, caching, or
// rate-limit tracking.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/agentbench/agentbench-api/internal/models"
)

// DefaultTimeout bounds every outbound call unless the caller supplies
// its own http.Client.
const DefaultTimeout = 60 * time.Second

// Default endpoints used when a request carries none.
const (
	defaultOpenAIEndpoint      = "https://api.openai.com/v1/chat/completions"
	defaultAnthropicEndpoint   = "https://api.anthropic.com/v1/messages"
	defaultGoogleEndpoint      = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"
	defaultHuggingFaceEndpoint = "https://api-inference.huggingface.co/models/meta-llama/Meta-Llama-3.1-8B-Instruct"
)

// Default generation parameters sent to chat-style providers.
const (
	defaultOpenAIModel    = "gpt-3.5-turbo"
	defaultAnthropicModel = "claude-3-sonnet-20240229"
	defaultMaxTokens      = 2000
	defaultTemperature    = 0.7

	anthropicVersion = "2023-06-01"

	statusModelLoading = http.StatusServiceUnavailable
)

// Request describes one generation call. It is immutable once
// constructed and owned by the call that created it.
type Request struct {
	Provider models.ProviderKind
	// Endpoint overrides the provider's default URL. Required for
	// custom-http, which has no documented default.
	Endpoint string
	// APIKey is the bearer token or provider key. Sent under the
	// provider's own header shape.
	APIKey   string
	TaskKind models.TaskKind
	Input    string
	// Params holds extra provider parameters. Only the custom-http shape
	// splats them into the request body.
	Params map[string]any
}

// Result is the normalized outcome of one dispatch: the extracted plain
// text and the elapsed wall time of the outbound call, measured from
// immediately before the request to after the body is fully read.
type Result struct {
	Text    string
	Elapsed time.Duration
}

// Dispatcher issues one-shot generation calls. It holds no per-call
// state; concurrent use by multiple callers is safe.
type Dispatcher struct {
	client *http.Client
}

// NewDispatcher creates a dispatcher. A nil client gets the default
// 60-second timeout.
func NewDispatcher(client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Dispatcher{client: client}
}

// Execute runs one generation call against the requested provider.
// Unsupported kinds fail fast with UnsupportedProviderError before any
// network activity.
func (d *Dispatcher) Execute(ctx context.Context, req *Request) (*Result, error) {
	format, ok := formatFor(req.Provider)
	if !ok {
		return nil, &UnsupportedProviderError{Kind: string(req.Provider)}
	}

	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = format.defaultEndpoint
	}
	if endpoint == "" {
		return nil, fmt.Errorf("%s: %w", req.Provider, ErrMissingEndpoint)
	}

	prompt := BuildPrompt(req.TaskKind, req.Input)
	payload, err := json.Marshal(format.buildBody(prompt, req.Params))
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", req.Provider, err)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", req.Provider, err)
	}
	hreq.Header.Set("Content-Type", "application/json")
	format.setAuth(hreq.Header, req.APIKey)

	start := time.Now()
	resp, err := d.client.Do(hreq)
	if err != nil {
		return nil, &TransportError{Provider: req.Provider, Reason: classifyTransport(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, &TransportError{Provider: req.Provider, Reason: classifyTransport(ctx, err), Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ProviderError{
			Provider:  req.Provider,
			Status:    resp.StatusCode,
			Body:      string(raw),
			Transient: format.transientStatus && resp.StatusCode == statusModelLoading,
		}
	}

	text, err := format.extract(raw)
	if err != nil {
		return nil, &ProviderError{Provider: req.Provider, Status: resp.StatusCode, Body: string(raw)}
	}

	return &Result{Text: text, Elapsed: elapsed}, nil
}

// classifyTransport decides whether a failed call was cancelled, timed
// out, or never connected. Context state wins over the wrapped error so
// caller cancellation is not misreported as a timeout.
func classifyTransport(ctx context.Context, err error) TransportReason {
	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return ReasonCancelled
		}
		return ReasonTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ReasonCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ReasonTimeout
	}
	return ReasonConnection
}
