package dispatch

import (
	"errors"
	"fmt"

	"github.com/agentbench/agentbench-api/internal/models"
)

// ErrMissingEndpoint is returned before any network call when a provider
// kind has no documented default endpoint and the request supplies none.
var ErrMissingEndpoint = errors.New("endpoint is required for this provider")

// ProviderError means the provider answered with a non-success outcome:
// a non-2xx status, or a 2xx body that could not be decoded. The raw
// response body is carried so callers keep the provider's own error
// signal.
type ProviderError struct {
	Provider models.ProviderKind
	Status   int
	Body     string
	// Transient marks the model-still-loading signal (HTTP 503 on
	// inference-style backends). The dispatcher never retries; callers
	// decide whether a retry is worth it.
	Transient bool
}

func (e *ProviderError) Error() string {
	if e.Transient {
		return fmt.Sprintf("%s: model is loading (status %d), retry later: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: API error: %d - %s", e.Provider, e.Status, e.Body)
}

// TransportReason classifies why a request never completed.
type TransportReason string

const (
	ReasonTimeout    TransportReason = "timeout"
	ReasonConnection TransportReason = "connection"
	ReasonCancelled  TransportReason = "cancelled"
)

// TransportError means the outbound call never produced a response:
// timeout, connection failure, or caller cancellation.
type TransportError struct {
	Provider models.ProviderKind
	Reason   TransportReason
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure (%s): %v", e.Provider, e.Reason, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnsupportedProviderError is a configuration error: the request named a
// provider kind outside the supported set. It is returned before any
// network call.
type UnsupportedProviderError struct {
	Kind string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider kind: %q", e.Kind)
}

// IsTransient reports whether err carries the model-loading signal that
// conventionally warrants a caller-side retry.
func IsTransient(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Transient
}
