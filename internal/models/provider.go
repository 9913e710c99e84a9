package models

import "strings"

// ProviderKind identifies the wire-format family an external
// text-generation service speaks. The set is closed: adding a provider
// means adding one kind plus its request/header/extract shaping in
// internal/dispatch.
type ProviderKind string

const (
	ProviderOpenAI      ProviderKind = "openai-compatible"
	ProviderAnthropic   ProviderKind = "anthropic-compatible"
	ProviderGoogle      ProviderKind = "google-generative"
	ProviderHuggingFace ProviderKind = "huggingface-inference"
	ProviderCustom      ProviderKind = "custom-http"
)

// providerAliases maps the short names accepted on the API to canonical
// kinds. The long names are accepted as-is.
var providerAliases = map[string]ProviderKind{
	"openai":      ProviderOpenAI,
	"anthropic":   ProviderAnthropic,
	"google":      ProviderGoogle,
	"gemini":      ProviderGoogle,
	"huggingface": ProviderHuggingFace,
	"custom":      ProviderCustom,
}

// ParseProviderKind resolves a caller-supplied provider name to a
// canonical kind. Unknown names are rejected rather than silently routed
// to the custom shape; callers that want the custom shape name it.
func ParseProviderKind(s string) (ProviderKind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch ProviderKind(name) {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderHuggingFace, ProviderCustom:
		return ProviderKind(name), true
	}
	if kind, ok := providerAliases[name]; ok {
		return kind, true
	}
	return "", false
}

// ProviderInfo describes a provider kind for the catalog endpoint.
type ProviderInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AuthHeader  string   `json:"auth_header"`
	Aliases     []string `json:"aliases,omitempty"`
}

// ProviderCatalog lists the supported provider kinds with display metadata.
var ProviderCatalog = []ProviderInfo{
	{ID: string(ProviderOpenAI), Name: "OpenAI-compatible", Description: "Chat-completions wire format", AuthHeader: "Authorization: Bearer", Aliases: []string{"openai"}},
	{ID: string(ProviderAnthropic), Name: "Anthropic-compatible", Description: "Messages wire format", AuthHeader: "x-api-key", Aliases: []string{"anthropic"}},
	{ID: string(ProviderGoogle), Name: "Google Generative Language", Description: "generateContent wire format", AuthHeader: "x-goog-api-key", Aliases: []string{"google", "gemini"}},
	{ID: string(ProviderHuggingFace), Name: "Hugging Face Inference", Description: "Inference API inputs format", AuthHeader: "Authorization: Bearer", Aliases: []string{"huggingface"}},
	{ID: string(ProviderCustom), Name: "Custom HTTP", Description: "Conventional prompt/input/query JSON body", AuthHeader: "Authorization: Bearer (optional)", Aliases: []string{"custom"}},
}
