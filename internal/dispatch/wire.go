package dispatch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agentbench/agentbench-api/internal/models"
)

// wireFormat is one provider family's shaping: default endpoint, request
// body, auth header, and response extraction. The provider set is closed;
// a new provider is one more entry here, not a subclass anywhere.
type wireFormat struct {
	defaultEndpoint string
	buildBody       func(prompt string, params map[string]any) map[string]any
	setAuth         func(h http.Header, apiKey string)
	extract         func(body []byte) (string, error)
	// transientStatus marks formats where HTTP 503 conventionally means
	// the model is still loading rather than a hard failure.
	transientStatus bool
}

func formatFor(kind models.ProviderKind) (*wireFormat, bool) {
	switch kind {
	case models.ProviderOpenAI:
		return &openAIFormat, true
	case models.ProviderAnthropic:
		return &anthropicFormat, true
	case models.ProviderGoogle:
		return &googleFormat, true
	case models.ProviderHuggingFace:
		return &huggingFaceFormat, true
	case models.ProviderCustom:
		return &customFormat, true
	}
	return nil, false
}

var openAIFormat = wireFormat{
	defaultEndpoint: defaultOpenAIEndpoint,
	buildBody: func(prompt string, _ map[string]any) map[string]any {
		return map[string]any{
			"model":       defaultOpenAIModel,
			"messages":    []map[string]any{{"role": "user", "content": prompt}},
			"max_tokens":  defaultMaxTokens,
			"temperature": defaultTemperature,
		}
	},
	setAuth: bearerAuth,
	extract: extractChatCompletion,
}

var anthropicFormat = wireFormat{
	defaultEndpoint: defaultAnthropicEndpoint,
	buildBody: func(prompt string, _ map[string]any) map[string]any {
		return map[string]any{
			"model":      defaultAnthropicModel,
			"messages":   []map[string]any{{"role": "user", "content": prompt}},
			"max_tokens": defaultMaxTokens,
		}
	},
	setAuth: func(h http.Header, apiKey string) {
		h.Set("x-api-key", apiKey)
		h.Set("anthropic-version", anthropicVersion)
	},
	extract: extractMessageBlocks,
}

var googleFormat = wireFormat{
	defaultEndpoint: defaultGoogleEndpoint,
	buildBody: func(prompt string, _ map[string]any) map[string]any {
		return map[string]any{
			"contents": []map[string]any{
				{"parts": []map[string]any{{"text": prompt}}},
			},
		}
	},
	setAuth: func(h http.Header, apiKey string) {
		h.Set("x-goog-api-key", apiKey)
	},
	extract: extractGenerateContent,
}

var huggingFaceFormat = wireFormat{
	defaultEndpoint: defaultHuggingFaceEndpoint,
	buildBody: func(prompt string, _ map[string]any) map[string]any {
		return map[string]any{"inputs": prompt}
	},
	setAuth:         bearerAuth,
	extract:         extractInference,
	transientStatus: true,
}

var customFormat = wireFormat{
	// Custom backends have no documented default endpoint; the request
	// must supply one.
	buildBody: func(prompt string, params map[string]any) map[string]any {
		body := map[string]any{
			"prompt": prompt,
			"input":  prompt,
			"query":  prompt,
		}
		for k, v := range params {
			body[k] = v
		}
		return body
	},
	setAuth: func(h http.Header, apiKey string) {
		if apiKey != "" {
			bearerAuth(h, apiKey)
		}
	},
	extract: extractCustom,
}

func bearerAuth(h http.Header, apiKey string) {
	h.Set("Authorization", "Bearer "+apiKey)
}

// extractChatCompletion pulls the first choice's message content from a
// chat-completions envelope.
func extractChatCompletion(body []byte) (string, error) {
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse chat completion: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// extractMessageBlocks pulls the first content block's text from a
// messages envelope.
func extractMessageBlocks(body []byte) (string, error) {
	var parsed struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse messages response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("messages response has no content blocks")
	}
	return parsed.Content[0].Text, nil
}

// extractGenerateContent pulls the first candidate's text from a
// generateContent envelope.
func extractGenerateContent(body []byte) (string, error) {
	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse generateContent response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generateContent response has no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// extractInference handles the Inference API's two envelope shapes: a
// list whose first element carries generated_text, or a bare object with
// generated_text or text. Anything else is stringified.
func extractInference(body []byte) (string, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("parse inference response: %w", err)
	}
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return "", fmt.Errorf("inference response is an empty list")
		}
		if obj, ok := v[0].(map[string]any); ok {
			if text, ok := obj["generated_text"]; ok {
				return stringify(text), nil
			}
			return stringify(obj), nil
		}
		return stringify(v[0]), nil
	case map[string]any:
		if text, ok := v["generated_text"]; ok {
			return stringify(text), nil
		}
		if text, ok := v["text"]; ok {
			return stringify(text), nil
		}
		return stringify(v), nil
	default:
		return stringify(v), nil
	}
}

// customExtractionFields is the order in which conventional field names
// are tried on unknown custom backends.
var customExtractionFields = []string{"output", "response", "text", "generated_text", "result", "completion"}

// extractCustom tries the conventional field names in order, accepts a
// top-level string body directly, and stringifies the whole body as a
// last resort.
func extractCustom(body []byte) (string, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("parse custom response: %w", err)
	}
	switch v := data.(type) {
	case string:
		return v, nil
	case map[string]any:
		for _, field := range customExtractionFields {
			if value, ok := v[field]; ok {
				return stringify(value), nil
			}
		}
		return stringify(v), nil
	default:
		return stringify(v), nil
	}
}

// stringify renders a decoded JSON value as text: strings pass through,
// everything else is re-encoded as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(encoded)
	}
}
