package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractChatCompletion(t *testing.T) {
	text, err := extractChatCompletion([]byte(`{"choices":[{"message":{"content":"hello"}},{"message":{"content":"second"}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = extractChatCompletion([]byte(`{"choices":[]}`))
	assert.Error(t, err)

	_, err = extractChatCompletion([]byte(`not json`))
	assert.Error(t, err)
}

func TestExtractMessageBlocks(t *testing.T) {
	text, err := extractMessageBlocks([]byte(`{"content":[{"type":"text","text":"block one"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "block one", text)

	_, err = extractMessageBlocks([]byte(`{"content":[]}`))
	assert.Error(t, err)
}

func TestExtractGenerateContent(t *testing.T) {
	text, err := extractGenerateContent([]byte(`{"candidates":[{"content":{"parts":[{"text":"part one"},{"text":"part two"}]}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "part one", text)

	_, err = extractGenerateContent([]byte(`{"candidates":[]}`))
	assert.Error(t, err)

	_, err = extractGenerateContent([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	assert.Error(t, err)
}

func TestExtractInference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"list with generated_text", `[{"generated_text":"from list"}]`, "from list"},
		{"list first element without generated_text", `[{"other":"value"}]`, `{"other":"value"}`},
		{"list of strings", `["bare string"]`, "bare string"},
		{"object with generated_text", `{"generated_text":"from object"}`, "from object"},
		{"object with text", `{"text":"text field"}`, "text field"},
		{"object without known fields", `{"score":0.9}`, `{"score":0.9}`},
		{"bare string", `"just text"`, "just text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := extractInference([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}

	_, err := extractInference([]byte(`[]`))
	assert.Error(t, err)
}

func TestExtractCustom(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"output field", `{"output":"from output"}`, "from output"},
		{"response field", `{"response":"from response"}`, "from response"},
		{"text field", `{"text":"from text"}`, "from text"},
		{"generated_text field", `{"generated_text":"from generated"}`, "from generated"},
		{"result field", `{"result":"from result"}`, "from result"},
		{"completion field", `{"completion":"from completion"}`, "from completion"},
		{"output wins over later fields", `{"text":"later","output":"first"}`, "first"},
		{"top-level string", `"plain body"`, "plain body"},
		{"non-string field value stringified", `{"output":{"nested":true}}`, `{"nested":true}`},
		{"unknown object stringified", `{"foo":"bar"}`, `{"foo":"bar"}`},
		{"numeric body", `42`, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := extractCustom([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}

	_, err := extractCustom([]byte(`{broken`))
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "3.5", stringify(3.5))
	assert.Equal(t, "2", stringify(float64(2)))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "null", stringify(nil))
	assert.Equal(t, `["a","b"]`, stringify([]any{"a", "b"}))
}
