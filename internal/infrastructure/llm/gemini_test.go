package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, status int, response string, captured *geminiRequest, path *string, key *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.Path
		}
		if key != nil {
			*key = r.Header.Get("x-goog-api-key")
			assert.Empty(t, r.URL.RawQuery)
		}
		if captured != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func geminiTestConfig(baseURL string) Config {
	return Config{
		Provider:   ProviderGemini,
		APIKey:     "test-key",
		BaseURL:    baseURL,
		Generation: DefaultGenerationConfig(),
	}
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(Config{Provider: ProviderGemini})
	assert.Error(t, err)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var (
		captured geminiRequest
		path     string
		key      string
	)
	response := `{"candidates":[{"content":{"parts":[{"text":"Our **Cold Brew** "},{"text":"is $4.25."}],"role":"model"},"finishReason":"STOP"}]}`
	server := newGeminiServer(t, http.StatusOK, response, &captured, &path, &key)

	gen, err := NewGeminiGenerator(geminiTestConfig(server.URL))
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "PROMPT")

	require.NoError(t, err)
	assert.Equal(t, "Our **Cold Brew** is $4.25.", text)
	assert.Equal(t, "gemini", gen.Name())

	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", path)
	assert.Equal(t, "test-key", key)

	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "PROMPT", captured.Contents[0].Parts[0].Text)
	assert.Equal(t, geminiGenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}, captured.GenerationConfig)
}

func TestGeminiGenerator_CustomModel(t *testing.T) {
	var path string
	server := newGeminiServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`, nil, &path, nil)

	config := geminiTestConfig(server.URL)
	config.Model = "gemini-2.0-flash"
	gen, err := NewGeminiGenerator(config)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", path)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
	}{
		{
			name:     "upstream error message",
			status:   http.StatusBadRequest,
			response: `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`,
			want:     "gemini upstream 400: API key not valid. Please pass a valid API key.",
		},
		{
			name:     "raw upstream body",
			status:   http.StatusServiceUnavailable,
			response: `overloaded`,
			want:     "gemini upstream 503: overloaded",
		},
		{
			name:     "blocked prompt",
			status:   http.StatusOK,
			response: `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			want:     "gemini blocked prompt: SAFETY",
		},
		{
			name:     "no candidates",
			status:   http.StatusOK,
			response: `{"candidates":[]}`,
			want:     "gemini returned no candidates",
		},
		{
			name:     "empty text",
			status:   http.StatusOK,
			response: `{"candidates":[{"content":{"parts":[]}}]}`,
			want:     "gemini returned an empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newGeminiServer(t, tt.status, tt.response, nil, nil, nil)
			gen, err := NewGeminiGenerator(geminiTestConfig(server.URL))
			require.NoError(t, err)

			_, err = gen.Generate(context.Background(), "prompt")

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestGeminiGenerator_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gen, err := NewGeminiGenerator(geminiTestConfig(server.URL))
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeminiGenerator_TransportErrorOmitsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	config := geminiTestConfig(baseURL)
	config.APIKey = "SECRET-KEY-123"
	gen, err := NewGeminiGenerator(config)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini request failed")
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
}
