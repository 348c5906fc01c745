package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibemix/blueprint"
)

func TestChatCompletion(t *testing.T) {
	t.Run("returns the first choice content", func(t *testing.T) {
		var gotAuth string
		var gotBody ChatRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/chat/completions", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "hello there"}}]}`))
		}))
		defer server.Close()

		client := NewClient("test-key").WithBaseURL(server.URL)
		content, err := client.ChatCompletion(context.Background(), &ChatRequest{
			Messages:    []Message{{Role: "user", Content: "hi"}},
			Temperature: 0.9,
		})

		require.NoError(t, err)
		assert.Equal(t, "hello there", content)
		assert.Equal(t, "Bearer test-key", gotAuth)
		// the default model is filled in when the caller leaves it empty
		assert.Equal(t, Model, gotBody.Model)
	})

	t.Run("surfaces api errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "requests"}}`))
		}))
		defer server.Close()

		client := NewClient("test-key").WithBaseURL(server.URL)
		_, err := client.ChatCompletion(context.Background(), &ChatRequest{Model: Model})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("treats an empty choice list as no result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewClient("test-key").WithBaseURL(server.URL)
		_, err := client.ChatCompletion(context.Background(), &ChatRequest{Model: Model})

		assert.ErrorIs(t, err, blueprint.EnoResult)
	})
}
