package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqChat(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Halo! Ada yang bisa saya bantu?"}},
			},
		})
	}))
	defer server.Close()

	p := NewGroqProvider("test-key", server.URL, "llama-3.3-70b-versatile")

	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "Kamu adalah asisten AI yang ramah dan informatif."},
		{Role: "user", Content: "halo"},
	}, llm.WithTemperature(0.7))

	require.NoError(t, err)
	assert.Equal(t, "Halo! Ada yang bisa saya bantu?", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "llama-3.3-70b-versatile", gotReq.Model)
	assert.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
}

func TestGroqChatErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limited"}}`))
		}))
		defer server.Close()

		p := NewGroqProvider("k", server.URL, "m")
		_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("error body with 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": {"message": "model not found"}}`))
		}))
		defer server.Close()

		p := NewGroqProvider("k", server.URL, "m")
		_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		p := NewGroqProvider("k", server.URL, "m")
		_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}

func TestGroqGenerateWrapsPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "say hi", req.Messages[0].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "hi"}},
			},
		})
	}))
	defer server.Close()

	p := NewGroqProvider("", server.URL, "m")
	reply, err := p.Generate(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", reply)
}
