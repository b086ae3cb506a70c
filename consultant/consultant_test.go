package consultant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarlux/cedar_lux_site/backend/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := New("test-key")
	c.BaseURL = srv.URL
	return c, srv.Close
}

func isFallback(s string) bool {
	for _, f := range fallbacks {
		if s == f {
			return true
		}
	}
	return false
}

func TestAdviseReturnsReplyText(t *testing.T) {
	var got generateRequest
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"role": "model", "parts": []map[string]string{{"text": "Consider white oak floors."}}}},
			},
		})
	})
	defer done()

	history := []models.ChatMessage{
		{Role: models.RoleAssistant, Content: "Welcome to Cedar Lux Properties."},
		{Role: models.RoleUser, Content: "I want a boat house."},
	}
	reply := client.Advise(context.Background(), "What about flooring?", history)

	assert.Equal(t, "Consider white oak floors.", reply)

	// History maps to model/user roles with the new prompt appended last.
	require.Len(t, got.Contents, 3)
	assert.Equal(t, "model", got.Contents[0].Role)
	assert.Equal(t, "user", got.Contents[1].Role)
	assert.Equal(t, "user", got.Contents[2].Role)
	assert.Equal(t, "What about flooring?", got.Contents[2].Parts[0].Text)
	assert.NotEmpty(t, got.SystemInstruction.Parts)
	assert.InDelta(t, 0.7, got.GenerationConfig.Temperature, 0.001)
}

func TestAdviseFallsBackOnServerError(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer done()

	reply := client.Advise(context.Background(), "hello", nil)
	assert.True(t, isFallback(reply), "got %q", reply)
}

func TestAdviseFallsBackOnUnreachableEndpoint(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	done() // close immediately so the call fails at transport level

	reply := client.Advise(context.Background(), "hello", nil)
	assert.True(t, isFallback(reply), "got %q", reply)
}

func TestAdviseFallsBackOnMissingKey(t *testing.T) {
	client := New("")

	reply := client.Advise(context.Background(), "hello", nil)
	assert.True(t, isFallback(reply), "got %q", reply)
}

func TestAdviseFallsBackOnEmptyCandidates(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})
	defer done()

	reply := client.Advise(context.Background(), "hello", nil)
	assert.True(t, isFallback(reply), "got %q", reply)
}

func TestAdviseNeverReturnsEmpty(t *testing.T) {
	client, done := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "   "}}}},
			},
		})
	})
	defer done()

	for i := 0; i < len(fallbacks)+1; i++ {
		reply := client.Advise(context.Background(), "hello", nil)
		assert.NotEmpty(t, reply)
		assert.True(t, isFallback(reply))
	}
}
