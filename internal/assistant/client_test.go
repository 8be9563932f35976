package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockdesk/lockdesk/internal/common"
)

func TestReplyWithoutAPIKey(t *testing.T) {
	c := NewClient(common.AssistantConfig{}, nil)

	reply, err := c.Reply(context.Background(), "what chip is in a 2014 X5?")
	require.NoError(t, err)
	assert.Contains(t, reply, "not configured")
}

func TestReply(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[1].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "It uses a PCF7953 chip."}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(common.AssistantConfig{
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, nil)

	reply, err := c.Reply(context.Background(), "what chip is in a 2014 X5?")
	require.NoError(t, err)
	assert.Equal(t, "It uses a PCF7953 chip.", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestReplyNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(common.AssistantConfig{BaseURL: srv.URL, APIKey: "k"}, nil)

	_, err := c.Reply(context.Background(), "hi")
	assert.Error(t, err)
}
