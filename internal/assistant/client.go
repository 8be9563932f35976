package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lockdesk/lockdesk/internal/common"
)

const systemPrompt = `You are a support assistant for an automotive locksmith shop.
Answer questions about vehicle keys, transponder chips, FCC IDs, programming
procedures and day-to-day shop work. Keep answers short and practical. If you
are not sure, say so instead of guessing part numbers.`

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	cfg    common.AssistantConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg common.AssistantConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Reply forwards one user message to the backend and returns the assistant
// text. Without an API key it degrades to a fixed notice so the rest of the
// app keeps working.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	if c.cfg.APIKey == "" {
		return "The assistant is not configured (missing API key). Job logging still works: try \"log job: vehicle=2019 Honda Civic; job=akl; price=280\".", nil
	}

	reqID := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	c.logger.Info("assistant.request", "req_id", reqID, "model", c.cfg.Model, "content_length", len(body))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("assistant.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	defer func(rc io.ReadCloser) {
		if err := rc.Close(); err != nil {
			c.logger.Warn("assistant.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("assistant.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return cr.Choices[0].Message.Content, nil
}
