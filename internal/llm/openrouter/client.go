package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"offerai-backend/internal/llm"
)

const (
	defaultAPIURL = "https://openrouter.ai/api/v1/chat/completions"

	// Model is the fixed completion model used for every request.
	Model = "openai/gpt-4o-mini-2024-07-18"
)

// Client implements llm.Client against the OpenRouter chat completions API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAPIURL overrides the completion endpoint, mainly for tests.
func WithAPIURL(url string) Option {
	return func(c *Client) { c.apiURL = url }
}

// NewClient constructs an OpenRouter client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	c := &Client{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		// Transport defaults only: no client-level timeout override.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
	Model    string        `json:"model"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete issues a single synchronous completion request carrying the system
// and user instructions in order. Failures come back as *llm.Error.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Model: Model,
	})
	if err != nil {
		return "", llm.UnknownError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", llm.UnknownError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", llm.TransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.TransportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", llm.TransportError(fmt.Errorf("%s returned status %d", c.apiURL, resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", llm.ResponseShapeError(err.Error())
	}
	if len(parsed.Choices) == 0 {
		return "", llm.ResponseShapeError("response missing choices")
	}
	content := parsed.Choices[0].Message.Content
	if content == "" {
		return "", llm.ResponseShapeError("response missing message content")
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
