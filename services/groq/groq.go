package groq

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"vibemix/blueprint"
)

const (
	// DefaultBaseURL is groq's openai-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// Model is the chat model used for playlist curation.
	Model = "llama3-8b-8192"
)

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body for the chat completions endpoint.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
}

// ChatResponse is the subset of the completion response we care about.
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client talks to the groq chat completions API.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient returns a groq client for the given api key.
func NewClient(apiKey string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(DefaultBaseURL).SetTimeout(45 * time.Second),
		apiKey: apiKey,
	}
}

// WithBaseURL points the client at a different API root. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.http.SetBaseURL(baseURL)
	return c
}

// ChatCompletion submits a chat request and returns the raw text of the first
// choice. The caller is responsible for parsing whatever the model produced.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = Model
	}

	var out ChatResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		log.Printf("\n[services][groq][ChatCompletion] error - could not reach groq: %v\n", err)
		return "", err
	}
	if resp.IsError() {
		log.Printf("\n[services][groq][ChatCompletion] error - groq returned %s: %s\n", resp.Status(), apiErr.Error.Message)
		return "", fmt.Errorf("groq: %s: %s", resp.Status(), apiErr.Error.Message)
	}
	if len(out.Choices) == 0 {
		log.Printf("\n[services][groq][ChatCompletion] error - groq returned no choices\n")
		return "", blueprint.EnoResult
	}
	return out.Choices[0].Message.Content, nil
}
