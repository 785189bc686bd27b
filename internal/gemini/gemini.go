// Package gemini wraps the Google generative AI client behind the
// prompt-in, text-out call shape the digest pipeline consumes.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bal2005/news-summarizer-agent/internal/ratelimit"
)

type Client struct {
	client  *genai.Client
	model   string
	limiter *ratelimit.Limiter
}

// NewClient builds a Gemini-backed language model client. maxRequests
// bounds model calls per digest cycle (0 = unlimited); the budget is
// reset by the caller at the start of each cycle via ResetBudget.
func NewClient(ctx context.Context, apiKey, model string, maxRequests int) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		limiter: ratelimit.NewLimiter(maxRequests),
	}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// ResetBudget clears the per-cycle request budget.
func (c *Client) ResetBudget() {
	c.limiter.Reset()
}

// RequestsUsed reports model calls consumed in the current cycle.
func (c *Client) RequestsUsed() int {
	return c.limiter.Used()
}

// Invoke sends one prompt and returns the model's text response.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Allow(); err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("response contains no text parts")
	}

	return b.String(), nil
}
