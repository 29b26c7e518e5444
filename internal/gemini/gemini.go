// Package gemini wraps the Google GenAI client behind the single call
// the pipeline needs.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"
)

// DefaultModel serves all three stages unless configuration overrides it.
const DefaultModel = "gemini-2.0-flash-001"

// Generator is the model surface the pipeline depends on. Tests and the
// dry-run path substitute their own implementations.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client is the production Generator backed by the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Generator = (*Client)(nil)

// NewClient builds a Gemini client. The key must already be resolved;
// there is no fallback credential of any kind. A zero timeout leaves
// calls bounded only by the caller's context.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	return &Client{client: c, model: model, timeout: timeout}, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one prompt and returns the reply text. A blocked
// prompt and an empty candidate list are errors; a candidate with no
// parts yields an empty reply, which callers treat as a content
// problem rather than a transport one.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("gemini: prompt blocked: %s", fb.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini: no content candidates returned")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", nil
	}
	return cand.Content.Parts[0].Text, nil
}

// ResolveAPIKey picks the key from the explicit flag value or the named
// environment variable, in that order. Nothing else is consulted.
func ResolveAPIKey(flagValue, envVar string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("gemini: no API key: pass --api-key or set %s", envVar)
}
