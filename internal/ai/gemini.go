package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrUnavailable is returned whenever the enrichment call cannot
// produce text: network, auth, quota or an empty model response.
// Callers must treat it as non-fatal and substitute their fallback.
var ErrUnavailable = errors.New("enrichment unavailable")

const (
	// callTimeout bounds a single generation call so a stuck request
	// cannot stall a regeneration run.
	callTimeout = 20 * time.Second

	// Interval between calls. Keeps a full regeneration run well under
	// free-tier quotas.
	minCallInterval = 2 * time.Second
)

// Client wraps the Gemini API for short text generation.
// A nil *Client is valid and reports ErrUnavailable on every call,
// which is how the absent-credential mode is modelled.
type Client struct {
	client      *genai.Client
	model       string
	rateLimiter *rate.Limiter
}

// NewClient creates a Gemini client, or returns (nil, nil) when no API
// key is provided so the caller runs in fallback-only mode.
func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:      client,
		model:       modelID,
		rateLimiter: rate.NewLimiter(rate.Every(minCallInterval), 1),
	}, nil
}

// Generate produces text for prompt, capped to roughly maxOutputLen
// characters. A single attempt only; any failure maps to ErrUnavailable.
func (c *Client) Generate(ctx context.Context, prompt string, maxOutputLen int) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrUnavailable
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	// Rough character-to-token budget; the hard cap is applied by the
	// caller on the returned string.
	maxTokens := int32(maxOutputLen/3 + 16)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.9),
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return text, nil
}
