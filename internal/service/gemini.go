package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"concierge/internal/config"

	"google.golang.org/genai"
)

// Generator is the interface to the text-generation backend
type Generator interface {
	// Generate sends the assembled prompt and returns the raw completion
	Generate(ctx context.Context, prompt string) (string, error)

	// IsEnabled returns whether the backend is configured and ready
	IsEnabled() bool
}

// GeminiClient calls the Gemini generateContent API. Single-shot: no
// conversation state is kept on the backend.
type GeminiClient struct {
	cfg    *config.GeminiConfig
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed generator. A missing API key does
// not fail construction; the client reports itself disabled and every request
// surfaces ErrConfigurationMissing, so the rest of the service stays up.
func NewGeminiClient(cfg *config.GeminiConfig) (*GeminiClient, error) {
	c := &GeminiClient{cfg: cfg}
	if !cfg.Enabled {
		return c, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	return c, nil
}

// IsEnabled returns whether the client is configured and ready
func (c *GeminiClient) IsEnabled() bool {
	return c.cfg.Enabled && c.client != nil
}

// Generate performs a single generateContent call, retrying once when the
// backend could not be reached at all.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.IsEnabled() {
		return "", ErrConfigurationMissing
	}

	text, err := c.generateOnce(ctx, prompt)
	if err != nil && errors.Is(err, ErrBackendUnavailable) && ctx.Err() == nil {
		log.Printf("Gemini call failed, retrying once: %v", err)
		text, err = c.generateOnce(ctx, prompt)
	}
	return text, err
}

func (c *GeminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: status %d", ErrBackendError, apiErr.Code)
		}
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", ErrBackendError)
	}
	return text, nil
}

// Ensure GeminiClient implements Generator
var _ Generator = (*GeminiClient)(nil)
