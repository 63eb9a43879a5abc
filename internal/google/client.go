package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/hangulpad/internal/llm"
	"google.golang.org/genai"
)

type Model string

const (
	ModelGemma3_27B     Model = "gemma-3-27b-it"
	ModelGemini2_5Flash Model = "gemini-2.5-flash"
	ModelGemini2_5Pro   Model = "gemini-2.5-pro"
)

var DefaultModel Model = ModelGemini2_5Flash

type Client struct {
	client *genai.Client
	model  Model
}

var _ llm.Client = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	contents, config := buildRequest(c.model, system, prompt)
	result, err := c.client.Models.GenerateContent(ctx, string(c.model), contents, config)
	if err != nil {
		return "", fmt.Errorf("google API call failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from google")
	}

	return llm.StripMarkdownCodeBlocks(result.Text()), nil
}

// buildRequest places the system prompt. Gemma has no system instructions,
// so for it the prompt is prepended to the user message.
func buildRequest(model Model, system, prompt string) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(float32(llm.Temperature))}
	if strings.HasPrefix(string(model), "gemma") {
		return textContent(system + "\n\n" + prompt), config
	}
	config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	return textContent(prompt), config
}

func textContent(text string) []*genai.Content {
	return []*genai.Content{{Parts: []*genai.Part{{Text: text}}}}
}
