package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jusunglee/hangulpad/internal/llm"
)

type Model = anthropic.Model

const (
	ModelClaudeSonnet4_5 Model = anthropic.ModelClaudeSonnet4_5_20250929
	ModelClaudeHaiku4_5  Model = anthropic.ModelClaudeHaiku4_5_20251001
)

// Glosses are short; the small model is plenty.
var DefaultModel Model = ModelClaudeHaiku4_5

const maxTokens = 1024

type Client struct {
	client anthropic.Client
	model  Model
}

var _ llm.Client = (*Client)(nil)

// NewClient builds a gloss backend. opts go to the SDK after the key, so
// tests can point it at a local server.
func NewClient(apiKey string, model Model, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(llm.Temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	// Long gloss lists sometimes come back split over several text blocks.
	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in anthropic response (stop reason %q)", message.StopReason)
	}
	return llm.StripMarkdownCodeBlocks(sb.String()), nil
}
