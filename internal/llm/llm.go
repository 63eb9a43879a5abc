package llm

import (
	"context"
	"strings"
)

// Temperature is used for every completion. A flashcard gloss should come
// out the same when asked twice.
const Temperature = 0.2

// Client sends one system prompt and one user prompt and returns the text of
// the answer.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// StripMarkdownCodeBlocks removes ```...``` wrappers from LLM responses
func StripMarkdownCodeBlocks(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}

// ExtractJSONArray returns the outermost [...] span of text, dropping any
// chatter a model puts around it. Text without brackets is returned trimmed.
func ExtractJSONArray(text string) string {
	text = StripMarkdownCodeBlocks(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
