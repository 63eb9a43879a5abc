package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jusunglee/hangulpad/internal/llm"
)

// Translator asks a model for glosses. Answers are cached per word for the
// life of the Translator and model calls are rate limited.
type Translator struct {
	llm     llm.Client
	limiter *RateLimiter

	mu    sync.Mutex
	cache map[string]Gloss
}

// Gloss is a suggested English meaning for one logged word.
type Gloss struct {
	Word  string `json:"word"`
	Gloss string `json:"gloss"`
	Note  string `json:"note,omitempty"`
}

func NewTranslator(client llm.Client) *Translator {
	return &Translator{
		llm:     client,
		limiter: NewRateLimiter(),
		cache:   make(map[string]Gloss),
	}
}

const systemPrompt = `You are helping a learner build a Korean vocabulary list.

For each Korean word, provide:
1. A short English gloss suitable for a flashcard
2. A brief note on usage, register, or a common homonym, or "" if nothing stands out

Respond ONLY with a JSON array in the same order as the input, no other text. Example:
[
  {"word": "눈", "gloss": "eye; snow", "note": "Homonym; long vowel for snow in careful speech"},
  {"word": "사람", "gloss": "person", "note": ""}
]`

// Gloss returns meanings for words: cached ones first, then whatever the
// model answered for the rest, in its order. Words the model leaves out
// are simply missing from the result.
func (t *Translator) Gloss(ctx context.Context, words []string) ([]Gloss, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var glosses []Gloss
	var missing []string
	t.mu.Lock()
	for _, w := range words {
		if g, ok := t.cache[w]; ok {
			glosses = append(glosses, g)
		} else {
			missing = append(missing, w)
		}
	}
	t.mu.Unlock()

	if len(missing) == 0 {
		return glosses, nil
	}
	if !t.limiter.Allow() {
		return nil, ErrRateLimited
	}

	fetched, err := t.request(ctx, missing)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	for _, g := range fetched {
		t.cache[g.Word] = g
	}
	t.mu.Unlock()

	return append(glosses, fetched...), nil
}

func (t *Translator) request(ctx context.Context, words []string) ([]Gloss, error) {
	var sb strings.Builder
	sb.WriteString("Gloss these words:\n")
	for _, w := range words {
		sb.WriteString("- ")
		sb.WriteString(w)
		sb.WriteString("\n")
	}

	text, err := t.llm.Complete(ctx, systemPrompt, sb.String())
	if err != nil {
		return nil, fmt.Errorf("requesting glosses: %w", err)
	}

	var glosses []Gloss
	if err := json.Unmarshal([]byte(llm.ExtractJSONArray(text)), &glosses); err != nil {
		return nil, fmt.Errorf("failed to parse gloss response: %w (response: %s)", err, text)
	}
	return glosses, nil
}

// Describe renders a gloss as a log description.
func (g Gloss) Describe() string {
	if g.Note == "" {
		return g.Gloss
	}
	return fmt.Sprintf("%s (%s)", g.Gloss, g.Note)
}
