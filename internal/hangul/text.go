package hangul

import (
	"fmt"

	"github.com/jusunglee/hangulpad/internal/jamo"
)

// Parse rebuilds a Hangul from its displayed form. Each precomposed block
// becomes one syllable and each bare compatibility consonant becomes an
// initial-only syllable.
func Parse(text string) (*Hangul, error) {
	h := &Hangul{}
	for i, r := range text {
		if s, ok := decompose(r); ok {
			h.syllables = append(h.syllables, s)
			continue
		}
		j, ok := jamo.Parse(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrNotHangul, r, i)
		}
		initial, err := j.Initial()
		if err != nil {
			return nil, fmt.Errorf("%w: %q at byte %d: %w", ErrNotHangul, r, i, err)
		}
		h.syllables = append(h.syllables, Syllable{initial: initial})
	}
	return h, nil
}

func (h *Hangul) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hangul) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = *parsed
	return nil
}
