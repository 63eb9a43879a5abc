package hangul

import (
	"slices"
	"strings"

	"github.com/jusunglee/hangulpad/internal/jamo"
)

// Hangul is an ordered run of syllables. Only the last syllable is ever
// edited; earlier ones are closed.
type Hangul struct {
	syllables []Syllable
}

// FromJamo pushes every letter in order into a new Hangul.
func FromJamo(letters ...jamo.Jamo) (*Hangul, error) {
	h := &Hangul{}
	for _, j := range letters {
		if err := h.PushBack(j); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// PushBack feeds j into the last syllable, starting a new one on overflow.
func (h *Hangul) PushBack(j jamo.Jamo) error {
	created := false
	if len(h.syllables) == 0 {
		h.syllables = append(h.syllables, Syllable{})
		created = true
	}
	last := &h.syllables[len(h.syllables)-1]
	overflow, ok, err := last.Push(j)
	if err != nil {
		if created {
			h.syllables = h.syllables[:0]
		}
		return err
	}
	if ok {
		h.syllables = append(h.syllables, overflow)
	}
	return nil
}

// PopBack removes the most recently typed letter. Syllables left empty are
// dropped.
func (h *Hangul) PopBack() (jamo.Jamo, bool) {
	for len(h.syllables) > 0 {
		n := len(h.syllables) - 1
		if h.syllables[n].IsEmpty() {
			h.syllables = h.syllables[:n]
			continue
		}
		j, ok := h.syllables[n].Pop()
		if h.syllables[n].IsEmpty() {
			h.syllables = h.syllables[:n]
		}
		return j, ok
	}
	return 0, false
}

// BreakWith closes the current syllable and starts a new one with j, even if
// j would have fit. A trailing empty syllable is reused.
func (h *Hangul) BreakWith(j jamo.Jamo) error {
	s, err := From(j)
	if err != nil {
		return err
	}
	if n := len(h.syllables); n > 0 && h.syllables[n-1].IsEmpty() {
		h.syllables[n-1] = s
		return nil
	}
	h.syllables = append(h.syllables, s)
	return nil
}

// Append adds an already built syllable as a new block. Empty syllables are
// ignored.
func (h *Hangul) Append(s Syllable) {
	if s.IsEmpty() {
		return
	}
	h.syllables = append(h.syllables, s)
}

func (h *Hangul) Clear() {
	h.syllables = nil
}

func (h *Hangul) Len() int {
	return len(h.syllables)
}

func (h *Hangul) IsEmpty() bool {
	return !slices.ContainsFunc(h.syllables, func(s Syllable) bool { return !s.IsEmpty() })
}

// Syllables returns a copy of the blocks.
func (h *Hangul) Syllables() []Syllable {
	return slices.Clone(h.syllables)
}

// Last returns the syllable currently being edited.
func (h *Hangul) Last() (Syllable, bool) {
	if len(h.syllables) == 0 {
		return Syllable{}, false
	}
	return h.syllables[len(h.syllables)-1], true
}

// Clone returns an independent copy of h.
func (h *Hangul) Clone() *Hangul {
	return &Hangul{syllables: slices.Clone(h.syllables)}
}

func (h *Hangul) String() string {
	var b strings.Builder
	for _, s := range h.syllables {
		b.WriteString(s.String())
	}
	return b.String()
}

// Compare orders by displayed text.
func (h *Hangul) Compare(other *Hangul) int {
	return strings.Compare(h.String(), other.String())
}
