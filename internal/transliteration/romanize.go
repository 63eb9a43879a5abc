package transliteration

import (
	"strings"

	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/jusunglee/hangulpad/internal/jamo"
)

var defaultTable = NewTable()

// Romanization is the table spelling of j.
func Romanization(j jamo.Jamo) string {
	return defaultTable.Romanization(j)
}

// Romanize spells h so that parsing the result rebuilds the same syllables.
// Syllables are joined with "-" and a silent initial before a vowel is
// left out.
func Romanize(h *hangul.Hangul) string {
	parts := make([]string, 0, h.Len())
	for _, s := range h.Syllables() {
		if s.IsEmpty() {
			continue
		}
		parts = append(parts, romanizeSyllable(s))
	}
	return strings.Join(parts, "-")
}

func romanizeSyllable(s hangul.Syllable) string {
	var b strings.Builder
	i, _ := s.Initial()
	m, hasMedial := s.Medial()
	if i != jamo.InitialSilent || !hasMedial {
		b.WriteString(Romanization(i.Jamo()))
	}
	if hasMedial {
		b.WriteString(Romanization(m.Jamo()))
	}
	if f, ok := s.Final(); ok {
		b.WriteString(Romanization(f.Jamo()))
	}
	return b.String()
}
