package hangul

import "errors"

var (
	// ErrExpectedInitialOrMedial means the letter cannot start a syllable
	// and the current syllable has no room for it either.
	ErrExpectedInitialOrMedial = errors.New("expected initial or medial")

	// ErrExpectedMedial means a syllable holding only an initial received
	// something other than a vowel.
	ErrExpectedMedial = errors.New("expected medial")

	// ErrNotHangul is returned when text being decoded contains a rune that
	// is neither a precomposed syllable nor a compatibility consonant.
	ErrNotHangul = errors.New("not hangul")
)
