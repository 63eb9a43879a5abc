// Package hangul composes jamo into syllable blocks and strings of them.
package hangul

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/jusunglee/hangulpad/internal/jamo"
	"github.com/samber/lo"
)

const (
	syllableBase = 0xAC00
	syllableLast = 0xD7A3
	medialCount  = 21
	finalCount   = 28
)

// State is the position of a Syllable in its input grammar. It is derived
// from the syllable's contents and never stored.
type State int

const (
	// Start accepts an initial or a medial.
	Start State = iota
	// StateMedial holds an initial and needs a vowel.
	StateMedial
	// Open can end here, or take a combining vowel or a final.
	Open
	// OpenFinal can end here, or take a final / extend its final.
	OpenFinal
	// End accepts nothing more.
	End
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case StateMedial:
		return "Medial"
	case Open:
		return "Open"
	case OpenFinal:
		return "OpenFinal"
	case End:
		return "End"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Syllable is one Hangul block under construction. The zero value is empty.
// A medial is only present with an initial, and a final only with a medial.
type Syllable struct {
	initial jamo.Initial
	medial  jamo.Medial
	final   jamo.Final
}

// From starts a new syllable with j.
func From(j jamo.Jamo) (Syllable, error) {
	var s Syllable
	if _, _, err := s.Push(j); err != nil {
		return Syllable{}, err
	}
	return s, nil
}

func (s Syllable) Initial() (jamo.Initial, bool) { return s.initial, s.initial != 0 }
func (s Syllable) Medial() (jamo.Medial, bool)   { return s.medial, s.medial != 0 }
func (s Syllable) Final() (jamo.Final, bool)     { return s.final, s.final != 0 }

func (s Syllable) IsEmpty() bool {
	return s.initial == 0
}

func (s Syllable) State() State {
	switch {
	case s.initial == 0:
		return Start
	case s.medial == 0:
		return StateMedial
	case s.final == 0 && len(s.medial.CombinePossible()) > 0:
		return Open
	case s.final == 0:
		return OpenFinal
	case len(s.final.AppendPossible()) > 0:
		return OpenFinal
	default:
		return End
	}
}

// Push feeds j into the syllable. When j does not fit but could start the
// next syllable, s is left unchanged and the new syllable is returned as
// overflow with ok set. Errors are reserved for letters that cannot start a
// syllable at all.
func (s *Syllable) Push(j jamo.Jamo) (overflow Syllable, ok bool, err error) {
	switch s.State() {
	case Start:
		if i, err := j.Initial(); err == nil {
			s.initial = i
			return Syllable{}, false, nil
		}
		if m, err := j.Medial(); err == nil {
			s.initial = jamo.InitialSilent
			s.medial = m
			return Syllable{}, false, nil
		}
		return Syllable{}, false, fmt.Errorf("%w: got %s <%#v> in state %s", ErrExpectedInitialOrMedial, j, j, Start)

	case StateMedial:
		m, err := j.Medial()
		if err != nil {
			return Syllable{}, false, fmt.Errorf("%w: %w", ErrExpectedMedial, err)
		}
		s.medial = m
		return Syllable{}, false, nil

	case Open:
		if m, err := j.Medial(); err == nil {
			combined, err := s.medial.Combine(m)
			if err != nil {
				return spill(j)
			}
			s.medial = combined
			return Syllable{}, false, nil
		}
		if f, err := j.Final(); err == nil {
			s.final = f
			return Syllable{}, false, nil
		}
		return spill(j)

	case OpenFinal:
		if f, err := j.Final(); err == nil {
			if s.final == 0 {
				s.final = f
				return Syllable{}, false, nil
			}
			appended, err := s.final.Append(f)
			if err == nil {
				s.final = appended
				return Syllable{}, false, nil
			}
			if errors.Is(err, jamo.ErrIncompatibleCombine) && j.IsInitial() {
				return spill(j)
			}
			return Syllable{}, false, err
		}
		return spill(j)

	default:
		if j.IsInitial() || j.IsMedial() {
			return spill(j)
		}
		return Syllable{}, false, fmt.Errorf("%w: got %s <%#v> in state %s", ErrExpectedInitialOrMedial, j, j, End)
	}
}

// spill seeds the next syllable with j.
func spill(j jamo.Jamo) (Syllable, bool, error) {
	next, err := From(j)
	if err != nil {
		return Syllable{}, false, err
	}
	return next, true, nil
}

// Pop removes the most recently added unit. A cluster final or diphthong
// gives back its second part and keeps the first.
func (s *Syllable) Pop() (jamo.Jamo, bool) {
	switch {
	case s.final != 0:
		first, second, ok := s.final.Components()
		if ok {
			s.final = first
			return second.Jamo(), true
		}
		s.final = 0
		return first.Jamo(), true
	case s.medial != 0:
		first, second, ok := s.medial.Components()
		if ok {
			s.medial = first
			return second.Jamo(), true
		}
		s.medial = 0
		return first.Jamo(), true
	case s.initial != 0:
		i := s.initial
		s.initial = 0
		return i.Jamo(), true
	}
	return 0, false
}

// Possible lists every letter Push would absorb without overflow or error.
func (s Syllable) Possible() []jamo.Jamo {
	switch s.State() {
	case Start:
		return lo.Uniq(append(jamo.AllInitial(), jamo.AllMedial()...))
	case StateMedial:
		return jamo.AllMedial()
	case Open:
		vowels := lo.Map(s.medial.CombinePossible(), func(m jamo.Medial, _ int) jamo.Jamo { return m.Jamo() })
		return lo.Uniq(append(vowels, jamo.AllFinal()...))
	case OpenFinal:
		if s.final == 0 {
			return jamo.AllFinal()
		}
		return lo.Map(s.final.AppendPossible(), func(f jamo.Final, _ int) jamo.Jamo { return f.Jamo() })
	}
	return nil
}

// Rune is the character the syllable displays as: a precomposed block once
// a vowel is present, the bare initial's compatibility glyph before that.
func (s Syllable) Rune() (rune, bool) {
	switch {
	case s.initial == 0:
		return 0, false
	case s.medial == 0:
		return rune(s.initial.Jamo()), true
	}
	fin := 0
	if s.final != 0 {
		fin = s.final.ID()
	}
	return compose(s.initial.ID(), s.medial.ID(), fin), true
}

func (s Syllable) String() string {
	r, ok := s.Rune()
	if !ok {
		return ""
	}
	return string(r)
}

// Compare orders syllables by their displayed character; the empty syllable
// sorts first.
func (s Syllable) Compare(other Syllable) int {
	a, _ := s.Rune()
	b, _ := other.Rune()
	return cmp.Compare(a, b)
}

// compose builds a precomposed syllable. Every valid id triple lands inside
// U+AC00..U+D7A3; anything else is a programming error.
func compose(initial, medial, final int) rune {
	r := rune(syllableBase + (initial*medialCount+medial)*finalCount + final)
	if r < syllableBase || r > syllableLast {
		panic(fmt.Sprintf("hangul: ids (%d, %d, %d) out of range", initial, medial, final))
	}
	return r
}

// decompose is the inverse of compose for a precomposed syllable.
func decompose(r rune) (Syllable, bool) {
	if r < syllableBase || r > syllableLast {
		return Syllable{}, false
	}
	code := int(r - syllableBase)
	s := Syllable{
		initial: jamo.InitialG + jamo.Initial(code/(medialCount*finalCount)),
		medial:  jamo.MedialA + jamo.Medial((code/finalCount)%medialCount),
	}
	if fin := code % finalCount; fin > 0 {
		s.final = jamo.FinalG + jamo.Final(fin-1)
	}
	return s, true
}
