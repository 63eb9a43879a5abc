package jamo

import "fmt"

// Initial is a leading consonant, valued at its Hangul Jamo block codepoint
// (U+1100..U+1112). The zero value means "no initial".
type Initial rune

const (
	InitialG Initial = 0x1100 + iota
	InitialGg
	InitialN
	InitialD
	InitialDd
	InitialR
	InitialM
	InitialB
	InitialBb
	InitialS
	InitialSs
	InitialSilent
	InitialJ
	InitialJj
	InitialCh
	InitialK
	InitialT
	InitialP
	InitialH
)

// initialJamo is indexed by Initial.ID.
var initialJamo = [...]Jamo{
	G, Gg, N, D, Dd, R, M, B, Bb, S, Ss, Silent, J, Jj, Ch, K, T, P, H,
}

var initialOf = make(map[Jamo]Initial, len(initialJamo))

func init() {
	for id, j := range initialJamo {
		initialOf[j] = InitialG + Initial(id)
	}
}

// ID is the zero-based offset used in the syllable codepoint formula.
func (i Initial) ID() int {
	return int(i - InitialG)
}

func (i Initial) valid() bool {
	return i >= InitialG && i <= InitialH
}

// Jamo widens i to a generic letter. Always succeeds for a valid Initial.
func (i Initial) Jamo() Jamo {
	if !i.valid() {
		return 0
	}
	return initialJamo[i.ID()]
}

func (i Initial) String() string {
	return i.Jamo().String()
}

func (i Initial) GoString() string {
	return fmt.Sprintf("%s(%#x)", i.Jamo().Name(), rune(i))
}

// Initial narrows j to a leading consonant.
func (j Jamo) Initial() (Initial, error) {
	if i, ok := initialOf[j]; ok {
		return i, nil
	}
	return 0, unexpected(j, "initial")
}

// AllInitials lists every Initial in codepoint order.
func AllInitials() []Initial {
	all := make([]Initial, 0, len(initialJamo))
	for i := InitialG; i <= InitialH; i++ {
		all = append(all, i)
	}
	return all
}
