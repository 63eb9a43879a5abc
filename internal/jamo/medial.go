package jamo

import "fmt"

// Medial is a vowel, valued at its Hangul Jamo block codepoint
// (U+1161..U+1175). The zero value means "no medial".
type Medial rune

const (
	MedialA Medial = 0x1161 + iota
	MedialAe
	MedialYa
	MedialYae
	MedialEo
	MedialE
	MedialYeo
	MedialYe
	MedialO
	MedialWa
	MedialWae
	MedialOe
	MedialYo
	MedialU
	MedialWo
	MedialWe
	MedialWi
	MedialYu
	MedialEu
	MedialUi
	MedialI
)

// MedialKind is the stroke shape of a vowel. A Wide and a Tall vowel can
// stack into a diphthong; a Full vowel is already compound.
type MedialKind int

const (
	Tall MedialKind = iota
	Wide
	Full
)

func (k MedialKind) String() string {
	switch k {
	case Tall:
		return "Tall"
	case Wide:
		return "Wide"
	case Full:
		return "Full"
	}
	return fmt.Sprintf("MedialKind(%d)", int(k))
}

// medialJamo is indexed by Medial.ID.
var medialJamo = [...]Jamo{
	A, Ae, Ya, Yae, Eo, E, Yeo, Ye, O, Wa, Wae, Oe, Yo, U, Wo, We, Wi, Yu, Eu, Ui, I,
}

var medialKinds = map[Medial]MedialKind{
	MedialA:   Tall,
	MedialAe:  Tall,
	MedialYa:  Tall,
	MedialYae: Tall,
	MedialEo:  Tall,
	MedialE:   Tall,
	MedialYeo: Tall,
	MedialYe:  Tall,
	MedialO:   Wide,
	MedialWa:  Full,
	MedialWae: Full,
	MedialOe:  Full,
	MedialYo:  Wide,
	MedialU:   Wide,
	MedialWo:  Full,
	MedialWe:  Full,
	MedialWi:  Full,
	MedialYu:  Wide,
	MedialEu:  Wide,
	MedialUi:  Full,
	MedialI:   Tall,
}

// diphthongs is keyed Wide first, Tall second.
var diphthongs = map[[2]Medial]Medial{
	{MedialO, MedialA}:  MedialWa,
	{MedialO, MedialAe}: MedialWae,
	{MedialO, MedialI}:  MedialOe,
	{MedialU, MedialEo}: MedialWo,
	{MedialU, MedialE}:  MedialWe,
	{MedialU, MedialI}:  MedialWi,
	{MedialEu, MedialI}: MedialUi,
}

var diphthongParts = invert(diphthongs)

var combinable = map[Medial][]Medial{
	MedialA:  {MedialO},
	MedialAe: {MedialO},
	MedialEo: {MedialU},
	MedialE:  {MedialU},
	MedialO:  {MedialA, MedialAe, MedialI},
	MedialU:  {MedialEo, MedialE, MedialI},
	MedialEu: {MedialI},
	MedialI:  {MedialO, MedialU, MedialEu},
}

var medialOf = make(map[Jamo]Medial, len(medialJamo))

func init() {
	for id, j := range medialJamo {
		medialOf[j] = MedialA + Medial(id)
	}
}

// ID is the zero-based offset used in the syllable codepoint formula.
func (m Medial) ID() int {
	return int(m - MedialA)
}

func (m Medial) valid() bool {
	return m >= MedialA && m <= MedialI
}

// Jamo widens m to a generic letter.
func (m Medial) Jamo() Jamo {
	if !m.valid() {
		return 0
	}
	return medialJamo[m.ID()]
}

func (m Medial) String() string {
	return m.Jamo().String()
}

func (m Medial) GoString() string {
	return fmt.Sprintf("%s(%#x)", m.Jamo().Name(), rune(m))
}

func (m Medial) Kind() MedialKind {
	return medialKinds[m]
}

// Combine stacks two vowels into a diphthong. Operand order does not
// matter: a Tall-then-Wide pair is swapped before the lookup.
func (m Medial) Combine(other Medial) (Medial, error) {
	switch {
	case m.Kind() == Tall && other.Kind() == Wide:
		return other.Combine(m)
	case m.Kind() != Wide || other.Kind() != Tall:
		return 0, &CombineError{First: m.Jamo(), Second: other.Jamo()}
	}
	if d, ok := diphthongs[[2]Medial{m, other}]; ok {
		return d, nil
	}
	return 0, &CombineError{First: m.Jamo(), Second: other.Jamo()}
}

// CombinePossible lists the vowels m can still absorb.
func (m Medial) CombinePossible() []Medial {
	return append([]Medial(nil), combinable[m]...)
}

// Components splits a diphthong into the Wide and Tall vowels it was built
// from. Simple vowels return themselves and false.
func (m Medial) Components() (Medial, Medial, bool) {
	if parts, ok := diphthongParts[m]; ok {
		return parts[0], parts[1], true
	}
	return m, 0, false
}

// Medial narrows j to a vowel.
func (j Jamo) Medial() (Medial, error) {
	if m, ok := medialOf[j]; ok {
		return m, nil
	}
	return 0, unexpected(j, "medial")
}

// AllMedials lists every Medial in codepoint order.
func AllMedials() []Medial {
	all := make([]Medial, 0, len(medialJamo))
	for m := MedialA; m <= MedialI; m++ {
		all = append(all, m)
	}
	return all
}

func invert[T comparable](table map[[2]T]T) map[T][2]T {
	out := make(map[T][2]T, len(table))
	for pair, v := range table {
		out[v] = pair
	}
	return out
}
