// Package jamo classifies Hangul letters and holds the tables that decide
// which of them may merge into vowel diphthongs and consonant clusters.
package jamo

import (
	"fmt"
	"slices"
)

// Jamo is any single Hangul letter. Its value is the Unicode
// compatibility-jamo codepoint (U+3131..U+3163), so it prints as itself.
type Jamo rune

const (
	G Jamo = 0x3131 + iota // ㄱ
	Gg
	Gs
	N
	Nc
	Nch
	D
	Dd
	R
	Lg
	Lm
	Lb
	Ls
	Lt
	Lph
	Lh
	M
	B
	Bb
	Bs
	S
	Ss
	Silent
	J
	Jj
	Ch
	K
	T
	P
	H
	A // ㅏ
	Ae
	Ya
	Yae
	Eo
	E
	Yeo
	Ye
	O
	Wa
	Wae
	Oe
	Yo
	U
	Wo
	We
	Wi
	Yu
	Eu
	Ui
	I
)

const (
	firstJamo = G
	lastJamo  = I
)

var jamoNames = [...]string{
	"G", "Gg", "Gs", "N", "Nc", "Nch", "D", "Dd", "R", "Lg", "Lm", "Lb", "Ls", "Lt", "Lph", "Lh",
	"M", "B", "Bb", "Bs", "S", "Ss", "Silent", "J", "Jj", "Ch", "K", "T", "P", "H",
	"A", "Ae", "Ya", "Yae", "Eo", "E", "Yeo", "Ye", "O", "Wa", "Wae", "Oe", "Yo",
	"U", "Wo", "We", "Wi", "Yu", "Eu", "Ui", "I",
}

// Valid reports whether j is one of the 51 known letters.
func (j Jamo) Valid() bool {
	return j >= firstJamo && j <= lastJamo
}

// ID is the zero-based offset of j inside the compatibility block.
func (j Jamo) ID() int {
	return int(j - firstJamo)
}

func (j Jamo) String() string {
	if !j.Valid() {
		return fmt.Sprintf("Jamo(%#x)", rune(j))
	}
	return string(rune(j))
}

// Name is the Latin identifier of j, e.g. "Gg" for ㄲ.
func (j Jamo) Name() string {
	if !j.Valid() {
		return fmt.Sprintf("Jamo(%#x)", rune(j))
	}
	return jamoNames[j.ID()]
}

// GoString renders j as "Name(0xcodepoint)".
func (j Jamo) GoString() string {
	return fmt.Sprintf("%s(%#x)", j.Name(), rune(j))
}

// IsInitial reports whether j can open a syllable.
func (j Jamo) IsInitial() bool {
	_, ok := initialOf[j]
	return ok
}

// IsMedial reports whether j is a vowel.
func (j Jamo) IsMedial() bool {
	_, ok := medialOf[j]
	return ok
}

// IsFinal reports whether j can close a syllable.
func (j Jamo) IsFinal() bool {
	_, ok := finalOf[j]
	return ok
}

// All lists every letter in codepoint order.
func All() []Jamo {
	all := make([]Jamo, 0, lastJamo-firstJamo+1)
	for j := firstJamo; j <= lastJamo; j++ {
		all = append(all, j)
	}
	return all
}

// AllInitial lists every letter that narrows to an Initial.
func AllInitial() []Jamo {
	return slices.Clone(initialJamo[:])
}

// AllMedial lists every vowel.
func AllMedial() []Jamo {
	return slices.Clone(medialJamo[:])
}

// AllFinal lists every letter that narrows to a Final.
func AllFinal() []Jamo {
	return slices.Clone(finalJamo[:])
}

// Parse maps a compatibility-jamo rune back to a Jamo.
func Parse(r rune) (Jamo, bool) {
	j := Jamo(r)
	return j, j.Valid()
}
