package jamo

import "fmt"

// Final is a trailing consonant, valued at its Hangul Jamo block codepoint
// (U+11A8..U+11C2). The zero value means "no final".
type Final rune

const (
	FinalG Final = 0x11A8 + iota
	FinalGg
	FinalGs
	FinalN
	FinalNc
	FinalNch
	FinalD
	FinalR
	FinalLg
	FinalLm
	FinalLb
	FinalLs
	FinalLt
	FinalLph
	FinalLh
	FinalM
	FinalB
	FinalBs
	FinalS
	FinalSs
	FinalSilent
	FinalJ
	FinalCh
	FinalK
	FinalT
	FinalP
	FinalH
)

// finalJamo is indexed by Final.ID - 1.
var finalJamo = [...]Jamo{
	G, Gg, Gs, N, Nc, Nch, D, R, Lg, Lm, Lb, Ls, Lt, Lph, Lh,
	M, B, Bs, S, Ss, Silent, J, Ch, K, T, P, H,
}

// clusters is keyed base first, addendum second.
var clusters = map[[2]Final]Final{
	{FinalG, FinalS}: FinalGs,
	{FinalN, FinalJ}: FinalNc,
	{FinalN, FinalH}: FinalNch,
	{FinalR, FinalG}: FinalLg,
	{FinalR, FinalM}: FinalLm,
	{FinalR, FinalB}: FinalLb,
	{FinalR, FinalS}: FinalLs,
	{FinalR, FinalT}: FinalLt,
	{FinalR, FinalP}: FinalLph,
	{FinalR, FinalH}: FinalLh,
	{FinalB, FinalS}: FinalBs,
}

var clusterParts = invert(clusters)

var appendable = map[Final][]Final{
	FinalG: {FinalS},
	FinalN: {FinalJ, FinalH},
	FinalR: {FinalG, FinalM, FinalB, FinalS, FinalT, FinalP, FinalH},
	FinalB: {FinalS},
}

var finalOf = make(map[Jamo]Final, len(finalJamo))

func init() {
	for id, j := range finalJamo {
		finalOf[j] = FinalG + Final(id)
	}
}

// ID is one-based: 0 is reserved in the codepoint formula for a syllable
// without a final.
func (f Final) ID() int {
	return int(f-FinalG) + 1
}

func (f Final) valid() bool {
	return f >= FinalG && f <= FinalH
}

// Jamo widens f to a generic letter.
func (f Final) Jamo() Jamo {
	if !f.valid() {
		return 0
	}
	return finalJamo[f.ID()-1]
}

func (f Final) String() string {
	return f.Jamo().String()
}

func (f Final) GoString() string {
	return fmt.Sprintf("%s(%#x)", f.Jamo().Name(), rune(f))
}

// Append joins an addendum consonant onto f, forming a cluster such as ㄺ.
func (f Final) Append(other Final) (Final, error) {
	if c, ok := clusters[[2]Final{f, other}]; ok {
		return c, nil
	}
	return 0, &CombineError{First: f.Jamo(), Second: other.Jamo()}
}

// AppendPossible lists the consonants f can still absorb.
func (f Final) AppendPossible() []Final {
	return append([]Final(nil), appendable[f]...)
}

// Components splits a cluster into its base and addendum. Simple finals
// return themselves and false.
func (f Final) Components() (Final, Final, bool) {
	if parts, ok := clusterParts[f]; ok {
		return parts[0], parts[1], true
	}
	return f, 0, false
}

// Final narrows j to a trailing consonant.
func (j Jamo) Final() (Final, error) {
	if f, ok := finalOf[j]; ok {
		return f, nil
	}
	return 0, unexpected(j, "final")
}

// AllFinals lists every Final in codepoint order.
func AllFinals() []Final {
	all := make([]Final, 0, len(finalJamo))
	for f := FinalG; f <= FinalH; f++ {
		all = append(all, f)
	}
	return all
}
