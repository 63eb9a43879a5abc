// Package transliteration turns romanized input into Hangul and back.
package transliteration

import (
	"github.com/jusunglee/hangulpad/internal/jamo"
	"github.com/jusunglee/hangulpad/internal/trie"
)

// romanizations is the fixed spelling of every letter. Finals and initials
// share a spelling; ㅇ is spelled "ng" and ㄹ "r".
var romanizations = []struct {
	text string
	jamo jamo.Jamo
}{
	{"g", jamo.G}, {"gg", jamo.Gg}, {"gs", jamo.Gs},
	{"n", jamo.N}, {"nc", jamo.Nc}, {"nch", jamo.Nch},
	{"d", jamo.D}, {"dd", jamo.Dd}, {"r", jamo.R},
	{"lg", jamo.Lg}, {"lm", jamo.Lm}, {"lb", jamo.Lb}, {"ls", jamo.Ls},
	{"lt", jamo.Lt}, {"lph", jamo.Lph}, {"lh", jamo.Lh},
	{"m", jamo.M}, {"b", jamo.B}, {"bb", jamo.Bb}, {"bs", jamo.Bs},
	{"s", jamo.S}, {"ss", jamo.Ss}, {"ng", jamo.Silent},
	{"j", jamo.J}, {"jj", jamo.Jj}, {"ch", jamo.Ch},
	{"k", jamo.K}, {"t", jamo.T}, {"p", jamo.P}, {"h", jamo.H},

	{"a", jamo.A}, {"ae", jamo.Ae}, {"ya", jamo.Ya}, {"yae", jamo.Yae},
	{"eo", jamo.Eo}, {"e", jamo.E}, {"yeo", jamo.Yeo}, {"ye", jamo.Ye},
	{"o", jamo.O}, {"wa", jamo.Wa}, {"wae", jamo.Wae}, {"oe", jamo.Oe},
	{"yo", jamo.Yo}, {"u", jamo.U}, {"wo", jamo.Wo}, {"we", jamo.We},
	{"wi", jamo.Wi}, {"yu", jamo.Yu}, {"eu", jamo.Eu}, {"ui", jamo.Ui},
	{"i", jamo.I},
}

// maxToken is the longest spelling in the table, in runes.
const maxToken = 3

// Table resolves spellings to letters. It is read-only once built and safe
// to share between goroutines.
type Table struct {
	tree    *trie.Trie[rune, jamo.Jamo]
	reverse map[jamo.Jamo]string
}

func NewTable() *Table {
	t := &Table{
		tree:    trie.New[rune, jamo.Jamo](),
		reverse: make(map[jamo.Jamo]string, len(romanizations)),
	}
	for _, r := range romanizations {
		trie.InsertString(t.tree, r.text, r.jamo)
		t.reverse[r.jamo] = r.text
	}
	return t
}

// Lookup resolves an exact spelling.
func (t *Table) Lookup(text string) (jamo.Jamo, bool) {
	return trie.GetString(t.tree, text)
}

// Romanization is the spelling of j, or "" for an invalid letter.
func (t *Table) Romanization(j jamo.Jamo) string {
	return t.reverse[j]
}

// WithPrefix lists every letter whose spelling starts with token.
func (t *Table) WithPrefix(token string) []trie.Match[jamo.Jamo] {
	return trie.WithPrefix(t.tree, token)
}
