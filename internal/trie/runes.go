package trie

// Match is a stored value with its key rendered back to a string.
type Match[V any] struct {
	Text  string
	Value V
}

func InsertString[V any](t *Trie[rune, V], s string, v V) {
	t.Insert([]rune(s), v)
}

func GetString[V any](t *Trie[rune, V], s string) (V, bool) {
	return t.Get([]rune(s))
}

// WithPrefix lists every stored string that starts with token, including
// token itself when it is stored.
func WithPrefix[V any](t *Trie[rune, V], token string) []Match[V] {
	sub, ok := t.Subtree([]rune(token))
	if !ok {
		return nil
	}
	paths := sub.AllPaths()
	out := make([]Match[V], 0, len(paths))
	for _, p := range paths {
		out = append(out, Match[V]{Text: string(p.Key), Value: p.Value})
	}
	return out
}
