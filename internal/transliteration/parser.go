package transliteration

import (
	"fmt"
	"strings"

	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/jusunglee/hangulpad/internal/jamo"
	"github.com/jusunglee/hangulpad/internal/trie"
)

// Token is one step of tokenizing romanized input.
type Token struct {
	Jamo  jamo.Jamo
	Found bool
	// Break is set when spaces or hyphens preceded the letter.
	Break bool
	// Rest is the input left after the token.
	Rest string
}

type Parser struct {
	table *Table
}

func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

func isBreak(r rune) bool {
	return r == ' ' || r == '-'
}

// ParseJamo reads one letter off the front of input. Leading break
// characters are consumed and reported. The longest spelling of up to three
// characters wins. When nothing matches, Found is false and Rest is the
// input after any breaks.
func (p *Parser) ParseJamo(input string) Token {
	rest := strings.TrimLeftFunc(input, isBreak)
	tok := Token{Break: len(rest) != len(input), Rest: rest}

	runes := []rune(rest)
	for n := min(maxToken, len(runes)); n > 0; n-- {
		candidate := string(runes[:n])
		if j, ok := p.table.Lookup(candidate); ok {
			tok.Jamo = j
			tok.Found = true
			tok.Rest = rest[len(candidate):]
			return tok
		}
	}
	return tok
}

// ParseToken feeds a single letter from input into h and returns what is
// left. A letter after a break always starts a new syllable.
func (p *Parser) ParseToken(h *hangul.Hangul, input string) (string, error) {
	tok := p.ParseJamo(input)
	if !tok.Found {
		return tok.Rest, nil
	}
	var err error
	if tok.Break {
		err = h.BreakWith(tok.Jamo)
	} else {
		err = h.PushBack(tok.Jamo)
	}
	if err != nil {
		return input, fmt.Errorf("pushing %s from %q: %w", tok.Jamo, input, err)
	}
	return tok.Rest, nil
}

// Parse feeds input into h until no more progress is made. The returned
// string is the part of input that could not be read.
func (p *Parser) Parse(h *hangul.Hangul, input string) (string, error) {
	cur := input
	for {
		next, err := p.ParseToken(h, cur)
		if err != nil {
			return next, err
		}
		if len(next) == len(cur) {
			return next, nil
		}
		cur = next
	}
}

// ParseSyllable reads letters into a single syllable and stops before the
// first letter that would spill into a new one. Breaks are not treated as
// boundaries here.
func (p *Parser) ParseSyllable(input string) (hangul.Syllable, string) {
	var s hangul.Syllable
	cur := input
	for cur != "" {
		tok := p.ParseJamo(cur)
		if !tok.Found {
			return s, tok.Rest
		}
		probe := s
		if _, overflow, err := probe.Push(tok.Jamo); err != nil || overflow {
			return s, cur
		}
		s = probe
		cur = tok.Rest
	}
	return s, cur
}

// WithPrefix lists every letter reachable by continuing token.
func (p *Parser) WithPrefix(token string) []trie.Match[jamo.Jamo] {
	return p.table.WithPrefix(token)
}
