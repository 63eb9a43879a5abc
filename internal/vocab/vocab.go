// Package vocab keeps the sorted vocabulary log and writes every change
// through to storage.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jusunglee/hangulpad/internal/db"
	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/samber/lo"
)

var (
	ErrEmptyWord        = errors.New("word is empty")
	ErrEmptyDescription = errors.New("description is empty")
)

// Store is the storage the log writes through to.
type Store interface {
	ListEntries(ctx context.Context) ([]db.Entry, error)
	UpsertEntry(ctx context.Context, arg db.UpsertEntryParams) (db.Entry, error)
	DeleteEntry(ctx context.Context, word string) (int64, error)
}

type Entry struct {
	Word        *hangul.Hangul
	Description string
}

// Log is the in-memory view of the vocabulary, ordered by word, with a
// cursor on the current entry. It is not safe for concurrent use.
type Log struct {
	store   Store
	log     *slog.Logger
	entries []Entry
	index   int
}

// Open loads every stored entry. Rows whose word is not valid Hangul are
// skipped.
func Open(ctx context.Context, store Store, log *slog.Logger) (*Log, error) {
	rows, err := store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	l := &Log{store: store, log: log}
	for _, row := range rows {
		word, err := hangul.Parse(row.Word)
		if err != nil {
			log.WarnContext(ctx, "skipping stored entry", "word", row.Word, "error", err)
			continue
		}
		l.entries = append(l.entries, Entry{Word: word, Description: row.Description})
	}
	slices.SortFunc(l.entries, compareEntries)
	l.entries = slices.CompactFunc(l.entries, func(a, b Entry) bool { return compareEntries(a, b) == 0 })

	log.DebugContext(ctx, "loaded vocabulary log", "entries", len(l.entries))
	return l, nil
}

func compareEntries(a, b Entry) int {
	return a.Word.Compare(b.Word)
}

func (l *Log) search(word *hangul.Hangul) (int, bool) {
	return slices.BinarySearchFunc(l.entries, word, func(e Entry, w *hangul.Hangul) int {
		return e.Word.Compare(w)
	})
}

// Insert stores description under word. If the word was already logged the
// previous entry is returned with ok set. The cursor keeps pointing at the
// same entry.
func (l *Log) Insert(ctx context.Context, word *hangul.Hangul, description string) (replaced Entry, ok bool, err error) {
	if word == nil || word.IsEmpty() {
		return Entry{}, false, ErrEmptyWord
	}
	if strings.TrimSpace(description) == "" {
		return Entry{}, false, ErrEmptyDescription
	}

	if _, err := l.store.UpsertEntry(ctx, db.UpsertEntryParams{
		Word:        word.String(),
		Description: description,
	}); err != nil {
		return Entry{}, false, fmt.Errorf("saving %s: %w", word, err)
	}

	l.log.DebugContext(ctx, "saved entry", "word", word.String())

	i, found := l.search(word)
	if found {
		replaced = l.entries[i]
		l.entries[i].Description = description
		return replaced, true, nil
	}

	hadCurrent := len(l.entries) > 0
	l.entries = slices.Insert(l.entries, i, Entry{Word: word.Clone(), Description: description})
	switch {
	case !hadCurrent:
		l.index = 0
	case i <= l.index:
		l.index++
	}
	return Entry{}, false, nil
}

// Remove deletes word. Entries before the cursor shift it back; removing the
// current entry moves the cursor to the one after it, or the last one.
func (l *Log) Remove(ctx context.Context, word *hangul.Hangul) error {
	if _, err := l.store.DeleteEntry(ctx, word.String()); err != nil {
		return fmt.Errorf("deleting %s: %w", word, err)
	}
	l.log.DebugContext(ctx, "deleted entry", "word", word.String())

	i, found := l.search(word)
	if !found {
		return nil
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	if i < l.index {
		l.index--
	}
	l.index = max(0, min(l.index, len(l.entries)-1))
	return nil
}

// IndexAt moves the cursor to word.
func (l *Log) IndexAt(word *hangul.Hangul) bool {
	i, found := l.search(word)
	if found {
		l.index = i
	}
	return found
}

func (l *Log) Current() (Entry, bool) {
	if l.index >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[l.index], true
}

func (l *Log) Up() {
	if l.index > 0 {
		l.index--
	}
}

func (l *Log) Down() {
	if l.index < len(l.entries)-1 {
		l.index++
	}
}

func (l *Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *Log) Len() int   { return len(l.entries) }
func (l *Log) Index() int { return l.index }

// Filter returns the entries whose word starts with prefix.
func (l *Log) Filter(prefix string) []Entry {
	return lo.Filter(l.entries, func(e Entry, _ int) bool {
		return strings.HasPrefix(e.Word.String(), prefix)
	})
}
