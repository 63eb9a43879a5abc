package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/hangulpad/internal/db/sqlite"
	"github.com/jusunglee/hangulpad/internal/jamo"
	"github.com/jusunglee/hangulpad/internal/translation"
	"github.com/jusunglee/hangulpad/internal/transliteration"
	"github.com/jusunglee/hangulpad/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f fakeLLM) Complete(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

func newModel(t *testing.T, tr *translation.Translator) Model {
	t.Helper()
	ctx := context.Background()
	repo, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l, err := vocab.Open(ctx, repo, logger)
	require.NoError(t, err)

	return New(ctx, Config{
		Parser:     transliteration.NewParser(transliteration.NewTable()),
		Log:        l,
		Translator: tr,
		Logger:     logger,
	})
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// typeText sends one key per rune, the way a terminal delivers typing.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, keys ...tea.KeyType) Model {
	for _, k := range keys {
		m, _ = send(m, tea.KeyMsg{Type: k})
	}
	return m
}

func TestTypingBuildsLiveSyllable(t *testing.T) {
	m := typeText(newModel(t, nil), "gag")
	assert.Equal(t, "각", m.live.String())
	assert.Empty(t, m.rest)
	assert.Equal(t, "각", m.Word().String())

	m = typeText(m, "a")
	assert.Equal(t, "각", m.live.String())
	assert.Equal(t, "a", m.rest)
}

func TestEnterCommitsAndKeepsOverflow(t *testing.T) {
	m := typeText(newModel(t, nil), "gaga")
	m = press(m, tea.KeyEnter)

	assert.Equal(t, "각", m.word.String())
	assert.Equal(t, "a", m.roman.Value())
	assert.Equal(t, "아", m.live.String())
	assert.Equal(t, "각아", m.Word().String())
}

func TestEnterOnEmptyInputDoesNothing(t *testing.T) {
	m := press(newModel(t, nil), tea.KeyEnter)
	assert.True(t, m.word.IsEmpty())
}

func TestBackspaceOnEmptyInputPopsWord(t *testing.T) {
	m := typeText(newModel(t, nil), "han")
	m = press(m, tea.KeyEnter)
	require.Equal(t, "한", m.word.String())
	require.Empty(t, m.roman.Value())

	m = press(m, tea.KeyBackspace)
	assert.Equal(t, "하", m.word.String())
	m = press(m, tea.KeyBackspace)
	assert.Equal(t, "ㅎ", m.word.String())
	m = press(m, tea.KeyBackspace)
	assert.True(t, m.word.IsEmpty())
}

func TestBackspaceEditsNonEmptyInput(t *testing.T) {
	m := typeText(newModel(t, nil), "gag")
	m = press(m, tea.KeyBackspace)
	assert.Equal(t, "ga", m.roman.Value())
	assert.Equal(t, "가", m.live.String())
	assert.True(t, m.word.IsEmpty())
}

func TestSaveNeedsWordAndDescription(t *testing.T) {
	m := press(newModel(t, nil), tea.KeyCtrlS)
	assert.Contains(t, m.popup, "Nothing to save")

	m = press(m, tea.KeyRunes)
	assert.Empty(t, m.popup)

	m = typeText(m, "han")
	m = press(m, tea.KeyCtrlS)
	assert.Contains(t, m.popup, "description")
	assert.Equal(t, 0, m.cfg.Log.Len())
}

func saveWord(t *testing.T, m Model, roman, desc string) Model {
	t.Helper()
	m = typeText(m, roman)
	m = press(m, tea.KeyTab)
	require.Equal(t, focusDesc, m.focus)
	m = typeText(m, desc)
	m = press(m, tea.KeyCtrlS)
	require.Empty(t, m.popup)
	require.False(t, m.statusErr, m.status)
	return m
}

func TestSaveWritesToLog(t *testing.T) {
	m := saveWord(t, newModel(t, nil), "han", "one")

	require.Equal(t, 1, m.cfg.Log.Len())
	e, ok := m.cfg.Log.Current()
	require.True(t, ok)
	assert.Equal(t, "한", e.Word.String())
	assert.Equal(t, "one", e.Description)

	assert.Equal(t, "saved 한", m.status)
	assert.True(t, m.Word().IsEmpty())
	assert.Empty(t, m.desc.Value())
	assert.Equal(t, focusRoman, m.focus)

	m = saveWord(t, m, "han", "single")
	assert.Equal(t, 1, m.cfg.Log.Len())
	assert.Contains(t, m.status, "updated 한")
}

func TestFindAndDelete(t *testing.T) {
	m := saveWord(t, newModel(t, nil), "han", "one")
	m = saveWord(t, m, "dur", "two")
	m = saveWord(t, m, "ses", "three")

	m = typeText(m, "han")
	m = press(m, tea.KeyCtrlF)
	assert.Equal(t, "found 한", m.status)
	assert.Equal(t, "one", m.desc.Value())
	e, _ := m.cfg.Log.Current()
	assert.Equal(t, "한", e.Word.String())

	m = press(m, tea.KeyCtrlD)
	assert.Equal(t, "deleted 한", m.status)
	assert.Equal(t, 2, m.cfg.Log.Len())
	assert.Empty(t, m.roman.Value())
	assert.Empty(t, m.desc.Value())
	assert.True(t, m.Word().IsEmpty())

	m = typeText(m, "nes")
	m = press(m, tea.KeyCtrlF)
	assert.Equal(t, "넷 is not in the log", m.status)
}

func TestDeleteKeepsUnrelatedWord(t *testing.T) {
	m := saveWord(t, newModel(t, nil), "ga", "go")
	m = saveWord(t, m, "na", "I")

	m = typeText(m, "da")
	m = press(m, tea.KeyCtrlD)
	assert.Equal(t, "deleted 나", m.status)
	assert.Equal(t, "da", m.roman.Value())
	assert.Equal(t, "다", m.Word().String())
}

func TestLogNavigation(t *testing.T) {
	m := saveWord(t, newModel(t, nil), "ga", "go")
	m = saveWord(t, m, "na", "I")

	e, _ := m.cfg.Log.Current()
	assert.Equal(t, "나", e.Word.String())

	m = press(m, tea.KeyUp)
	e, _ = m.cfg.Log.Current()
	assert.Equal(t, "가", e.Word.String())

	m = press(m, tea.KeyUp, tea.KeyDown, tea.KeyDown)
	e, _ = m.cfg.Log.Current()
	assert.Equal(t, "나", e.Word.String())
}

func TestDeleteOnEmptyLog(t *testing.T) {
	m := press(newModel(t, nil), tea.KeyCtrlD)
	assert.Equal(t, "the log is empty", m.status)
}

func TestGloss(t *testing.T) {
	tr := translation.NewTranslator(fakeLLM{reply: `[{"word": "눈", "gloss": "eye; snow", "note": ""}]`})
	m := typeText(newModel(t, tr), "nun")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	assert.True(t, m.glossing)

	msg := cmd()
	require.IsType(t, glossMsg{}, msg)
	m, _ = send(m, msg)
	assert.False(t, m.glossing)
	assert.Equal(t, "eye; snow", m.desc.Value())
	assert.Equal(t, "gloss for 눈 filled in", m.status)
}

func TestGlossError(t *testing.T) {
	tr := translation.NewTranslator(fakeLLM{err: errors.New("rate limited")})
	m := typeText(newModel(t, tr), "nun")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "rate limited")
	assert.Empty(t, m.desc.Value())
}

func TestGlossWithoutTranslator(t *testing.T) {
	m := typeText(newModel(t, nil), "nun")
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, cmd)
	assert.Equal(t, "glosses are not configured", m.status)
}

func TestHelpToggle(t *testing.T) {
	m := typeText(newModel(t, nil), "?")
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "toggle this help")
	assert.Empty(t, m.roman.Value())

	m = press(m, tea.KeyCtrlH)
	assert.False(t, m.showHelp)

	m = press(m, tea.KeyTab)
	m = typeText(m, "why?")
	assert.False(t, m.showHelp)
	assert.Equal(t, "why?", m.desc.Value())
}

func TestQuit(t *testing.T) {
	_, cmd := send(newModel(t, nil), tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsPreviewAndOverflow(t *testing.T) {
	m := typeText(newModel(t, nil), "ga")
	m = press(m, tea.KeyEnter)
	m = typeText(m, "nax")

	view := m.View()
	assert.Contains(t, view, "가나")
	assert.Contains(t, view, "x")
	assert.Contains(t, view, "Combinations")
	assert.Contains(t, view, "Log (0)")
}

func TestCombinations(t *testing.T) {
	p := transliteration.NewParser(transliteration.NewTable())

	s, _ := p.ParseSyllable("dar")
	assert.Contains(t, combinations(s), jamo.G)
	assert.Contains(t, combinations(s), jamo.H)

	s, _ = p.ParseSyllable("go")
	assert.ElementsMatch(t, []jamo.Jamo{jamo.A, jamo.Ae, jamo.I}, combinations(s))

	s, _ = p.ParseSyllable("g")
	assert.Empty(t, combinations(s))
}

func TestCombinationTableAlignsWideLetters(t *testing.T) {
	js := []jamo.Jamo{jamo.A, jamo.Ae, jamo.I}
	lines := strings.Split(combinationTable(js), "\n")
	require.Len(t, lines, 2)

	// Each spelling starts in the same display column as its letter.
	for _, j := range js {
		letterAt := strings.Index(lines[0], j.String())
		spellingAt := strings.Index(lines[1], transliteration.Romanization(j))
		require.GreaterOrEqual(t, letterAt, 0, j.String())
		require.GreaterOrEqual(t, spellingAt, 0, j.String())
		assert.Equal(t, lipgloss.Width(lines[0][:letterAt]), lipgloss.Width(lines[1][:spellingAt]), j.String())
	}

	assert.Contains(t, combinationTable(nil), "none")
}

func TestJamoIndexListsEveryLetter(t *testing.T) {
	index := renderJamoIndex()
	assert.Contains(t, index, "Consonants")
	assert.Contains(t, index, "Vowels")
	for _, j := range append(jamo.AllInitial(), jamo.AllMedial()...) {
		assert.Contains(t, index, j.String())
	}
}

func TestLogWindow(t *testing.T) {
	tests := []struct {
		cursor, n, rows int
		start, end      int
	}{
		{0, 5, 20, 0, 5},
		{0, 50, 20, 0, 20},
		{25, 50, 20, 15, 35},
		{49, 50, 20, 30, 50},
	}
	for _, tt := range tests {
		start, end := logWindow(tt.cursor, tt.n, tt.rows)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}
