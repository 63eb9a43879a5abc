// Package tui is the interactive composer: type romanized letters, watch
// them form Hangul, and keep the words in the vocabulary log.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/jusunglee/hangulpad/internal/translation"
	"github.com/jusunglee/hangulpad/internal/transliteration"
	"github.com/jusunglee/hangulpad/internal/vocab"
)

type Config struct {
	Parser *transliteration.Parser
	Log    *vocab.Log
	// Translator is optional; without it glosses are disabled.
	Translator *translation.Translator
	Logger     *slog.Logger
}

type focus int

const (
	focusRoman focus = iota
	focusDesc
	focusLog
)

// glossMsg carries the result of a gloss request back into Update.
type glossMsg struct {
	word    string
	glosses []translation.Gloss
	err     error
}

type Model struct {
	ctx context.Context
	cfg Config

	roman textinput.Model
	desc  textinput.Model
	focus focus

	// word holds committed syllables, live the one still being typed and
	// rest the part of the romanization that did not fit into live.
	word *hangul.Hangul
	live hangul.Syllable
	rest string

	status    string
	statusErr bool
	popup     string
	showHelp  bool
	glossing  bool
	width     int
	height    int
}

func New(ctx context.Context, cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	roman := textinput.New()
	roman.Prompt = ""
	roman.Placeholder = "romanization"
	roman.CharLimit = 64
	roman.Focus()

	desc := textinput.New()
	desc.Prompt = ""
	desc.Placeholder = "description"
	desc.CharLimit = 256

	return Model{
		ctx:   ctx,
		cfg:   cfg,
		roman: roman,
		desc:  desc,
		word:  &hangul.Hangul{},
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Word is the committed word plus the syllable being typed.
func (m Model) Word() *hangul.Hangul {
	w := m.word.Clone()
	w.Append(m.live)
	return w
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case glossMsg:
		return m.handleGloss(msg), nil

	case tea.KeyMsg:
		if m.popup != "" {
			m.popup = ""
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+h":
		m.showHelp = !m.showHelp
		return m, nil
	case "?":
		if m.focus != focusDesc {
			m.showHelp = !m.showHelp
			return m, nil
		}
	case "tab":
		return m.focusOn((m.focus + 1) % 3), nil
	case "up":
		m.cfg.Log.Up()
		return m, nil
	case "down":
		m.cfg.Log.Down()
		return m, nil
	case "ctrl+s":
		return m.save(), nil
	case "ctrl+f":
		return m.find(), nil
	case "ctrl+d":
		return m.deleteCurrent(), nil
	case "ctrl+g":
		return m.requestGloss()
	case "enter":
		if m.focus == focusRoman {
			return m.commit(), nil
		}
		if m.focus == focusDesc {
			return m.save(), nil
		}
		return m, nil
	case "backspace":
		if m.focus == focusRoman && m.roman.Value() == "" {
			m.word.PopBack()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusRoman:
		before := m.roman.Value()
		m.roman, cmd = m.roman.Update(msg)
		if m.roman.Value() != before {
			m.reparse()
		}
	case focusDesc:
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

// reparse rebuilds the live syllable from the romanization box.
func (m *Model) reparse() {
	m.live, m.rest = m.cfg.Parser.ParseSyllable(m.roman.Value())
}

// commit moves the live syllable into the word and leaves whatever did not
// fit in the box.
func (m Model) commit() Model {
	if m.live.IsEmpty() {
		return m
	}
	m.word.Append(m.live)
	m.roman.SetValue(m.rest)
	m.roman.CursorEnd()
	m.reparse()
	return m
}

func (m Model) focusOn(f focus) Model {
	m.focus = f
	m.roman.Blur()
	m.desc.Blur()
	switch m.focus {
	case focusRoman:
		m.roman.Focus()
	case focusDesc:
		m.desc.Focus()
	}
	return m
}

func (m Model) setStatus(format string, args ...any) Model {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
	return m
}

func (m Model) setError(err error, msg string) Model {
	m.cfg.Logger.ErrorContext(m.ctx, msg, "error", err)
	m.status = fmt.Sprintf("%s: %v", msg, err)
	m.statusErr = true
	return m
}

func (m Model) save() Model {
	word := m.Word()
	replaced, ok, err := m.cfg.Log.Insert(m.ctx, word, m.desc.Value())
	switch {
	case errors.Is(err, vocab.ErrEmptyWord):
		m.popup = "Nothing to save yet.\nType a word in the romanization box first."
		return m
	case errors.Is(err, vocab.ErrEmptyDescription):
		m.popup = "Add a description before saving."
		return m
	case err != nil:
		return m.setError(err, "saving entry")
	}

	m.cfg.Log.IndexAt(word)
	if ok {
		m = m.setStatus("updated %s (was %q)", word, replaced.Description)
	} else {
		m = m.setStatus("saved %s", word)
	}
	m.cfg.Logger.InfoContext(m.ctx, "saved entry", "word", word.String(), "replaced", ok)

	return m.clearEditor().focusOn(focusRoman)
}

// clearEditor empties the word, both boxes and the syllable being typed.
func (m Model) clearEditor() Model {
	m.word.Clear()
	m.live = hangul.Syllable{}
	m.rest = ""
	m.roman.Reset()
	m.desc.Reset()
	return m
}

func (m Model) find() Model {
	word := m.Word()
	if word.IsEmpty() {
		m.popup = "Type a word to look for."
		return m
	}
	if !m.cfg.Log.IndexAt(word) {
		return m.setStatus("%s is not in the log", word)
	}
	if e, ok := m.cfg.Log.Current(); ok {
		m.desc.SetValue(e.Description)
	}
	return m.setStatus("found %s", word)
}

func (m Model) deleteCurrent() Model {
	e, ok := m.cfg.Log.Current()
	if !ok {
		return m.setStatus("the log is empty")
	}
	if err := m.cfg.Log.Remove(m.ctx, e.Word); err != nil {
		return m.setError(err, "deleting entry")
	}
	// A deleted word is not left half-edited in the composer.
	if m.Word().Compare(e.Word) == 0 {
		m = m.clearEditor()
	}
	return m.setStatus("deleted %s", e.Word)
}

func (m Model) requestGloss() (tea.Model, tea.Cmd) {
	if m.cfg.Translator == nil {
		return m.setStatus("glosses are not configured"), nil
	}
	word := m.Word()
	if word.IsEmpty() {
		m.popup = "Type a word to gloss."
		return m, nil
	}
	if m.glossing {
		return m, nil
	}

	m.glossing = true
	m = m.setStatus("asking for a gloss of %s...", word)

	ctx, tr, text := m.ctx, m.cfg.Translator, word.String()
	return m, func() tea.Msg {
		glosses, err := tr.Gloss(ctx, []string{text})
		return glossMsg{word: text, glosses: glosses, err: err}
	}
}

func (m Model) handleGloss(msg glossMsg) Model {
	m.glossing = false
	if msg.err != nil {
		return m.setError(msg.err, "glossing "+msg.word)
	}
	if len(msg.glosses) == 0 {
		return m.setStatus("no gloss for %s", msg.word)
	}
	m.desc.SetValue(msg.glosses[0].Describe())
	m.desc.CursorEnd()
	return m.setStatus("gloss for %s filled in", msg.word)
}
