package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jusunglee/hangulpad/internal/hangul"
	"github.com/jusunglee/hangulpad/internal/jamo"
	"github.com/jusunglee/hangulpad/internal/transliteration"
	"github.com/samber/lo"
)

const (
	leftWidth = 40
	logRows   = 20
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(8)

	activeLabelStyle = labelStyle.
				Foreground(lipgloss.Color("86")).
				Bold(true)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Underline(true)

	overflowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Underline(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	popupStyle = boxStyle.
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

func (m Model) View() string {
	if m.popup != "" {
		box := popupStyle.Render(m.popup + "\n\n" + subtleStyle.Render("press any key"))
		if m.width == 0 {
			return box
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	if m.showHelp {
		return m.renderHelp()
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("hangulpad")+"  "+subtleStyle.Render("Quit: esc   Help: ^h"),
		"",
		m.renderEditor(),
		"",
		m.renderCombinations(),
		"",
		renderJamoIndex(),
	)
	right := m.renderLog()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth+2).Render(left),
		right,
	)
	return body + "\n" + m.renderStatus()
}

func (m Model) label(text string, f focus) string {
	if m.focus == f {
		return activeLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) renderEditor() string {
	preview := m.word.String() + liveStyle.Render(m.live.String())
	if m.rest != "" {
		preview += " " + overflowStyle.Render(m.rest)
	}

	return boxStyle.Width(leftWidth).Render(strings.Join([]string{
		labelStyle.Render("Hangul") + preview,
		m.label("RR", focusRoman) + m.roman.View(),
		m.label("Desc", focusDesc) + m.desc.View(),
	}, "\n"))
}

// combinations lists the letters the live syllable can still merge with its
// last letter: consonants for a final, vowels for a medial.
func combinations(s hangul.Syllable) []jamo.Jamo {
	if f, ok := s.Final(); ok {
		return lo.Map(f.AppendPossible(), func(f jamo.Final, _ int) jamo.Jamo { return f.Jamo() })
	}
	if md, ok := s.Medial(); ok {
		return lo.Map(md.CombinePossible(), func(md jamo.Medial, _ int) jamo.Jamo { return md.Jamo() })
	}
	return nil
}

// grid is a borderless table. Columns are one space apart and each cell
// gets one more space of right padding.
func grid() *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return subtleStyle.PaddingRight(1)
			}
			return lipgloss.NewStyle().PaddingRight(1)
		})
}

// combinationTable puts each letter above its spelling.
func combinationTable(js []jamo.Jamo) string {
	if len(js) == 0 {
		return subtleStyle.Render("none")
	}
	letters := lo.Map(js, func(j jamo.Jamo, _ int) string { return j.String() })
	spellings := lo.Map(js, func(j jamo.Jamo, _ int) string { return transliteration.Romanization(j) })
	return grid().Rows(letters, spellings).String()
}

func (m Model) renderCombinations() string {
	return boxStyle.Width(leftWidth).Render(
		subtleStyle.Render("Combinations") + "\n" + combinationTable(combinations(m.live)),
	)
}

func renderJamoIndex() string {
	consonants := jamo.AllInitial()
	vowels := jamo.AllMedial()

	t := grid().Headers("Consonants", "", "Vowels", "")
	for i := range max(len(consonants), len(vowels)) {
		row := make([]string, 4)
		if i < len(consonants) {
			row[0], row[1] = consonants[i].String(), transliteration.Romanization(consonants[i])
		}
		if i < len(vowels) {
			row[2], row[3] = vowels[i].String(), transliteration.Romanization(vowels[i])
		}
		t.Row(row...)
	}
	return boxStyle.Width(leftWidth).Render(t.String())
}

func (m Model) renderLog() string {
	entries := m.cfg.Log.Entries()
	lines := []string{subtleStyle.Render(fmt.Sprintf("Log (%d)", len(entries)))}
	if len(entries) == 0 {
		lines = append(lines, subtleStyle.Render("empty; save a word with ^s"))
	}

	start, end := logWindow(m.cfg.Log.Index(), len(entries), logRows)
	for i := start; i < end; i++ {
		e := entries[i]
		line := fmt.Sprintf("%s  %s", e.Word, e.Description)
		if i == m.cfg.Log.Index() {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	style := boxStyle.Width(leftWidth)
	if m.focus == focusLog {
		style = style.BorderForeground(lipgloss.Color("86"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// logWindow picks the slice of n entries to show so that the cursor stays
// visible.
func logWindow(cursor, n, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := max(0, cursor-rows/2)
	start = min(start, n-rows)
	return start, start + rows
}

func (m Model) renderStatus() string {
	switch {
	case m.status == "":
		return ""
	case m.statusErr:
		return errorStyle.Render(m.status)
	default:
		return statusStyle.Render(m.status)
	}
}

var helpKeys = [][]string{
	{"type", "romanized letters build the syllable being typed"},
	{"enter", "commit the syllable, keep the leftover letters"},
	{"backspace", "on an empty box, remove the last letter of the word"},
	{"tab", "switch between romanization, description and log"},
	{"ctrl+s", "save the word and description"},
	{"ctrl+f", "find the word in the log"},
	{"ctrl+g", "suggest a gloss for the word"},
	{"up/down", "move through the log"},
	{"ctrl+d", "delete the selected log entry"},
	{"ctrl+h, ?", "toggle this help"},
	{"esc, ctrl+c", "quit"},
}

func (m Model) renderHelp() string {
	t := grid().Rows(helpKeys...)
	return boxStyle.Render(titleStyle.Render("Keys") + "\n\n" + t.String())
}
