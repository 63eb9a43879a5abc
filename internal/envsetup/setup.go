// envsetup provides a lightweight .env configuration wizard.
// It runs on first start when no .env file exists, collecting the log
// database location and optional LLM credentials for glosses.
package envsetup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

const (
	DefaultPath        = ".env"
	DefaultDatabaseURL = "hangul-log.db"
)

type step int

const (
	stepWelcome step = iota
	stepDatabase
	stepLLMProvider
	stepLLMKey
	stepConfirm
	stepDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the wizard state. The zero value is not usable; call New.
type Model struct {
	path        string
	step        step
	databaseURL string
	llmProvider string
	llmAPIKey   string
	input       string
	err         error
}

// New starts a wizard that writes to path.
func New(path string) Model {
	return Model{path: path, step: stepWelcome}
}

// Done reports whether the env file was written.
func (m Model) Done() bool {
	return m.step == stepDone
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleEnter()

		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
			return m, nil

		case tea.KeyRunes:
			m.input += string(msg.Runes)
			return m, nil

		case tea.KeySpace:
			m.input += " "
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.input)
	m.input = ""

	switch m.step {
	case stepWelcome:
		m.step = stepDatabase

	case stepDatabase:
		if value == "" {
			value = DefaultDatabaseURL
		}
		m.databaseURL = value
		m.step = stepLLMProvider

	case stepLLMProvider:
		switch strings.ToLower(value) {
		case "", "1", "none":
			m.llmProvider = "none"
			m.step = stepConfirm
		case "2", "anthropic":
			m.llmProvider = "anthropic"
			m.step = stepLLMKey
		case "3", "google":
			m.llmProvider = "google"
			m.step = stepLLMKey
		default:
			m.err = errors.New("please enter 1, 2 or 3")
		}

	case stepLLMKey:
		if value == "" {
			m.err = errors.New("API key is required")
			return m, nil
		}
		m.llmAPIKey = value
		m.step = stepConfirm

	case stepConfirm:
		switch strings.ToLower(value) {
		case "", "y", "yes":
			if err := WriteEnvFile(m.path, m.env()); err != nil {
				m.err = err
				return m, nil
			}
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			return New(m.path), nil
		}
	}

	return m, nil
}

// env is the file content as variables, named after the CLI flags.
func (m Model) env() map[string]string {
	env := map[string]string{
		"HANGULPAD_DATABASE_URL": m.databaseURL,
		"HANGULPAD_LLM_PROVIDER": m.llmProvider,
	}
	switch m.llmProvider {
	case "anthropic":
		env["HANGULPAD_LLM_MODEL"] = "claude-haiku-4-5-20251001"
		env["HANGULPAD_ANTHROPIC_API_KEY"] = m.llmAPIKey
	case "google":
		env["HANGULPAD_LLM_MODEL"] = "gemini-2.5-flash"
		env["HANGULPAD_GOOGLE_API_KEY"] = m.llmAPIKey
	}
	return env
}

// WriteEnvFile writes env to path, readable only by the owner since it may
// hold API keys.
func WriteEnvFile(path string, env map[string]string) error {
	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding env file: %w", err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (m Model) View() string {
	var s strings.Builder

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("hangulpad - Setup"))
		s.WriteString("\n\n")
		s.WriteString("This wizard writes a " + m.path + " file with:\n\n")
		s.WriteString("  - where to keep your vocabulary log\n")
		s.WriteString("  - an optional LLM API key for gloss suggestions\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDatabase:
		s.WriteString(titleStyle.Render("Step 1: Vocabulary Log"))
		s.WriteString("\n\n")
		s.WriteString("Enter a SQLite file path or a postgres:// URL.\n\n")
		s.WriteString(labelStyle.Render("Database [" + DefaultDatabaseURL + "]:"))
		s.WriteString("\n")
		s.WriteString("> " + inputStyle.Render(m.input))

	case stepLLMProvider:
		s.WriteString(titleStyle.Render("Step 2: Gloss Suggestions"))
		s.WriteString("\n\n")
		s.WriteString("Which LLM provider should suggest English glosses?\n\n")
		s.WriteString("  1. None\n")
		s.WriteString("  2. Anthropic (Claude)\n")
		s.WriteString("  3. Google (Gemini)\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Enter 1, 2 or 3 [1]:"))
		s.WriteString("\n")
		s.WriteString("> " + inputStyle.Render(m.input))

	case stepLLMKey:
		s.WriteString(titleStyle.Render("Step 3: LLM API Key"))
		s.WriteString("\n\n")
		if m.llmProvider == "anthropic" {
			s.WriteString("To get your Anthropic API key:\n\n")
			s.WriteString("  1. Go to " + linkStyle.Render("https://console.anthropic.com") + "\n")
			s.WriteString("  2. Sign up or log in\n")
			s.WriteString("  3. Go to API Keys and create a new key\n")
		} else {
			s.WriteString("To get your Google AI API key:\n\n")
			s.WriteString("  1. Go to " + linkStyle.Render("https://aistudio.google.com/apikey") + "\n")
			s.WriteString("  2. Sign in with your Google account\n")
			s.WriteString("  3. Create an API key\n")
		}
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Paste your API key here:"))
		s.WriteString("\n")
		s.WriteString("> " + inputStyle.Render(maskToken(m.input)))

	case stepConfirm, stepDone:
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Database:     " + successStyle.Render(m.databaseURL) + "\n")
		s.WriteString("  LLM Provider: " + successStyle.Render(m.llmProvider) + "\n")
		if m.llmProvider != "none" {
			s.WriteString("  LLM API Key:  " + successStyle.Render(maskToken(m.llmAPIKey)) + "\n")
		}
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Save this configuration? [Y/n]:"))
		s.WriteString("\n")
		s.WriteString("> " + inputStyle.Render(m.input))
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the setup wizard and reports whether the file was written.
func Run(path string) (bool, error) {
	p := tea.NewProgram(New(path))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	return finalModel.(Model).Done(), nil
}

// NeedsSetup checks if the env file is missing.
func NeedsSetup(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}
