package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no question. Arrow keys move the choice, y and n
// answer directly.
type ConfirmModel struct {
	question string
	choice   bool
	answered bool
}

// NewConfirmModel creates a question with def preselected
func NewConfirmModel(question string, def bool) ConfirmModel {
	return ConfirmModel{question: question, choice: def}
}

// Init initializes the model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "tab":
		m.choice = !m.choice
	case "y", "Y":
		m.choice = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc", "q", "ctrl+c":
		m.choice = false
		m.answered = true
		return m, tea.Quit
	case "enter":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

// Yes reports whether the question was answered with yes
func (m ConfirmModel) Yes() bool {
	return m.answered && m.choice
}

// View renders the question and both buttons
func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	button := lipgloss.NewStyle().Padding(0, 2)
	selected := button.
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain))
	idle := button.Foreground(lipgloss.Color(ColorSecondaryText))

	yes, no := idle.Render("Yes"), idle.Render("No")
	if m.choice {
		yes = selected.Render("Yes")
	} else {
		no = selected.Render("No")
	}

	var b strings.Builder
	b.WriteString(valueStyle.Render(m.question))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, yes, " ", no))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y/n • ←/→ to choose • enter to confirm"))
	b.WriteString("\n")
	return b.String()
}
