package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/parser"
)

const greeting = "Hello! Let's explore some US bikeshare data!"

// Step represents the current step in the filter wizard
type Step int

const (
	StepCity Step = iota
	StepMonth
	StepDay
	StepDone
)

var stepLabels = []string{"City", "Month", "Day"}

// FilterPrefill carries filter values given on the command line. Empty
// fields are asked for.
type FilterPrefill struct {
	City  string
	Month string
	Day   string
}

// FilterModel is the city -> month -> day wizard. Invalid input keeps the
// wizard on the same step and shows why.
type FilterModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int

	cities []parser.Choice

	// Resolved values
	city  string
	month engine.MonthSelector
	day   engine.DaySelector

	// State
	completed     bool
	cancelled     bool
	validationErr string

	shimmer *ShimmerState
}

// shimmerTickMsg is sent when the greeting shimmer should move
type shimmerTickMsg time.Time

// NewFilterModel creates the wizard. Prefilled values that parse are
// accepted immediately and the wizard opens at the first missing step.
func NewFilterModel(cities []parser.Choice, prefill FilterPrefill) FilterModel {
	inputs := make([]textinput.Model, len(stepLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	cityNames := make([]string, len(cities))
	for i, c := range cities {
		cityNames[i] = c.Name
	}
	inputs[StepCity].Placeholder = strings.Join(cityNames, ", ")
	inputs[StepMonth].Placeholder = "all, january ... june, or 1-12 (Enter for all)"
	inputs[StepDay].Placeholder = "all, monday ... sunday (Enter for all)"

	m := FilterModel{
		currentStep: StepCity,
		inputs:      inputs,
		cities:      cities,
		shimmer:     NewShimmerState(DefaultShimmerConfig()),
	}

	values := []string{prefill.City, prefill.Month, prefill.Day}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}

	// Skip past every leading step that was given and parses
	for m.currentStep < StepDone && strings.TrimSpace(values[m.currentStep]) != "" {
		if err := m.apply(m.currentStep, values[m.currentStep]); err != nil {
			m.validationErr = err.Error()
			break
		}
		m.currentStep++
	}
	if m.currentStep == StepDone {
		m.completed = true
	} else {
		m.inputs[m.currentStep].Focus()
	}

	return m
}

// Init initializes the model
func (m FilterModel) Init() tea.Cmd {
	if m.completed {
		return tea.Quit
	}
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.Active() {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func (m FilterModel) tick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// Update handles messages
func (m FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.completed || m.cancelled {
			return m, nil
		}
		m.shimmer.Advance(len([]rune(greeting)), time.Time(msg))
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := min(max(msg.Width-10, 20), 60)
		for i := range m.inputs {
			m.inputs[i].Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepDone {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter validates the current step and moves on when it parses
func (m FilterModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.currentStep >= StepDone {
		return m, nil
	}

	if err := m.apply(m.currentStep, m.inputs[m.currentStep].Value()); err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.validationErr = ""

	m.inputs[m.currentStep].Blur()
	m.currentStep++
	if m.currentStep == StepDone {
		m.completed = true
		return m, tea.Quit
	}
	return m, m.inputs[m.currentStep].Focus()
}

// prevStep goes back one step, keeping what was typed
func (m FilterModel) prevStep() (tea.Model, tea.Cmd) {
	if m.currentStep == StepCity || m.currentStep >= StepDone {
		return m, nil
	}
	m.validationErr = ""
	m.inputs[m.currentStep].Blur()
	m.currentStep--
	return m, m.inputs[m.currentStep].Focus()
}

// apply parses input for step and stores the result
func (m *FilterModel) apply(step Step, input string) error {
	switch step {
	case StepCity:
		city, err := parser.ParseCity(input, m.cities)
		if err != nil {
			return err
		}
		m.city = city

	case StepMonth:
		if strings.TrimSpace(input) == "" {
			input = parser.AllKeyword
		}
		month, err := parser.ParseMonth(input)
		if err != nil {
			return err
		}
		m.month = month

	case StepDay:
		if strings.TrimSpace(input) == "" {
			input = parser.AllKeyword
		}
		day, err := parser.ParseDay(input)
		if err != nil {
			return err
		}
		m.day = day
	}
	return nil
}

// Spec returns the chosen filter. Only meaningful once Completed is true.
func (m FilterModel) Spec() engine.FilterSpec {
	return engine.FilterSpec{City: m.city, Month: m.month, Day: m.day}
}

// Completed reports whether every step has a valid value
func (m FilterModel) Completed() bool { return m.completed }

// Cancelled reports whether the user left the wizard
func (m FilterModel) Cancelled() bool { return m.cancelled }

// View renders the wizard
func (m FilterModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.shimmer.Render(greeting))
	b.WriteString("\n\n")

	for i, label := range stepLabels {
		step := Step(i)
		switch {
		case step == m.currentStep:
			b.WriteString(titleStyle.Render("▶ " + label))
		case step < m.currentStep:
			b.WriteString(successStyle.Render(fmt.Sprintf("✓ %s: %s", label, m.stepValue(step))))
		default:
			b.WriteString(mutedStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.prompt()))
	b.WriteString("\n")
	b.WriteString(m.inputs[m.currentStep].View())
	b.WriteString("\n")

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm • shift+tab: back • esc: quit"))

	return cardStyle.Render(b.String())
}

func (m FilterModel) prompt() string {
	switch m.currentStep {
	case StepCity:
		return "Which city would you like to explore?"
	case StepMonth:
		return "Which month? Type all for no month filter."
	default:
		return "Which day of the week? Type all for no day filter."
	}
}

func (m FilterModel) stepValue(step Step) string {
	switch step {
	case StepCity:
		return m.city
	case StepMonth:
		return m.month.String()
	default:
		return m.day.String()
	}
}
