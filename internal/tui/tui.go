package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/parser"
)

// RunFilterTUI asks for the city, month and day. ok is false when the user
// quit the wizard.
func RunFilterTUI(cities []parser.Choice, prefill FilterPrefill) (spec engine.FilterSpec, ok bool, err error) {
	model := NewFilterModel(cities, prefill)
	if model.Completed() {
		return model.Spec(), true, nil
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return engine.FilterSpec{}, false, err
	}

	m, _ := finalModel.(FilterModel)
	if m.Cancelled() || !m.Completed() {
		fmt.Println("Goodbye!")
		return engine.FilterSpec{}, false, nil
	}
	return m.Spec(), true, nil
}

// RunPagerTUI shows the table's raw records in blocks of pageSize
func RunPagerTUI(t *engine.TripTable, pageSize int) error {
	if t.Len() == 0 {
		fmt.Println(mutedStyle.Render("No raw data to show for this selection."))
		return nil
	}

	_, err := tea.NewProgram(NewPagerModel(t, pageSize)).Run()
	return err
}

// RunConfirmTUI asks a yes/no question
func RunConfirmTUI(question string, def bool) (bool, error) {
	finalModel, err := tea.NewProgram(NewConfirmModel(question, def)).Run()
	if err != nil {
		return false, err
	}
	m, _ := finalModel.(ConfirmModel)
	return m.Yes(), nil
}
