package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/bikeshare/internal/engine"
	"github.com/balkashynov/bikeshare/internal/parser"
)

var testCities = []parser.Choice{
	{Name: "chicago", Aliases: []string{"chg"}},
	{Name: "new york city", Aliases: []string{"nyc"}},
	{Name: "washington", Aliases: []string{"wa"}},
}

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFilterWizard(t *testing.T) {
	var m tea.Model = NewFilterModel(testCities, FilterPrefill{})

	m = typeText(t, m, "nyc")
	m, _ = press(m, tea.KeyEnter)
	if got := m.(FilterModel).currentStep; got != StepMonth {
		t.Fatalf("after city step = %d, want month", got)
	}

	// ambiguous prefix keeps the wizard on the month step
	m = typeText(t, m, "ju")
	m, _ = press(m, tea.KeyEnter)
	fm := m.(FilterModel)
	if fm.currentStep != StepMonth || !strings.Contains(fm.validationErr, "ambiguous") {
		t.Fatalf("step = %d, err = %q; want month step with ambiguity error", fm.currentStep, fm.validationErr)
	}
	if !strings.Contains(fm.View(), "ambiguous") {
		t.Error("validation error should be shown")
	}

	m = typeText(t, m, "ne")
	m, _ = press(m, tea.KeyEnter)
	if fm := m.(FilterModel); fm.currentStep != StepDay || fm.validationErr != "" {
		t.Fatalf("step = %d, err = %q; want day step without error", fm.currentStep, fm.validationErr)
	}

	m = typeText(t, m, "fri")
	m, cmd := press(m, tea.KeyEnter)
	if !quits(cmd) {
		t.Error("completing the wizard should quit")
	}

	fm = m.(FilterModel)
	if !fm.Completed() || fm.Cancelled() {
		t.Fatal("wizard should be completed")
	}
	spec := fm.Spec()
	if spec.City != "new york city" {
		t.Errorf("city = %q", spec.City)
	}
	if month, ok := spec.Month.Value(); !ok || month != 6 {
		t.Errorf("month = %v", spec.Month)
	}
	if day, ok := spec.Day.Value(); !ok || day != engine.Friday {
		t.Errorf("day = %v", spec.Day)
	}
}

func TestFilterWizardDefaultsToAll(t *testing.T) {
	var m tea.Model = NewFilterModel(testCities, FilterPrefill{})
	m = typeText(t, m, "Chicago")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)

	fm := m.(FilterModel)
	if !fm.Completed() {
		t.Fatal("empty month and day should be accepted")
	}
	spec := fm.Spec()
	if _, ok := spec.Month.Value(); ok {
		t.Error("month should be unset")
	}
	if _, ok := spec.Day.Value(); ok {
		t.Error("day should be unset")
	}
}

func TestFilterWizardRejectsUnknownCity(t *testing.T) {
	var m tea.Model = NewFilterModel(testCities, FilterPrefill{})
	m, _ = press(m, tea.KeyEnter)
	if fm := m.(FilterModel); fm.currentStep != StepCity || fm.validationErr == "" {
		t.Error("empty city should be rejected")
	}

	m = typeText(t, m, "gotham")
	m, cmd := press(m, tea.KeyEnter)
	if fm := m.(FilterModel); fm.currentStep != StepCity || !strings.Contains(fm.validationErr, "invalid city") {
		t.Errorf("step = %d, err = %q", fm.currentStep, fm.validationErr)
	}
	if quits(cmd) {
		t.Error("invalid input should not quit")
	}
}

func TestFilterWizardPrefill(t *testing.T) {
	m := NewFilterModel(testCities, FilterPrefill{City: "wa", Month: "3", Day: "all"})
	if !m.Completed() {
		t.Fatal("valid prefill should complete the wizard")
	}
	if month, _ := m.Spec().Month.Value(); m.Spec().City != "washington" || month != 3 {
		t.Errorf("spec = %+v", m.Spec())
	}

	m = NewFilterModel(testCities, FilterPrefill{City: "chicago", Day: "someday"})
	if m.Completed() || m.currentStep != StepMonth {
		t.Errorf("prefill without month should stop at month, got step %d", m.currentStep)
	}

	m = NewFilterModel(testCities, FilterPrefill{City: "boston", Month: "june"})
	if m.currentStep != StepCity || m.validationErr == "" {
		t.Error("invalid prefilled city should be asked again with an error")
	}
}

func TestFilterWizardBackAndCancel(t *testing.T) {
	var m tea.Model = NewFilterModel(testCities, FilterPrefill{})
	m = typeText(t, m, "chg")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyShiftTab)
	if got := m.(FilterModel).currentStep; got != StepCity {
		t.Errorf("shift+tab should go back to city, got %d", got)
	}

	m, cmd := press(m, tea.KeyEsc)
	if !m.(FilterModel).Cancelled() || !quits(cmd) {
		t.Error("esc should cancel and quit")
	}
	if m.View() != "" {
		t.Error("cancelled wizard should render nothing")
	}
}

func pagerTable(n int) *engine.TripTable {
	t := &engine.TripTable{City: "chicago", Columns: engine.Columns{UserType: true}}
	base := time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		t.Records = append(t.Records, &engine.TripRecord{
			StartTime:    base.Add(time.Duration(i) * time.Minute),
			StartStation: "Canal St",
			EndStation:   "Clark St",
			UserType:     "Subscriber",
		})
	}
	return engine.Derive(t)
}

func TestPager(t *testing.T) {
	var m tea.Model = NewPagerModel(pagerTable(12), 5)
	if !strings.Contains(m.View(), "Rows 1-5 of 12") {
		t.Errorf("first block not shown:\n%s", m.View())
	}

	m = typeText(t, m, "y")
	if got := m.(PagerModel).Offset(); got != 5 {
		t.Fatalf("offset = %d, want 5", got)
	}

	m, _ = press(m, tea.KeyEnter)
	if got := m.(PagerModel).Offset(); got != 10 {
		t.Fatalf("offset = %d, want 10", got)
	}
	if !strings.Contains(m.View(), "Rows 11-12 of 12") {
		t.Errorf("last block not shown:\n%s", m.View())
	}

	m, _ = press(m, tea.KeyLeft)
	if got := m.(PagerModel).Offset(); got != 5 {
		t.Fatalf("back: offset = %d, want 5", got)
	}
	m, _ = press(m, tea.KeyRight)

	m, cmd := press(m, tea.KeyEnter)
	if !m.(PagerModel).Done() || !quits(cmd) {
		t.Error("paging past the end should stop")
	}
}

func TestPagerStop(t *testing.T) {
	var m tea.Model = NewPagerModel(pagerTable(12), 0)
	m = typeText(t, m, "n")
	if !m.(PagerModel).Done() {
		t.Error("n should stop the pager")
	}
	if m.(PagerModel).Offset() != 0 {
		t.Error("stopping should not advance")
	}

	if !NewPagerModel(pagerTable(0), 5).Done() {
		t.Error("empty table has nothing to page")
	}
}

func TestConfirm(t *testing.T) {
	var m tea.Model = NewConfirmModel("Would you like to restart?", false)
	m = typeText(t, m, "y")
	if !m.(ConfirmModel).Yes() {
		t.Error("y should answer yes")
	}

	m = NewConfirmModel("Would you like to restart?", true)
	m = typeText(t, m, "n")
	if m.(ConfirmModel).Yes() {
		t.Error("n should answer no")
	}

	m = NewConfirmModel("Would you like to restart?", false)
	m, _ = press(m, tea.KeyRight)
	m, cmd := press(m, tea.KeyEnter)
	if !m.(ConfirmModel).Yes() || !quits(cmd) {
		t.Error("toggled choice should be confirmed with enter")
	}

	m = NewConfirmModel("Would you like to restart?", true)
	if m.(ConfirmModel).Yes() {
		t.Error("unanswered question is not yes")
	}
}

func TestRenderSummary(t *testing.T) {
	d := int64(3661)
	table := engine.Derive(&engine.TripTable{
		City:    "washington",
		Columns: engine.Columns{UserType: true},
		Records: []*engine.TripRecord{
			{StartTime: time.Date(2017, time.June, 5, 17, 30, 0, 0, time.UTC), DurationSeconds: &d, StartStation: "A", EndStation: "B", UserType: "Subscriber"},
		},
	})

	out := RenderSummary(engine.Analyze(table, engine.FilterSpec{City: "washington"}))
	for _, want := range []string{
		"Washington",
		"June",
		"Monday",
		"5 P.M.",
		"A→B",
		"1 hours, 1 minutes, 1 seconds",
		"Subscriber",
		"No gender data is available for Washington.",
		"No birth year data is available for Washington.",
		"This took",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	empty := engine.Filter(table, engine.FilterSpec{Month: engine.OnlyMonth(1)})
	out = RenderSummary(engine.Analyze(empty, engine.FilterSpec{Month: engine.OnlyMonth(1)}))
	if strings.Count(out, "No trips to report on") != 4 {
		t.Errorf("every report should show the empty selection:\n%s", out)
	}
}

func TestRenderRecords(t *testing.T) {
	table := pagerTable(7)
	out := RenderRecords(table.Columns, engine.Page(table, 5, 5), 5, 0)

	for _, want := range []string{"User Type", "Canal St", "2017-03-01 09:05:00", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("records missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Gender") {
		t.Error("absent columns should not be shown")
	}
}
