package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/bikeshare/internal/engine"
)

// PagerModel shows a table's raw records one block at a time, in table order.
// "yes" shows the next block, "no" stops.
type PagerModel struct {
	table    *engine.TripTable
	pageSize int
	offset   int
	width    int

	done bool
}

// NewPagerModel creates a pager positioned on the first block
func NewPagerModel(t *engine.TripTable, pageSize int) PagerModel {
	if pageSize <= 0 {
		pageSize = engine.RawPageSize
	}
	return PagerModel{
		table:    t,
		pageSize: pageSize,
		done:     t.Len() == 0,
	}
}

// Init initializes the model
func (m PagerModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return nil
}

// Update handles messages
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "n", "esc":
			m.done = true
			return m, tea.Quit

		case "enter", "y", " ", "right", "l":
			return m.nextPage()

		case "left", "h":
			return m.prevPage(), nil
		}
	}
	return m, nil
}

// nextPage advances one block; moving past the last block ends the pager
func (m PagerModel) nextPage() (tea.Model, tea.Cmd) {
	if m.offset+m.pageSize >= m.table.Len() {
		m.done = true
		return m, tea.Quit
	}
	m.offset += m.pageSize
	return m, nil
}

// prevPage goes back one block
func (m PagerModel) prevPage() PagerModel {
	m.offset = max(m.offset-m.pageSize, 0)
	return m
}

// Offset returns the index of the first record on screen
func (m PagerModel) Offset() int { return m.offset }

// Done reports whether the user has stopped paging
func (m PagerModel) Done() bool { return m.done }

// View renders the current block
func (m PagerModel) View() string {
	if m.done {
		return ""
	}

	records := engine.Page(m.table, m.offset, m.pageSize)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Raw trip data for %s", m.table.City)))
	b.WriteString("\n")
	b.WriteString(RenderRecords(m.table.Columns, records, m.offset, m.width))
	b.WriteString("\n")

	last := m.offset + len(records)
	b.WriteString(labelStyle.Render(fmt.Sprintf("Rows %d-%d of %d", m.offset+1, last, m.table.Len())))
	b.WriteString("\n")

	if last < m.table.Len() {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Show the next %d rows? y/enter: yes • n/q: no • ←: back", m.pageSize)))
	} else {
		b.WriteString(helpStyle.Render("End of data. enter/q: close • ←: back"))
	}
	b.WriteString("\n")
	return b.String()
}
