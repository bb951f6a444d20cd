// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// picker.go - Full-screen tabular selection.

package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modelport/internal/inventory"
	"github.com/jeranaias/modelport/internal/util"
)

// =============================================================================
// KEY BINDINGS
// =============================================================================

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Sort    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark all"),
		),
		Sort: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "sort column"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.Sort, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.All},
		{k.Sort, k.Confirm, k.Cancel},
	}
}

// =============================================================================
// STYLES
// =============================================================================

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	pickerHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("255"))

	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	pickerMarkedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	pickerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// =============================================================================
// PICKER MODEL
// =============================================================================

// sortNone means "original (name-sorted) inventory order".
const sortNone = -1

// pickerModel is the bubbletea model behind the Picker selector.
type pickerModel struct {
	rows   []inventory.Row
	order  []int        // display order, indices into rows
	marked map[int]bool // keyed by original row index
	cursor int          // position within order

	sortColumn int // sortNone or 0..3
	sortDesc   bool

	keys pickerKeyMap
	help help.Model

	width     int
	height    int
	confirmed bool
}

func newPickerModel(rows []inventory.Row) pickerModel {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	return pickerModel{
		rows:       rows,
		order:      order,
		marked:     make(map[int]bool),
		sortColumn: sortNone,
		keys:       defaultPickerKeys(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.marked = make(map[int]bool)
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.order)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.order) > 0 {
				idx := m.order[m.cursor]
				m.marked[idx] = !m.marked[idx]
			}

		case key.Matches(msg, m.keys.All):
			m.toggleAll()

		case key.Matches(msg, m.keys.Sort):
			if len(msg.Runes) == 1 {
				m.cycleSort(int(msg.Runes[0] - '1'))
			}
		}
	}
	return m, nil
}

// toggleAll marks every row, or clears every mark if all are marked.
func (m *pickerModel) toggleAll() {
	all := true
	for i := range m.rows {
		if !m.marked[i] {
			all = false
			break
		}
	}
	for i := range m.rows {
		m.marked[i] = !all
	}
}

// cycleSort sorts by the given column, toggling direction when the column
// is pressed again. Name and id sort lexically; size by parsed byte count;
// modified by parsed recency (newest first on the first press).
func (m *pickerModel) cycleSort(column int) {
	if column < 0 || column > 3 {
		return
	}
	if m.sortColumn == column {
		m.sortDesc = !m.sortDesc
	} else {
		m.sortColumn = column
		m.sortDesc = false
	}

	current := m.currentRowIndex()

	less := func(a, b inventory.Row) bool {
		switch column {
		case 0:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case 1:
			return strings.ToLower(a.ID) < strings.ToLower(b.ID)
		case 2:
			return SizeBytes(a.Size) < SizeBytes(b.Size)
		default:
			return RecencyAge(a.Modified) < RecencyAge(b.Modified)
		}
	}

	sort.SliceStable(m.order, func(i, j int) bool {
		a, b := m.rows[m.order[i]], m.rows[m.order[j]]
		if m.sortDesc {
			return less(b, a)
		}
		return less(a, b)
	})

	// Keep the cursor on the same row across re-sorts.
	for pos, idx := range m.order {
		if idx == current {
			m.cursor = pos
			break
		}
	}
}

func (m *pickerModel) currentRowIndex() int {
	if len(m.order) == 0 {
		return -1
	}
	return m.order[m.cursor]
}

// selectedNames returns the marked model names in original inventory order.
func (m pickerModel) selectedNames() []string {
	var names []string
	for i, row := range m.rows {
		if m.marked[i] {
			names = append(names, row.Name)
		}
	}
	return names
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("Select model(s) to export"))
	b.WriteString("\n")

	widths := columnWidths(m.rows)
	header := [4]string{"Name", "ID", "Size", "Modified"}
	for i := range header {
		if i == m.sortColumn {
			arrow := " ^"
			if m.sortDesc {
				arrow = " v"
			}
			header[i] += arrow
		}
	}

	var headerLine strings.Builder
	headerLine.WriteString("      ")
	for i, h := range header {
		headerLine.WriteString(util.PadCell(h, widths[i]+2))
		headerLine.WriteString("  ")
	}
	b.WriteString(pickerHeaderStyle.Render(headerLine.String()))
	b.WriteString("\n")

	top, bottom := m.visibleRange()
	for pos := top; pos < bottom; pos++ {
		idx := m.order[pos]
		row := m.rows[idx]

		cursor := "  "
		if pos == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		mark := "[ ] "
		if m.marked[idx] {
			mark = pickerMarkedStyle.Render("[x] ")
		}

		var line strings.Builder
		cells := [4]string{row.Name, row.ID, row.Size, row.Modified}
		for i, cell := range cells {
			line.WriteString(util.PadCell(cell, widths[i]+2))
			line.WriteString("  ")
		}

		text := line.String()
		if m.marked[idx] {
			text = pickerMarkedStyle.Render(text)
		}
		b.WriteString(cursor + mark + text + "\n")
	}

	b.WriteString("\n")
	b.WriteString(pickerDimStyle.Render(fmt.Sprintf("%d of %d marked", len(m.selectedNames()), len(m.rows))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// visibleRange clamps the row window to the terminal height, keeping the
// cursor in view. Five lines are reserved for chrome around the table.
func (m pickerModel) visibleRange() (top, bottom int) {
	visible := len(m.order)
	if m.height > 0 {
		if max := m.height - 5; max > 0 && max < visible {
			visible = max
		}
	}
	top = 0
	if m.cursor >= visible {
		top = m.cursor - visible + 1
	}
	bottom = top + visible
	if bottom > len(m.order) {
		bottom = len(m.order)
	}
	return top, bottom
}

// =============================================================================
// PICKER SELECTOR
// =============================================================================

// Picker is the full-screen Selector. It takes over the terminal with an
// alternate screen for the duration of the selection.
type Picker struct{}

// NewPicker creates a Picker selector.
func NewPicker() *Picker {
	return &Picker{}
}

// Select implements Selector.
func (p *Picker) Select(rows []inventory.Row) ([]string, error) {
	program := tea.NewProgram(newPickerModel(rows), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || !m.confirmed {
		return nil, nil
	}
	return m.selectedNames(), nil
}
