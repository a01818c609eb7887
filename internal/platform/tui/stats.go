package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravt/piemenu/internal/storage"
)

// Stats layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the menu list sidebar
	sidebarWidth       = 20  // Width of the menu list sidebar
	maxSelections      = 100 // Max selection rows to load
)

// StatsKeyMap defines the key bindings for the selection stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMenu key.Binding
	PrevMenu key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMenu, k.PrevMenu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMenu, k.PrevMenu},
		{k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMenu: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next menu"),
		),
		PrevMenu: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for browsing selection history.
type StatsModel struct {
	menuIDs     []string
	menuCursor  int
	store       *storage.Store
	selections  []storage.Selection
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewStatsModel creates a stats model for the given menus.
func NewStatsModel(store *storage.Store, menuIDs []string, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		menuIDs:     menuIDs,
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.menuIDs) > 0 {
		m.loadSelections(m.menuIDs[0])
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Uses", Width: 6},
		{Title: "Item", Width: 28},
		{Title: "Last used", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 60; extra > 0 {
		columns[2].Width += extra
		if columns[2].Width > 48 {
			columns[2].Width = 48
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSelections loads usage records for the given menu.
func (m *StatsModel) loadSelections(menuID string) {
	if m.store == nil {
		m.selections = nil
		m.updateTableRows()
		return
	}

	selections, err := m.store.TopSelections(menuID, maxSelections)
	if err != nil {
		m.selections = nil
	} else {
		m.selections = selections
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current selections.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.selections))
	for i, s := range m.selections {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Count),
			s.ItemPath,
			s.LastUsed.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMenu):
			if len(m.menuIDs) > 0 {
				m.menuCursor = (m.menuCursor + 1) % len(m.menuIDs)
				m.loadSelections(m.menuIDs[m.menuCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMenu):
			if len(m.menuIDs) > 0 {
				m.menuCursor--
				if m.menuCursor < 0 {
					m.menuCursor = len(m.menuIDs) - 1
				}
				m.loadSelections(m.menuIDs[m.menuCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "MENU USAGE"
	if len(m.menuIDs) > 0 {
		title = fmt.Sprintf("MENU USAGE - %s", m.menuIDs[m.menuCursor])
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the stats with a sidebar for menu selection.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Menus\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, id := range m.menuIDs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.menuCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := id
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the stats with menu tabs above the table.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.menuIDs))
	for i, id := range m.menuIDs {
		short := id
		if len(short) > 10 {
			short = short[:9] + "."
		}
		if i == m.menuCursor {
			tabs[i] = activeTabStyle.Render(short)
		} else {
			tabs[i] = tabStyle.Render(" " + short + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.menuIDs[m.menuCursor])
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	if len(m.selections) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No selections recorded yet.\nUse the menu to build up history!")
	}

	return m.table.View()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunStats runs the selection stats screen.
func RunStats(store *storage.Store, menuIDs []string, width, height int) error {
	model := NewStatsModel(store, menuIDs, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
