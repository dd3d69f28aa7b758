// Package tui provides the terminal browser for generated dictionaries.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#0EA5E9") // Blue
	mutedColor   = lipgloss.Color("#64748B") // Gray
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(mutedColor).
			MarginTop(1)
)

// Batch is one generated dictionary shown as a tab.
type Batch struct {
	Title string
	IDs   []string
}

// BrowserModel is the bubbletea model of the dictionary browser.
type BrowserModel struct {
	batches []Batch
	active  int
	scrollY int
	width   int
	height  int
}

// NewBrowserModel creates a browser over batches.
func NewBrowserModel(batches []Batch) BrowserModel {
	return BrowserModel{batches: batches}
}

// Init initializes the model
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// contentArea is the number of identifier lines that fit on screen.
func (m BrowserModel) contentArea() int {
	return max(1, m.height-5) // tabs, blank line and footer
}

func (m BrowserModel) maxScroll() int {
	if len(m.batches) == 0 {
		return 0
	}
	return max(0, len(m.batches[m.active].IDs)-m.contentArea())
}

// Update handles input and updates the model
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollY = min(m.scrollY, m.maxScroll())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab", "right", "l":
			if len(m.batches) > 0 {
				m.active = (m.active + 1) % len(m.batches)
				m.scrollY = 0
			}

		case "shift+tab", "left", "h":
			if len(m.batches) > 0 {
				m.active = (m.active - 1 + len(m.batches)) % len(m.batches)
				m.scrollY = 0
			}

		case "up", "k":
			m.scrollY = max(0, m.scrollY-1)

		case "down", "j":
			m.scrollY = min(m.maxScroll(), m.scrollY+1)

		case "pgup":
			m.scrollY = max(0, m.scrollY-m.contentArea())

		case "pgdown":
			m.scrollY = min(m.maxScroll(), m.scrollY+m.contentArea())

		case "home", "g":
			m.scrollY = 0

		case "end", "G":
			m.scrollY = m.maxScroll()
		}
	}

	return m, nil
}

// View renders the TUI
func (m BrowserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if len(m.batches) == 0 {
		return "Nothing to display"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		m.renderContent(),
		m.renderFooter(),
	)
}

func (m BrowserModel) renderTabs() string {
	tabs := make([]string, len(m.batches))
	for i, b := range m.batches {
		label := fmt.Sprintf("%s (%d)", b.Title, len(b.IDs))
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m BrowserModel) renderContent() string {
	ids := m.batches[m.active].IDs
	end := min(m.scrollY+m.contentArea(), len(ids))

	digits := len(fmt.Sprint(len(ids)))
	lines := make([]string, 0, end-m.scrollY)
	for i := m.scrollY; i < end; i++ {
		number := lineNumberStyle.Render(fmt.Sprintf("%*d", digits, i+1))
		lines = append(lines, number+"  "+ids[i])
	}
	return strings.Join(lines, "\n")
}

func (m BrowserModel) renderFooter() string {
	total := len(m.batches[m.active].IDs)
	position := fmt.Sprintf("%d-%d of %d", min(m.scrollY+1, total), min(m.scrollY+m.contentArea(), total), total)
	help := helpStyle.Render("tab/←→: category • ↑↓/jk: scroll • PgUp/PgDn: page • q: quit")

	return footerStyle.Width(m.width).Render(position + "  " + help)
}

// RunBrowser starts the dictionary browser
func RunBrowser(batches []Batch) error {
	p := tea.NewProgram(NewBrowserModel(batches), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
