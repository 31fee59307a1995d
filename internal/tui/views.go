package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/requestarr/requestarr/internal/tui/styles"
)

const chromeHeight = 3 // tab bar + status bar + padding

var tabLabels = []string{"Discover", "Movies", "TV", "Search"}

// updateLayout propagates the terminal size to every component.
func (m *Model) updateLayout() {
	contentHeight := m.Height - chromeHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.MovieGrid.SetSize(m.Width, contentHeight)
	m.TVGrid.SetSize(m.Width, contentHeight)
	m.SearchGrid.SetSize(m.Width, contentHeight-1)
	for _, row := range m.Rows {
		row.SetWidth(m.Width)
	}
	m.updateFocus()
}

// updateFocus marks the active navigation surface.
func (m *Model) updateFocus() {
	m.MovieGrid.SetFocused(m.Tab == ViewMovies)
	m.TVGrid.SetFocused(m.Tab == ViewTV)
	m.SearchGrid.SetFocused(m.Tab == ViewSearch)
	for i, name := range discoverRowOrder {
		m.Rows[name].SetFocused(m.Tab == ViewDiscover && i == m.FocusedRow)
	}
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Starting..."
	}

	var overlay string
	switch m.State {
	case StateRequestModal:
		overlay = m.Modal.View(m.Width)
	case StateInstancePicker:
		overlay = m.Picker.View(m.Width)
	case StateHelp:
		overlay = m.helpView()
	}
	if overlay != "" {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
	}

	sections := []string{
		m.tabBar(),
		m.contentView(),
		m.statusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tabBar() string {
	tabs := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if ViewTab(i) == m.Tab {
			tabs[i] = styles.ActiveTabStyle.Render(label)
		} else {
			tabs[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	ref := m.Selection.Instance(m.activeMediaType())
	if !ref.IsZero() {
		right := styles.DimStyle.Render("instance: ") + styles.AccentStyle.Render(ref.Encode())
		gap := m.Width - lipgloss.Width(bar) - lipgloss.Width(right) - 1
		if gap > 0 {
			bar += strings.Repeat(" ", gap) + right
		}
	}
	return bar
}

func (m Model) contentView() string {
	height := m.Height - chromeHeight
	var body string
	switch m.Tab {
	case ViewDiscover:
		rows := make([]string, 0, len(discoverRowOrder))
		for _, name := range discoverRowOrder {
			rows = append(rows, m.Rows[name].View())
		}
		body = strings.Join(rows, "\n\n")
	case ViewMovies:
		body = m.MovieGrid.View()
	case ViewTV:
		body = m.TVGrid.View()
	case ViewSearch:
		body = m.SearchBar.View() + "\n\n" + m.SearchGrid.View()
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

func (m Model) statusBar() string {
	if m.StatusText != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(m.StatusText)
		}
		return styles.SuccessStyle.Render(m.StatusText)
	}
	hints := []string{
		styles.HelpKeyStyle.Render("1-3") + styles.HelpDescStyle.Render(" views"),
		styles.HelpKeyStyle.Render("/") + styles.HelpDescStyle.Render(" search"),
		styles.HelpKeyStyle.Render("r") + styles.HelpDescStyle.Render(" request"),
		styles.HelpKeyStyle.Render("i") + styles.HelpDescStyle.Render(" instance"),
		styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help"),
	}
	return strings.Join(hints, "  ")
}

func (m Model) helpView() string {
	rows := [][2]string{
		{"1 / 2 / 3", "discover, movies, tv"},
		{"/", "search"},
		{"h j k l", "move"},
		{"enter / r", "request selected item"},
		{"x", "delete a pending request"},
		{"i", "switch backend instance"},
		{"u", "unhide selected item"},
		{"R", "refresh current view"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keys") + "\n")
	for _, r := range rows {
		b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(r[0], 12)))
		b.WriteString(styles.HelpDescStyle.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n" + styles.DimStyle.Render("press any key to close"))
	return styles.ModalStyle.Render(b.String())
}
