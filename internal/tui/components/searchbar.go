package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/requestarr/requestarr/internal/tui/styles"
)

// SearchBar wraps a text input for free-text search. Each edit bumps the
// query sequence so a debounce timer or response from an earlier keystroke
// generation can be told apart from the current one.
type SearchBar struct {
	input textinput.Model
	seq   uint64
}

// NewSearchBar creates a search bar.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies and TV..."
	ti.Prompt = styles.AccentStyle.Render("/ ")
	ti.CharLimit = 120
	return SearchBar{input: ti}
}

// Focus gives the input keyboard focus.
func (s *SearchBar) Focus() tea.Cmd { return s.input.Focus() }

// Blur removes keyboard focus.
func (s *SearchBar) Blur() { s.input.Blur() }

// Focused reports whether the input has focus.
func (s *SearchBar) Focused() bool { return s.input.Focused() }

// Value returns the trimmed query text.
func (s *SearchBar) Value() string { return strings.TrimSpace(s.input.Value()) }

// Seq returns the current query generation.
func (s *SearchBar) Seq() uint64 { return s.seq }

// Reset clears the input and invalidates outstanding generations.
func (s *SearchBar) Reset() {
	s.input.SetValue("")
	s.seq++
}

// Update feeds a message to the input. Returns the input command and whether
// the text changed, in which case the generation was bumped and a new
// debounce timer should start.
func (s *SearchBar) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.seq++
		return cmd, true
	}
	return cmd, false
}

// View renders the search bar.
func (s *SearchBar) View() string {
	return s.input.View()
}
