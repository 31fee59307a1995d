package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/tui/styles"
)

// modalField identifies which picker inside the modal has focus.
type modalField int

const (
	fieldFolder modalField = iota
	fieldProfile
)

// RequestModal collects the root folder and quality profile for a request.
// The confirm action is disabled while a submission is in flight and
// re-enabled if it fails, so a failed request can be retried without
// reopening the modal.
type RequestModal struct {
	card     domain.MediaCard
	instance domain.InstanceRef

	folders  []domain.RootFolder
	profiles []domain.QualityProfile

	folderIdx  int
	profileIdx int
	field      modalField

	loading    bool
	submitting bool
	errMsg     string
}

// NewRequestModal creates an empty request modal.
func NewRequestModal() RequestModal {
	return RequestModal{}
}

// Open resets the modal for a new card. Options arrive asynchronously via
// SetOptions.
func (m *RequestModal) Open(card domain.MediaCard, instance domain.InstanceRef) {
	m.card = card
	m.instance = instance
	m.folders = nil
	m.profiles = nil
	m.folderIdx = 0
	m.profileIdx = 0
	m.field = fieldFolder
	m.loading = true
	m.submitting = false
	m.errMsg = ""
}

// SetOptions installs the fetched folders and profiles. The default root
// folder is preselected when the backend marks one.
func (m *RequestModal) SetOptions(folders []domain.RootFolder, profiles []domain.QualityProfile) {
	m.folders = folders
	m.profiles = profiles
	m.loading = false
	for i, f := range folders {
		if f.IsDefault {
			m.folderIdx = i
			break
		}
	}
}

// SetError surfaces an option-load or submission failure and re-enables
// confirm.
func (m *RequestModal) SetError(msg string) {
	m.loading = false
	m.submitting = false
	m.errMsg = msg
}

// Card returns the card the modal was opened for.
func (m *RequestModal) Card() domain.MediaCard { return m.card }

// Instance returns the instance the request targets.
func (m *RequestModal) Instance() domain.InstanceRef { return m.instance }

// Submitting reports whether a submission is in flight.
func (m *RequestModal) Submitting() bool { return m.submitting }

// CanConfirm reports whether the confirm action is currently enabled.
func (m *RequestModal) CanConfirm() bool {
	return !m.loading && !m.submitting && len(m.folders) > 0 && len(m.profiles) > 0
}

// Confirm marks the modal as submitting and returns the request to send.
// Returns false when confirm is disabled; a second confirm while one is in
// flight is a no-op.
func (m *RequestModal) Confirm() (domain.MediaRequest, bool) {
	if !m.CanConfirm() {
		return domain.MediaRequest{}, false
	}
	m.submitting = true
	m.errMsg = ""
	return domain.MediaRequest{
		TmdbID:           m.card.TmdbID,
		MediaType:        m.card.MediaType,
		Title:            m.card.Title,
		Instance:         m.instance,
		RootFolderPath:   m.folders[m.folderIdx].Path,
		QualityProfileID: m.profiles[m.profileIdx].ID,
	}, true
}

// NextField moves focus between the folder and profile pickers.
func (m *RequestModal) NextField() {
	if m.field == fieldFolder {
		m.field = fieldProfile
	} else {
		m.field = fieldFolder
	}
}

// MoveUp moves the focused picker selection up.
func (m *RequestModal) MoveUp() {
	if m.submitting {
		return
	}
	switch m.field {
	case fieldFolder:
		if m.folderIdx > 0 {
			m.folderIdx--
		}
	case fieldProfile:
		if m.profileIdx > 0 {
			m.profileIdx--
		}
	}
}

// MoveDown moves the focused picker selection down.
func (m *RequestModal) MoveDown() {
	if m.submitting {
		return
	}
	switch m.field {
	case fieldFolder:
		if m.folderIdx < len(m.folders)-1 {
			m.folderIdx++
		}
	case fieldProfile:
		if m.profileIdx < len(m.profiles)-1 {
			m.profileIdx++
		}
	}
}

// View renders the modal.
func (m *RequestModal) View(width int) string {
	title := styles.ModalTitleStyle.Render("Request: " + m.card.Title)

	var body string
	switch {
	case m.loading:
		body = styles.DimStyle.Render("Loading options...")
	case len(m.folders) == 0:
		body = styles.ErrorStyle.Render("No root folders available on " + m.instance.Encode())
	default:
		body = m.renderPickers()
	}

	footer := styles.HelpDescStyle.Render("tab switch · enter confirm · esc cancel")
	if m.submitting {
		footer = styles.DimStyle.Render("Submitting...")
	}
	if m.errMsg != "" {
		footer = styles.ErrorStyle.Render(m.errMsg) + "\n" + footer
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer)
	return styles.ModalStyle.Width(min(width-4, 60)).Render(content)
}

func (m *RequestModal) renderPickers() string {
	var out string

	out += styles.SubtitleStyle.Render("Root folder") + "\n"
	for i, f := range m.folders {
		label := fmt.Sprintf("%s (%s free)", f.Path, f.FormattedFreeSpace())
		out += m.renderOption(label, i == m.folderIdx, m.field == fieldFolder) + "\n"
	}

	out += "\n" + styles.SubtitleStyle.Render("Quality profile") + "\n"
	for i, p := range m.profiles {
		out += m.renderOption(p.Name, i == m.profileIdx, m.field == fieldProfile) + "\n"
	}
	return out
}

func (m *RequestModal) renderOption(label string, selected, focused bool) string {
	if selected && focused {
		return styles.SelectedItemStyle.Render("> " + label)
	}
	if selected {
		return styles.AccentStyle.Render("> " + label)
	}
	return styles.NormalItemStyle.Render("  " + label)
}
