package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/tui/styles"
)

// InstancePicker lists the configured instances for one media kind and lets
// the user commit a new active selection.
type InstancePicker struct {
	mediaType domain.MediaType
	instances []domain.Instance
	cursor    int
	current   domain.InstanceRef
	loading   bool
}

// NewInstancePicker creates an empty picker.
func NewInstancePicker() InstancePicker {
	return InstancePicker{}
}

// Open resets the picker for a media kind. Instances arrive asynchronously
// via SetInstances.
func (p *InstancePicker) Open(mediaType domain.MediaType, current domain.InstanceRef) {
	p.mediaType = mediaType
	p.current = current
	p.instances = nil
	p.cursor = 0
	p.loading = true
}

// SetInstances installs the fetched instances, keeping every instance whose
// app type serves the picker's media kind (radarr and movie_hunt for movies,
// sonarr and tv_hunt for TV), and positions the cursor on the current
// selection.
func (p *InstancePicker) SetInstances(instances []domain.Instance) {
	p.loading = false
	p.instances = p.instances[:0]
	for _, inst := range instances {
		if inst.AppType.MediaType() == p.mediaType {
			p.instances = append(p.instances, inst)
		}
	}
	for i, inst := range p.instances {
		if inst.Ref() == p.current {
			p.cursor = i
			break
		}
	}
}

// MediaType returns the media kind the picker was opened for.
func (p *InstancePicker) MediaType() domain.MediaType { return p.mediaType }

// MoveUp moves the cursor up.
func (p *InstancePicker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down.
func (p *InstancePicker) MoveDown() {
	if p.cursor < len(p.instances)-1 {
		p.cursor++
	}
}

// Selected returns the instance under the cursor.
func (p *InstancePicker) Selected() (domain.InstanceRef, bool) {
	if p.cursor < 0 || p.cursor >= len(p.instances) {
		return domain.InstanceRef{}, false
	}
	return p.instances[p.cursor].Ref(), true
}

// View renders the picker.
func (p *InstancePicker) View(width int) string {
	kind := "Movie"
	if p.mediaType == domain.MediaTypeTV {
		kind = "TV"
	}
	title := styles.ModalTitleStyle.Render(kind + " instance")

	var body string
	switch {
	case p.loading:
		body = styles.DimStyle.Render("Loading instances...")
	case len(p.instances) == 0:
		body = styles.DimStyle.Render("No instances configured")
	default:
		for i, inst := range p.instances {
			label := inst.Name
			if inst.Ref() == p.current {
				label += " " + styles.SuccessStyle.Render("(active)")
			}
			if i == p.cursor {
				body += styles.SelectedItemStyle.Render("> "+label) + "\n"
			} else {
				body += styles.NormalItemStyle.Render("  "+label) + "\n"
			}
		}
	}

	footer := styles.HelpDescStyle.Render("enter select · esc cancel")
	content := lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
	return styles.ModalStyle.Width(min(width-4, 50)).Render(content)
}
