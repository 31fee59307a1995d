package stream

import "github.com/requestarr/requestarr/internal/domain"

// GridPort is the rendering surface a stream drives. Components expose only
// these operations; a missing backing view is represented by NopGrid rather
// than scattered nil checks at every call site.
type GridPort interface {
	// SetLoading shows the first-page loading placeholder.
	SetLoading()

	// ClearLoading removes the loading placeholder. Called on every
	// resolution, including stale ones.
	ClearLoading()

	// RenderPage replaces the grid contents with a fresh first page.
	RenderPage(items []domain.MediaCard)

	// AppendPage appends a subsequent page to the grid.
	AppendPage(items []domain.MediaCard)

	// ClearGrid removes all rendered cards.
	ClearGrid()
}

// NopGrid is a GridPort for streams whose view is not currently mounted.
type NopGrid struct{}

func (NopGrid) SetLoading()                     {}
func (NopGrid) ClearLoading()                   {}
func (NopGrid) RenderPage([]domain.MediaCard)   {}
func (NopGrid) AppendPage([]domain.MediaCard)   {}
func (NopGrid) ClearGrid()                      {}
