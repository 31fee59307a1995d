package domain

import (
	"fmt"
	"strconv"
)

// MediaType distinguishes the two requestable content kinds.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// DefaultAppType returns the app type assumed for bare pre-migration instance
// names of this media kind.
func (t MediaType) DefaultAppType() AppType {
	if t == MediaTypeTV {
		return AppTypeSonarr
	}
	return AppTypeRadarr
}

// MediaCard is the view entity rendered in grids and carousels. It is derived
// per render from a discovery/search result plus a suggested instance hint,
// never persisted.
type MediaCard struct {
	TmdbID      int64
	MediaType   MediaType
	Title       string
	Year        int
	PosterPath  string
	Overview    string
	VoteAverage float64

	InLibrary  bool
	Partial    bool
	Importable bool
	Pending    bool

	// SuggestedInstance hints which backend instance a request should target.
	SuggestedInstance InstanceRef
}

// Key returns the "tmdbID:mediaType" identity used for card lookups and the
// hidden/blacklist sets.
func (c MediaCard) Key() string {
	return MediaKey(c.TmdbID, c.MediaType)
}

// State resolves the card's visual state from its library flags.
func (c MediaCard) State() CardState {
	return ResolveCardState(c.InLibrary, c.Partial || c.Importable, c.Pending)
}

// MediaKey builds the "tmdbID:mediaType" identity string.
func MediaKey(tmdbID int64, mediaType MediaType) string {
	return strconv.FormatInt(tmdbID, 10) + ":" + string(mediaType)
}

// Instance describes one configured backend instance.
type Instance struct {
	AppType AppType
	Name    string
	Enabled bool
}

// Ref returns the instance's compound reference.
func (i Instance) Ref() InstanceRef {
	return InstanceRef{AppType: i.AppType, Name: i.Name}
}

// RootFolder is a storage target offered when submitting a request.
type RootFolder struct {
	Path      string
	FreeSpace int64
	IsDefault bool
}

// FormattedFreeSpace returns the free space in a human-readable format.
func (r RootFolder) FormattedFreeSpace() string {
	const (
		mb = 1024 * 1024
		gb = 1024 * mb
		tb = 1024 * gb
	)
	switch {
	case r.FreeSpace >= tb:
		return fmt.Sprintf("%.1f TB", float64(r.FreeSpace)/tb)
	case r.FreeSpace >= gb:
		return fmt.Sprintf("%.1f GB", float64(r.FreeSpace)/gb)
	case r.FreeSpace > 0:
		return fmt.Sprintf("%d MB", r.FreeSpace/mb)
	default:
		return ""
	}
}

// QualityProfile is a backend quality profile offered in the request modal.
type QualityProfile struct {
	ID   int64
	Name string
}

// MediaRequest is a request submission for one media item.
type MediaRequest struct {
	TmdbID           int64
	MediaType        MediaType
	Title            string
	Instance         InstanceRef
	RootFolderPath   string
	QualityProfileID int64
}

// DefaultInstances holds the persisted per-kind instance selections in their
// encoded string form.
type DefaultInstances struct {
	MovieInstance string
	TVInstance    string
}

// Page is one page of discovery or search results. HasMore is nil when the
// server omitted its has-more flag; callers then fall back to comparing
// RawCount against the requested page size.
type Page struct {
	Items   []MediaCard
	HasMore *bool
	// RawCount is the number of items the server returned before any
	// client-side hidden/blacklist filtering.
	RawCount int
}
