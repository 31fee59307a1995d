package domain

import "context"

// DiscoveryRepository provides paginated discovery, search, and detail
// lookups against a selected backend instance.
type DiscoveryRepository interface {
	// Discover returns one page of discovery results for the media kind.
	Discover(ctx context.Context, mediaType MediaType, ref InstanceRef, page int) (Page, error)

	// Search returns results for a free-text query.
	Search(ctx context.Context, query string, mediaType MediaType, ref InstanceRef) ([]MediaCard, error)

	// Details returns a single item by TMDB id.
	Details(ctx context.Context, mediaType MediaType, tmdbID int64) (*MediaCard, error)

	// Recommendations returns one page of smart-recommendation results.
	Recommendations(ctx context.Context, mediaType MediaType, ref InstanceRef, page int) (Page, error)
}

// RequestRepository submits and inspects media requests.
type RequestRepository interface {
	// SubmitRequest creates a request; the returned status reflects the
	// item's relationship to the library after submission.
	SubmitRequest(ctx context.Context, req MediaRequest) (CardStatus, error)

	// DeleteRequest removes a pending/partial request for an item.
	DeleteRequest(ctx context.Context, tmdbID int64, mediaType MediaType) error

	// RootFolders lists storage targets for an instance.
	RootFolders(ctx context.Context, ref InstanceRef) ([]RootFolder, error)

	// QualityProfiles lists quality profiles for an instance.
	QualityProfiles(ctx context.Context, ref InstanceRef) ([]QualityProfile, error)
}

// SettingsRepository persists and retrieves cross-session settings.
type SettingsRepository interface {
	// Instances lists all configured backend instances.
	Instances(ctx context.Context) ([]Instance, error)

	// DefaultInstances returns the persisted per-kind selections.
	DefaultInstances(ctx context.Context) (DefaultInstances, error)

	// SaveDefaultInstances persists the per-kind selections.
	SaveDefaultInstances(ctx context.Context, defaults DefaultInstances) error

	// HiddenMedia returns the "tmdbID:mediaType" keys of hidden items.
	HiddenMedia(ctx context.Context) ([]string, error)

	// Unhide removes an item from the hidden set.
	Unhide(ctx context.Context, tmdbID int64, mediaType MediaType) error

	// GlobalBlacklist returns the "tmdbID:mediaType" keys of blacklisted items.
	GlobalBlacklist(ctx context.Context) ([]string, error)

	// Unblacklist removes an item from the global blacklist.
	Unblacklist(ctx context.Context, tmdbID int64, mediaType MediaType) error
}
