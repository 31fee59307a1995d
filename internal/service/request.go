package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/requestarr/requestarr/internal/domain"
)

// Requests submits and withdraws media requests. It only talks to the
// backend; callers apply the returned status to rendered cards on the event
// loop, never from the fetch goroutine.
type Requests struct {
	repo   domain.RequestRepository
	logger *slog.Logger
}

// NewRequests creates the request service.
func NewRequests(repo domain.RequestRepository, logger *slog.Logger) *Requests {
	if logger == nil {
		logger = slog.Default()
	}
	return &Requests{repo: repo, logger: logger}
}

// Submit creates a request and returns the backend-reported status flags for
// the item.
func (r *Requests) Submit(ctx context.Context, req domain.MediaRequest) (domain.CardStatus, error) {
	status, err := r.repo.SubmitRequest(ctx, req)
	if err != nil {
		return domain.CardStatus{}, err
	}
	r.logger.Debug("request submitted",
		"tmdbId", req.TmdbID, "mediaType", req.MediaType, "state", status.State().String())
	return status, nil
}

// Delete withdraws a request. On success the item is available again.
func (r *Requests) Delete(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return r.repo.DeleteRequest(ctx, tmdbID, mediaType)
}

// RootFolders lists storage targets with the default folder first.
func (r *Requests) RootFolders(ctx context.Context, ref domain.InstanceRef) ([]domain.RootFolder, error) {
	folders, err := r.repo.RootFolders(ctx, ref)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].IsDefault && !folders[j].IsDefault
	})
	return folders, nil
}

// QualityProfiles lists quality profiles for an instance.
func (r *Requests) QualityProfiles(ctx context.Context, ref domain.InstanceRef) ([]domain.QualityProfile, error) {
	return r.repo.QualityProfiles(ctx, ref)
}
