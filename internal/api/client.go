// Package api implements the JSON REST client for the Requestarr backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/requestarr/requestarr/internal/domain"
)

const (
	// defaultTimeout is the generic fetch ceiling applied to every call;
	// no endpoint carries its own retry policy beyond this.
	defaultTimeout = 120 * time.Second
	userAgent      = "Requestarr/1.0"
)

// Client implements domain.DiscoveryRepository, domain.RequestRepository,
// and domain.SettingsRepository against a Requestarr backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend API client.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// instanceQuery encodes an instance ref as the app_type/instance_name pair
// every instance-scoped endpoint expects.
func instanceQuery(ref domain.InstanceRef) url.Values {
	q := url.Values{}
	q.Set("app_type", string(ref.AppType))
	q.Set("instance_name", ref.Name)
	return q
}

// doRequest performs an authenticated HTTP request and returns the body.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.ErrTimeout
		}
		c.logger.Error("api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("api request error", "status", resp.StatusCode, "body", string(data))
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	return data, nil
}

// serverMessage extracts the error/message field from a failure body.
func serverMessage(data []byte) string {
	var st statusDTO
	if json.Unmarshal(data, &st) != nil {
		return ""
	}
	if st.Error != "" {
		return st.Error
	}
	return st.Message
}

// checkEnvelope rejects an OK response whose payload reports success:false.
func checkEnvelope(st statusDTO) error {
	if st.Success != nil && !*st.Success {
		msg := st.Error
		if msg == "" {
			msg = st.Message
		}
		return &domain.APIError{Message: msg}
	}
	return nil
}

func mediaPath(t domain.MediaType) string {
	if t == domain.MediaTypeTV {
		return "tv"
	}
	return "movies"
}

// Discover returns one page of discovery results.
func (c *Client) Discover(ctx context.Context, mediaType domain.MediaType, ref domain.InstanceRef, page int) (domain.Page, error) {
	q := instanceQuery(ref)
	q.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/discover/"+mediaPath(mediaType), q, nil)
	if err != nil {
		return domain.Page{}, err
	}

	var dto pageDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.Page{}, fmt.Errorf("failed to parse discover response: %w", err)
	}
	return mapPage(dto, mediaType), nil
}

// Recommendations returns one page of smart-recommendation results.
func (c *Client) Recommendations(ctx context.Context, mediaType domain.MediaType, ref domain.InstanceRef, page int) (domain.Page, error) {
	q := instanceQuery(ref)
	q.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/recommendations/"+mediaPath(mediaType), q, nil)
	if err != nil {
		return domain.Page{}, err
	}

	var dto pageDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.Page{}, fmt.Errorf("failed to parse recommendations response: %w", err)
	}
	return mapPage(dto, mediaType), nil
}

// Search returns results for a free-text query.
func (c *Client) Search(ctx context.Context, query string, mediaType domain.MediaType, ref domain.InstanceRef) ([]domain.MediaCard, error) {
	q := instanceQuery(ref)
	q.Set("q", query)
	q.Set("media_type", string(mediaType))

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/search", q, nil)
	if err != nil {
		return nil, err
	}

	var dto searchDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return mapResults(dto.Results, mediaType), nil
}

// Details returns a single item by TMDB id.
func (c *Client) Details(ctx context.Context, mediaType domain.MediaType, tmdbID int64) (*domain.MediaCard, error) {
	path := fmt.Sprintf("/api/v1/details/%s/%d", string(mediaType), tmdbID)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var dto resultDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse details response: %w", err)
	}
	card := mapResult(dto, mediaType)
	return &card, nil
}

// SubmitRequest creates a media request.
func (c *Client) SubmitRequest(ctx context.Context, req domain.MediaRequest) (domain.CardStatus, error) {
	payload := requestBodyDTO{
		TmdbID:           req.TmdbID,
		MediaType:        string(req.MediaType),
		Title:            req.Title,
		AppType:          string(req.Instance.AppType),
		InstanceName:     req.Instance.Name,
		RootFolderPath:   req.RootFolderPath,
		QualityProfileID: req.QualityProfileID,
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/api/v1/request", nil, payload)
	if err != nil {
		return domain.CardStatus{}, err
	}

	var dto requestResultDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.CardStatus{}, fmt.Errorf("failed to parse request response: %w", err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return domain.CardStatus{}, err
	}
	return domain.CardStatus{
		InLibrary: dto.Status.InLibrary,
		Requested: dto.Status.Requested,
		Pending:   dto.Status.Pending,
	}, nil
}

// DeleteRequest removes a pending/partial request for an item.
func (c *Client) DeleteRequest(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	path := fmt.Sprintf("/api/v1/requests/%d/%s", tmdbID, string(mediaType))
	body, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	var st statusDTO
	if json.Unmarshal(body, &st) == nil {
		return checkEnvelope(st)
	}
	return nil
}

// RootFolders lists storage targets for an instance.
func (c *Client) RootFolders(ctx context.Context, ref domain.InstanceRef) ([]domain.RootFolder, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/rootfolders", instanceQuery(ref), nil)
	if err != nil {
		return nil, err
	}

	var dto rootFoldersDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse rootfolders response: %w", err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return nil, err
	}
	return mapRootFolders(dto.RootFolders), nil
}

// QualityProfiles lists quality profiles for an instance.
func (c *Client) QualityProfiles(ctx context.Context, ref domain.InstanceRef) ([]domain.QualityProfile, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/qualityprofiles", instanceQuery(ref), nil)
	if err != nil {
		return nil, err
	}

	var dto qualityProfilesDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse qualityprofiles response: %w", err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return nil, err
	}
	return mapQualityProfiles(dto.Profiles), nil
}

// Instances lists all configured backend instances.
func (c *Client) Instances(ctx context.Context) ([]domain.Instance, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/instances", nil, nil)
	if err != nil {
		return nil, err
	}

	var dto instancesDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse instances response: %w", err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return nil, err
	}
	return mapInstances(dto.Instances), nil
}

// DefaultInstances returns the persisted per-kind selections.
func (c *Client) DefaultInstances(ctx context.Context) (domain.DefaultInstances, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/settings/default-instances", nil, nil)
	if err != nil {
		return domain.DefaultInstances{}, err
	}

	var dto defaultsDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.DefaultInstances{}, fmt.Errorf("failed to parse defaults response: %w", err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return domain.DefaultInstances{}, err
	}
	return domain.DefaultInstances{
		MovieInstance: dto.Defaults.MovieInstance,
		TVInstance:    dto.Defaults.TVInstance,
	}, nil
}

// SaveDefaultInstances persists the per-kind selections.
func (c *Client) SaveDefaultInstances(ctx context.Context, defaults domain.DefaultInstances) error {
	payload := map[string]any{
		"defaults": map[string]string{
			"movie_instance": defaults.MovieInstance,
			"tv_instance":    defaults.TVInstance,
		},
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/api/v1/settings/default-instances", nil, payload)
	if err != nil {
		return err
	}
	var st statusDTO
	if json.Unmarshal(body, &st) == nil {
		return checkEnvelope(st)
	}
	return nil
}

// HiddenMedia returns the keys of hidden items.
func (c *Client) HiddenMedia(ctx context.Context) ([]string, error) {
	return c.fetchKeys(ctx, "/api/v1/hidden-media")
}

// Unhide removes an item from the hidden set.
func (c *Client) Unhide(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return c.deleteKey(ctx, "/api/v1/hidden-media", tmdbID, mediaType)
}

// GlobalBlacklist returns the keys of globally blacklisted items.
func (c *Client) GlobalBlacklist(ctx context.Context) ([]string, error) {
	return c.fetchKeys(ctx, "/api/v1/blacklist")
}

// Unblacklist removes an item from the global blacklist.
func (c *Client) Unblacklist(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return c.deleteKey(ctx, "/api/v1/blacklist", tmdbID, mediaType)
}

func (c *Client) fetchKeys(ctx context.Context, path string) ([]string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var dto hiddenMediaDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	if err := checkEnvelope(dto.statusDTO); err != nil {
		return nil, err
	}
	return dto.Keys, nil
}

func (c *Client) deleteKey(ctx context.Context, path string, tmdbID int64, mediaType domain.MediaType) error {
	full := fmt.Sprintf("%s/%d/%s", path, tmdbID, string(mediaType))
	body, err := c.doRequest(ctx, http.MethodDelete, full, nil, nil)
	if err != nil {
		return err
	}
	var st statusDTO
	if json.Unmarshal(body, &st) == nil {
		return checkEnvelope(st)
	}
	return nil
}

// Ping verifies connectivity and credentials during first-run setup.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Instances(ctx)
	return err
}
