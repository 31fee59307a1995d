package api

// Wire DTOs for the Requestarr backend JSON API.

// resultDTO is one discovery/search/details result item.
type resultDTO struct {
	TmdbID            int64   `json:"tmdb_id"`
	MediaType         string  `json:"media_type"`
	Title             string  `json:"title"`
	Year              int     `json:"year"`
	PosterPath        string  `json:"poster_path"`
	Overview          string  `json:"overview"`
	VoteAverage       float64 `json:"vote_average"`
	InLibrary         bool    `json:"in_library"`
	Partial           bool    `json:"partial"`
	Importable        bool    `json:"importable"`
	Pending           bool    `json:"pending"`
	SuggestedInstance string  `json:"suggested_instance,omitempty"`
}

// pageDTO is the paginated results envelope. HasMore is optional; older
// backends omit it and callers fall back to the page-size heuristic.
type pageDTO struct {
	Results []resultDTO `json:"results"`
	HasMore *bool       `json:"has_more,omitempty"`
}

// searchDTO is the search results envelope.
type searchDTO struct {
	Results []resultDTO `json:"results"`
}

// statusDTO is the envelope every endpoint may carry. Success defaults to
// true when omitted (success-by-shape).
type statusDTO struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// instanceDTO describes one configured backend instance.
type instanceDTO struct {
	AppType string `json:"app_type"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type instancesDTO struct {
	statusDTO
	Instances []instanceDTO `json:"instances"`
}

// defaultsDTO carries the persisted per-kind instance selections.
type defaultsDTO struct {
	statusDTO
	Defaults struct {
		MovieInstance string `json:"movie_instance"`
		TVInstance    string `json:"tv_instance"`
	} `json:"defaults"`
}

// rootFolderDTO matches the arr-style root folder shape. freeSpace is the
// backend's camelCase passthrough from the arr API.
type rootFolderDTO struct {
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace"`
	IsDefault bool   `json:"is_default"`
}

type rootFoldersDTO struct {
	statusDTO
	RootFolders []rootFolderDTO `json:"root_folders"`
}

type qualityProfileDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type qualityProfilesDTO struct {
	statusDTO
	Profiles []qualityProfileDTO `json:"profiles"`
}

// requestBodyDTO is the POST /request payload.
type requestBodyDTO struct {
	TmdbID           int64  `json:"tmdb_id"`
	MediaType        string `json:"media_type"`
	Title            string `json:"title,omitempty"`
	AppType          string `json:"app_type"`
	InstanceName     string `json:"instance_name"`
	RootFolderPath   string `json:"root_folder_path,omitempty"`
	QualityProfileID int64  `json:"quality_profile_id,omitempty"`
}

// requestResultDTO is the POST /request response.
type requestResultDTO struct {
	statusDTO
	Status struct {
		InLibrary bool `json:"in_library"`
		Requested bool `json:"requested"`
		Pending   bool `json:"pending"`
	} `json:"status"`
}

// hiddenMediaDTO lists "tmdb_id:media_type" keys.
type hiddenMediaDTO struct {
	statusDTO
	Keys []string `json:"keys"`
}
