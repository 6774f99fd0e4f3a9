// This file defines the content model shared between providers and hosts.
// Everything here is produced by a provider per call and never mutated after.

package models

// Status describes whether a series is still being published.
type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// UpdateStrategy tells the host whether a series' metadata is worth refreshing.
type UpdateStrategy string

const (
	UpdateAlways        UpdateStrategy = "always_update"
	UpdateOnlyFetchOnce UpdateStrategy = "only_fetch_once"
)

// SearchResult represents a single series found in a listing.
type SearchResult struct {
	Title      string `json:"title"`
	CoverURL   string `json:"cover_url"`
	Identifier string `json:"identifier"` // Site-relative path of the series
	Status     Status `json:"status"`
}

// ListingPage is one page of a popular, latest or search listing.
type ListingPage struct {
	Results     []SearchResult `json:"results"`
	HasNextPage bool           `json:"has_next_page"`
}

// SeriesDetail holds the full metadata of a single series.
type SeriesDetail struct {
	Identifier     string         `json:"identifier"`
	Title          string         `json:"title"`
	CoverURL       string         `json:"cover_url"`
	Genre          string         `json:"genre"` // Comma separated, as the host displays it
	Genres         []string       `json:"genres"`
	Status         Status         `json:"status"`
	UpdateStrategy UpdateStrategy `json:"update_strategy"`
}

// ChapterResult represents a single chapter for a series from a provider.
type ChapterResult struct {
	Identifier string `json:"identifier"` // Unique ID for the chapter on the source site
	Title      string `json:"title"`
	DateUpload int64  `json:"date_upload"` // Unix milliseconds, 0 when unknown
}

// Page represents a single image location within a chapter.
type Page struct {
	Index    int    `json:"index"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`
}
