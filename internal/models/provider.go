package models

import "context"

// Capabilities declares which optional operations a provider can serve.
// Hosts are expected to consult it before calling Latest or ImageURL.
type Capabilities struct {
	Latest          bool `json:"latest"`
	ImageResolution bool `json:"image_resolution"`
}

// ProviderInfo contains static information about a provider.
type ProviderInfo struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Lang         string       `json:"lang"`
	BaseURL      string       `json:"base_url"`
	Version      string       `json:"version"`
	Capabilities Capabilities `json:"capabilities"`
}

// Provider defines the contract that every website connector must implement.
type Provider interface {
	GetInfo() ProviderInfo
	Filters() []Filter

	Popular(ctx context.Context, page int) (*ListingPage, error)
	Latest(ctx context.Context, page int) (*ListingPage, error)
	Search(ctx context.Context, page int, query string, filters FilterState) (*ListingPage, error)

	GetDetails(ctx context.Context, seriesIdentifier string) (*SeriesDetail, error)
	GetChapters(ctx context.Context, seriesIdentifier string) ([]ChapterResult, error)
	GetPages(ctx context.Context, chapterIdentifier string) ([]Page, error)
	ImageURL(ctx context.Context, page Page) (string, error)
}

// URLResolver is implemented by providers whose identifiers are relative
// to a site origin. ResolveURL fails for identifiers outside that origin.
type URLResolver interface {
	ResolveURL(identifier string) (string, error)
}
