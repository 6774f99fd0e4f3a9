// Package nijiero implements the Provider interface for nijiero-ch.com, a
// WordPress site that publishes each work as a single post of images.
package nijiero

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

const (
	ProviderID     = "nijiero"
	DefaultBaseURL = "https://www.nijiero-ch.com"
	version        = "1.0.0"
)

// Provider implements models.Provider. It keeps no mutable state and is safe
// for concurrent use.
type Provider struct {
	client  scraper.Doer
	baseURL string
	now     func() time.Time
}

func New() (*Provider, error) {
	client, err := scraper.NewHTTPClient(scraper.ClientOptions{Timeout: 30 * time.Second})
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, DefaultBaseURL), nil
}

// NewWithClient creates a provider that talks to baseURL through client.
func NewWithClient(client scraper.Doer, baseURL string) *Provider {
	return &Provider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

func (p *Provider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:      ProviderID,
		Name:    "Nijiero",
		Lang:    "all",
		BaseURL: p.baseURL,
		Version: version,
		Capabilities: models.Capabilities{
			Latest:          false,
			ImageResolution: false,
		},
	}
}

// ResolveURL turns a stored identifier back into an absolute URL. Anything
// that would leave the site is a *scraper.OriginError.
func (p *Provider) ResolveURL(identifier string) (string, error) {
	return scraper.ResolveOrigin(p.baseURL, identifier)
}

// fetch resolves identifier and loads the page it names.
func (p *Provider) fetch(ctx context.Context, identifier string) (*goquery.Document, *url.URL, error) {
	target, err := p.ResolveURL(identifier)
	if err != nil {
		return nil, nil, err
	}
	return scraper.FetchDocument(ctx, p.client, target)
}

// refreshParam defeats caches in front of pages that change between visits.
func (p *Provider) refreshParam() int64 {
	return p.now().UnixMilli()
}

// Popular returns the ranking, which the site always renders on one page.
func (p *Provider) Popular(ctx context.Context, page int) (*models.ListingPage, error) {
	target := fmt.Sprintf("%s/ranking.html?refresh=%d", p.baseURL, p.refreshParam())
	doc, _, err := scraper.FetchDocument(ctx, p.client, target)
	if err != nil {
		return nil, err
	}
	return &models.ListingPage{
		Results:     p.parseListing(doc, popularListing),
		HasNextPage: false,
	}, nil
}

func (p *Provider) Latest(ctx context.Context, page int) (*models.ListingPage, error) {
	return nil, &models.UnsupportedError{Provider: ProviderID, Operation: "latest"}
}

func (p *Provider) GetDetails(ctx context.Context, seriesIdentifier string) (*models.SeriesDetail, error) {
	doc, _, err := p.fetch(ctx, seriesIdentifier)
	if err != nil {
		return nil, err
	}
	return parseDetails(doc, seriesIdentifier), nil
}

// GetChapters synthesizes the single chapter every work has. Its identifier
// is the path the post was finally served from.
func (p *Provider) GetChapters(ctx context.Context, seriesIdentifier string) ([]models.ChapterResult, error) {
	doc, final, err := p.fetch(ctx, seriesIdentifier)
	if err != nil {
		return nil, err
	}
	published := doc.Find("div.postInfo.cf div.postDate.cf time.entry-date.date.published.updated").First()
	return []models.ChapterResult{
		{
			Identifier: final.EscapedPath(),
			Title:      "Chapter",
			DateUpload: parseDate(published.AttrOr("datetime", "")),
		},
	}, nil
}

func (p *Provider) GetPages(ctx context.Context, chapterIdentifier string) ([]models.Page, error) {
	doc, _, err := p.fetch(ctx, chapterIdentifier)
	if err != nil {
		return nil, err
	}
	return p.parsePages(doc), nil
}

// ImageURL is unsupported: a page's location is already the image.
func (p *Provider) ImageURL(ctx context.Context, page models.Page) (string, error) {
	return "", &models.UnsupportedError{Provider: ProviderID, Operation: "image url"}
}
