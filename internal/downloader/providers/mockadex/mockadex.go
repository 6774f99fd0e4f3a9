// A mock provider for development and testing purposes. It simulates
// browsing and fetching from a real site without making network calls.
package mockadex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vrsandeep/nijiero-go/internal/models"
)

const (
	seriesPerPage = 10
	lastPage      = 3
	pagesPerChap  = 20
)

var genres = []string{"Action", "Comedy", "Drama"}

type MockadexProvider struct{}

func New() *MockadexProvider {
	return &MockadexProvider{}
}

func (p *MockadexProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:      "mockadex",
		Name:    "Mockadex",
		Lang:    "en",
		BaseURL: "https://mockadex.invalid",
		Version: "0.1.0",
		Capabilities: models.Capabilities{
			Latest:          true,
			ImageResolution: true,
		},
	}
}

func (p *MockadexProvider) Filters() []models.Filter {
	return []models.Filter{models.SelectFilter("Genre", genres)}
}

func (p *MockadexProvider) listing(prefix string, page int) *models.ListingPage {
	results := make([]models.SearchResult, 0, seriesPerPage)
	for i := 1; i <= seriesPerPage; i++ {
		n := (page-1)*seriesPerPage + i
		results = append(results, models.SearchResult{
			Title:      fmt.Sprintf("%s - Result %d", prefix, n),
			CoverURL:   fmt.Sprintf("https://placehold.co/400x600/2a2a2a/f0f0f0?text=Cover+%d", n),
			Identifier: fmt.Sprintf("mock-series-%d", n),
			Status:     models.StatusOngoing,
		})
	}
	return &models.ListingPage{Results: results, HasNextPage: page < lastPage}
}

func (p *MockadexProvider) Popular(ctx context.Context, page int) (*models.ListingPage, error) {
	return p.listing("Popular", page), nil
}

func (p *MockadexProvider) Latest(ctx context.Context, page int) (*models.ListingPage, error) {
	return p.listing("Latest", page), nil
}

func (p *MockadexProvider) Search(ctx context.Context, page int, query string, filters models.FilterState) (*models.ListingPage, error) {
	if strings.TrimSpace(query) == "" {
		if filters.TagIndex < 0 || filters.TagIndex >= len(genres) {
			return nil, fmt.Errorf("genre index %d out of range", filters.TagIndex)
		}
		query = genres[filters.TagIndex]
	}
	return p.listing(query, page), nil
}

func (p *MockadexProvider) GetDetails(ctx context.Context, seriesIdentifier string) (*models.SeriesDetail, error) {
	return &models.SeriesDetail{
		Identifier:     seriesIdentifier,
		Title:          fmt.Sprintf("Mock Series %s", seriesIdentifier),
		CoverURL:       "https://placehold.co/400x600",
		Genre:          strings.Join(genres, ", "),
		Genres:         genres,
		Status:         models.StatusOngoing,
		UpdateStrategy: models.UpdateAlways,
	}, nil
}

func (p *MockadexProvider) GetChapters(ctx context.Context, seriesIdentifier string) ([]models.ChapterResult, error) {
	var results []models.ChapterResult
	for i := 1; i <= 25; i++ {
		results = append(results, models.ChapterResult{
			Identifier: fmt.Sprintf("mock-chapter-%s-%d", seriesIdentifier, i),
			Title:      fmt.Sprintf("Chapter %d: The Mocking", i),
			DateUpload: time.Now().AddDate(0, 0, -i).UnixMilli(),
		})
	}
	return results, nil
}

func (p *MockadexProvider) GetPages(ctx context.Context, chapterIdentifier string) ([]models.Page, error) {
	pages := make([]models.Page, 0, pagesPerChap)
	for i := 0; i < pagesPerChap; i++ {
		pages = append(pages, models.Page{
			Index: i,
			URL:   fmt.Sprintf("/read/%s/%d", chapterIdentifier, i+1),
		})
	}
	return pages, nil
}

// ImageURL resolves a reader page to its image, the step real sites hide
// behind a second request.
func (p *MockadexProvider) ImageURL(ctx context.Context, page models.Page) (string, error) {
	return fmt.Sprintf("https://placehold.co/800x1200?text=Page+%d", page.Index+1), nil
}
