package nijiero

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

// The site files works under two keyword taxonomies and often swaps them.
const (
	taxonomyCategory = "category"
	taxonomyTag      = "tag"
)

type searchRequest struct {
	taxonomy string
	keyword  string
	page     int
	refresh  int64
}

// alternate is the same request against the other taxonomy.
func (r searchRequest) alternate() searchRequest {
	if r.taxonomy == taxonomyCategory {
		r.taxonomy = taxonomyTag
	} else {
		r.taxonomy = taxonomyCategory
	}
	return r
}

func (p *Provider) searchURL(r searchRequest) string {
	return fmt.Sprintf("%s/%s/%s/page/%d?refresh=%d", p.baseURL, r.taxonomy, url.PathEscape(r.keyword), r.page, r.refresh)
}

// newSearchRequest guesses the taxonomy: a typed query is looked up as a tag,
// a bare filter selection as a category.
func (p *Provider) newSearchRequest(page int, query string, filters models.FilterState) (searchRequest, error) {
	if page < 1 {
		page = 1
	}
	r := searchRequest{taxonomy: taxonomyTag, keyword: query, page: page, refresh: p.refreshParam()}
	if strings.TrimSpace(query) == "" {
		if filters.TagIndex < 0 || filters.TagIndex >= len(Tags) {
			return searchRequest{}, fmt.Errorf("tag index %d out of range [0, %d)", filters.TagIndex, len(Tags))
		}
		r.taxonomy = taxonomyCategory
		r.keyword = Tags[filters.TagIndex]
	}
	r.keyword = normalizeKeyword(r.keyword)
	return r, nil
}

// normalizeKeyword lower-cases s and joins its words with hyphens, the way
// WordPress builds taxonomy slugs.
func normalizeKeyword(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

// Search queries the guessed taxonomy first. An empty listing is retried
// once against the other taxonomy and that answer is final, even if empty.
func (p *Provider) Search(ctx context.Context, page int, query string, filters models.FilterState) (*models.ListingPage, error) {
	r, err := p.newSearchRequest(page, query, filters)
	if err != nil {
		return nil, err
	}

	result, err := p.fetchSearch(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(result.Results) > 0 {
		return result, nil
	}
	return p.fetchSearch(ctx, r.alternate())
}

func (p *Provider) fetchSearch(ctx context.Context, r searchRequest) (*models.ListingPage, error) {
	doc, _, err := scraper.FetchDocument(ctx, p.client, p.searchURL(r))
	if err != nil {
		return nil, err
	}
	return &models.ListingPage{
		Results:     p.parseListing(doc, searchListing),
		HasNextPage: hasNextPage(doc),
	}, nil
}
