package nijiero

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/nijiero-go/internal/models"
	"github.com/vrsandeep/nijiero-go/internal/scraper"
)

// listingConfig tells parseListing where the result rows live and which
// attribute carries the thumbnail. Search pages lazy-load their images.
type listingConfig struct {
	root      string
	thumbAttr string
}

var (
	popularListing = listingConfig{root: "#mainContent .allRunkingArea.tabContent.cf", thumbAttr: "src"}
	searchListing  = listingConfig{root: ".contentList", thumbAttr: "data-src"}
)

// parseListing returns one result per direct child of the listing root that
// contains a link. A missing root yields an empty, non-nil slice.
func (p *Provider) parseListing(doc *goquery.Document, cfg listingConfig) []models.SearchResult {
	results := make([]models.SearchResult, 0)
	doc.Find(cfg.root).First().Children().Each(func(i int, s *goquery.Selection) {
		link := s.Find("a")
		if s.Is("a") {
			link = s
		}
		if link.Length() == 0 {
			return
		}
		results = append(results, models.SearchResult{
			Identifier: scraper.StripOrigin(p.baseURL, link.AttrOr("href", "")),
			Title:      link.AttrOr("title", ""),
			CoverURL:   s.Find("img").First().AttrOr(cfg.thumbAttr, ""),
			Status:     models.StatusCompleted,
		})
	})
	return results
}

// hasNextPage reports whether the WordPress pager renders a "next" link.
func hasNextPage(doc *goquery.Document) bool {
	return doc.Find(".next.page-numbers").Length() > 0
}
